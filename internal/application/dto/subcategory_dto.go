package dto

import "time"

// SaveSubCategoryRequest entrada para crear o reemplazar una subcategoría.
// Category es el id de la categoría padre (existencia validada al crear).
type SaveSubCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category" validate:"required"`
	Image    string `json:"image"`
	Status   *bool  `json:"status"`
	Sequence int    `json:"sequence" validate:"min=0"`
}

// SubCategoryResponse salida de una subcategoría. CategoryName se resuelve en
// los listados y queda vacío si la categoría padre ya no existe.
type SubCategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CategoryName string    `json:"categoryName,omitempty"`
	Image        string    `json:"image,omitempty"`
	Status       bool      `json:"status"`
	Sequence     int       `json:"sequence"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SaveSubCategoryResponse salida de crear/actualizar: mensaje + registro
// (SubCategory es null cuando el update no encontró el id).
type SaveSubCategoryResponse struct {
	Message     string               `json:"message"`
	SubCategory *SubCategoryResponse `json:"subCategory"`
}
