package dto

import "time"

// SaveProductRequest entrada para crear o reemplazar un producto.
// SubCategory y Category son ids de los padres (formato y existencia se
// validan al crear, subcategoría antes que categoría).
type SaveProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	SubCategory string `json:"subCategory" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Image       string `json:"image"`
	Status      *bool  `json:"status"`
	Sequence    int    `json:"sequence" validate:"min=0"`
}

// ProductResponse salida de un producto. Los nombres de los padres se resuelven
// en los listados y quedan vacíos si la referencia quedó colgando.
type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SubCategory     string    `json:"subCategory"`
	SubCategoryName string    `json:"subCategoryName,omitempty"`
	Category        string    `json:"category"`
	CategoryName    string    `json:"categoryName,omitempty"`
	Image           string    `json:"image"`
	Status          bool      `json:"status"`
	Sequence        int       `json:"sequence"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SaveProductResponse salida de crear/actualizar un producto.
type SaveProductResponse struct {
	Message string           `json:"message"`
	Product *ProductResponse `json:"product"`
}
