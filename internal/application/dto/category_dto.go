package dto

import "time"

// SaveCategoryRequest entrada para crear o reemplazar una categoría.
// Status ausente aplica el default true; Sequence ausente queda en 0.
type SaveCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Image    string `json:"image"`
	Status   *bool  `json:"status"`
	Sequence int    `json:"sequence" validate:"min=0"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Status    bool      `json:"status"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveCategoryResponse salida de crear/actualizar: mensaje + registro
// (Category es null cuando el update no encontró el id).
type SaveCategoryResponse struct {
	Message  string            `json:"message"`
	Category *CategoryResponse `json:"category"`
}
