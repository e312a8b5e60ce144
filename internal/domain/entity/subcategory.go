package entity

import "time"

// SubCategory segundo nivel del catálogo; referencia exactamente una Category.
// No hay FK en base de datos: borrar la Category padre deja la referencia colgando
// y las lecturas deben tolerarlo (nombre del padre vacío).
type SubCategory struct {
	ID         string
	Name       string
	CategoryID string
	Image      string
	Status     bool
	Sequence   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SubCategoryWithCategory subcategoría con el nombre de su categoría resuelto
// para los listados ("" si el padre ya no existe).
type SubCategoryWithCategory struct {
	SubCategory
	CategoryName string
}
