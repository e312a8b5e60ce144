package entity

import "time"

// Category nivel raíz del catálogo. Posee cero o más SubCategories por referencia.
type Category struct {
	ID        string
	Name      string
	Image     string // referencia opcional a imagen
	Status    bool   // activa/inactiva, default true
	Sequence  int    // orden de despliegue, default 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
