package entity

import "time"

// PlaceholderImage imagen por defecto cuando el producto se crea sin imagen.
const PlaceholderImage = "default-image-url"

// Product hoja del catálogo; referencia exactamente una SubCategory y una Category.
type Product struct {
	ID            string
	Name          string
	SubCategoryID string
	CategoryID    string
	Image         string // default PlaceholderImage si no se envía
	Status        bool
	Sequence      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductWithRefs producto con los nombres de sus padres resueltos para los
// listados ("" si alguna referencia quedó colgando).
type ProductWithRefs struct {
	Product
	SubCategoryName string
	CategoryName    string
}
