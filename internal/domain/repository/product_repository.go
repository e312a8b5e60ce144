package repository

import "github.com/jhoicas/catalogo-admin-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// Update reemplaza los campos nombrados; devuelve false si el id no existe.
	Update(product *entity.Product) (bool, error)
	// List resuelve los nombres de subcategoría y categoría ("" si quedaron colgando).
	List() ([]*entity.ProductWithRefs, error)
	// Delete devuelve false si el id no existía (Product sí reporta NotFound).
	Delete(id string) (bool, error)
}
