package repository

import "github.com/jhoicas/catalogo-admin-api/internal/domain/entity"

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
type SubCategoryRepository interface {
	Create(subCategory *entity.SubCategory) error
	GetByID(id string) (*entity.SubCategory, error)
	// Update reemplaza los campos nombrados; devuelve false si el id no existe.
	Update(subCategory *entity.SubCategory) (bool, error)
	// List resuelve el nombre de la categoría padre ("" si quedó colgando).
	List() ([]*entity.SubCategoryWithCategory, error)
	// Delete no reporta si el id existía.
	Delete(id string) error
}
