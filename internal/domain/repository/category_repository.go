package repository

import "github.com/jhoicas/catalogo-admin-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// Update reemplaza los campos nombrados; devuelve false si el id no existe.
	Update(category *entity.Category) (bool, error)
	List() ([]*entity.Category, error)
	// Delete no reporta si el id existía (ver política de borrado en el handler).
	Delete(id string) error
}
