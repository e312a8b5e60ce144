package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-admin-api/internal/application/dto"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría. Status ausente queda en true, Sequence en 0.
func (uc *CategoryUseCase) Create(in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Image:     in.Image,
		Status:    statusOrDefault(in.Status),
		Sequence:  in.Sequence,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías ordenadas por sequence.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update reemplaza los campos nombrados de la categoría. Si el id no existe
// devuelve (nil, nil): el handler responde 200 con registro null, no 404.
func (uc *CategoryUseCase) Update(id string, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	category.Name = in.Name
	category.Image = in.Image
	category.Status = statusOrDefault(in.Status)
	category.Sequence = in.Sequence
	category.UpdatedAt = time.Now()
	if ok, err := uc.repo.Update(category); err != nil {
		return nil, err
	} else if !ok {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría por id. No verifica existencia ni dependientes:
// las subcategorías quedan con la referencia colgando.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// statusOrDefault aplica el default true cuando status no viene en el request.
func statusOrDefault(status *bool) bool {
	if status == nil {
		return true
	}
	return *status
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Image:     c.Image,
		Status:    c.Status,
		Sequence:  c.Sequence,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
