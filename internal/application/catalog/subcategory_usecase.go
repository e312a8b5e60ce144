package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-admin-api/internal/application/dto"
	"github.com/jhoicas/catalogo-admin-api/internal/domain"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/repository"
)

// SubCategoryUseCase casos de uso CRUD para subcategorías.
type SubCategoryUseCase struct {
	repo         repository.SubCategoryRepository
	categoryRepo repository.CategoryRepository
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, categoryRepo repository.CategoryRepository) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea una subcategoría validando que la categoría padre exista.
func (uc *SubCategoryUseCase) Create(in dto.SaveSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotExists
	}
	now := time.Now()
	subCategory := &entity.SubCategory{
		ID:         uuid.New().String(),
		Name:       in.Name,
		CategoryID: in.Category,
		Image:      in.Image,
		Status:     statusOrDefault(in.Status),
		Sequence:   in.Sequence,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(subCategory); err != nil {
		return nil, err
	}
	out := toSubCategoryResponse(subCategory)
	out.CategoryName = category.Name
	return out, nil
}

// List lista subcategorías con el nombre de la categoría padre resuelto
// (vacío si la categoría fue borrada: las lecturas toleran referencias colgando).
func (uc *SubCategoryUseCase) List() ([]dto.SubCategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		out := toSubCategoryResponse(&s.SubCategory)
		out.CategoryName = s.CategoryName
		items = append(items, *out)
	}
	return items, nil
}

// Update reemplaza los campos nombrados. Si el id no existe devuelve (nil, nil):
// el handler responde 200 con registro null, no 404. La referencia a la categoría
// no se revalida al actualizar.
func (uc *SubCategoryUseCase) Update(id string, in dto.SaveSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	subCategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subCategory == nil {
		return nil, nil
	}
	subCategory.Name = in.Name
	subCategory.CategoryID = in.Category
	subCategory.Image = in.Image
	subCategory.Status = statusOrDefault(in.Status)
	subCategory.Sequence = in.Sequence
	subCategory.UpdatedAt = time.Now()
	if ok, err := uc.repo.Update(subCategory); err != nil {
		return nil, err
	} else if !ok {
		return nil, nil
	}
	return toSubCategoryResponse(subCategory), nil
}

// Delete elimina una subcategoría por id. No verifica existencia ni dependientes:
// los productos quedan con la referencia colgando.
func (uc *SubCategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSubCategoryResponse(s *entity.SubCategory) *dto.SubCategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubCategoryResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.CategoryID,
		Image:     s.Image,
		Status:    s.Status,
		Sequence:  s.Sequence,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
