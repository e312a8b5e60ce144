package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-admin-api/internal/application/dto"
	"github.com/jhoicas/catalogo-admin-api/internal/domain"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo            repository.ProductRepository
	subCategoryRepo repository.SubCategoryRepository
	categoryRepo    repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, subCategoryRepo repository.SubCategoryRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, subCategoryRepo: subCategoryRepo, categoryRepo: categoryRepo}
}

// Create crea un producto. Orden de validación de referencias: formato antes que
// existencia, y subcategoría antes que categoría. Image ausente aplica el placeholder.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(in.SubCategory); err != nil {
		return nil, fmt.Errorf("subCategory ID inválido: %w", domain.ErrInvalidInput)
	}
	if _, err := uuid.Parse(in.Category); err != nil {
		return nil, fmt.Errorf("category ID inválido: %w", domain.ErrInvalidInput)
	}
	subCategory, err := uc.subCategoryRepo.GetByID(in.SubCategory)
	if err != nil {
		return nil, err
	}
	if subCategory == nil {
		return nil, domain.ErrSubCategoryNotExists
	}
	category, err := uc.categoryRepo.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotExists
	}
	image := in.Image
	if image == "" {
		image = entity.PlaceholderImage
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		SubCategoryID: in.SubCategory,
		CategoryID:    in.Category,
		Image:         image,
		Status:        statusOrDefault(in.Status),
		Sequence:      in.Sequence,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	out.SubCategoryName = subCategory.Name
	out.CategoryName = category.Name
	return out, nil
}

// List lista productos con los nombres de subcategoría y categoría resueltos
// (vacíos si el padre fue borrado: las lecturas toleran referencias colgando).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out := toProductResponse(&p.Product)
		out.SubCategoryName = p.SubCategoryName
		out.CategoryName = p.CategoryName
		items = append(items, *out)
	}
	return items, nil
}

// Update reemplaza los campos nombrados. A diferencia de Category/SubCategory,
// un id inexistente sí devuelve (nil, nil) para que el handler responda 404.
// Las referencias no se revalidan al actualizar.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = in.Name
	product.SubCategoryID = in.SubCategory
	product.CategoryID = in.Category
	product.Image = in.Image
	if product.Image == "" {
		product.Image = entity.PlaceholderImage
	}
	product.Status = statusOrDefault(in.Status)
	product.Sequence = in.Sequence
	product.UpdatedAt = time.Now()
	if ok, err := uc.repo.Update(product); err != nil {
		return nil, err
	} else if !ok {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por id. Devuelve ErrNotFound si no existía.
func (uc *ProductUseCase) Delete(id string) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SubCategory: p.SubCategoryID,
		Category:    p.CategoryID,
		Image:       p.Image,
		Status:      p.Status,
		Sequence:    p.Sequence,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
