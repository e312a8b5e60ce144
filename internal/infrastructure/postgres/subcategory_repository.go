package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-admin-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/repository"
)

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

// Create persiste una nueva subcategoría.
func (r *SubCategoryRepo) Create(subCategory *entity.SubCategory) error {
	query := `
		INSERT INTO sub_categories (id, name, category_id, image, status, sequence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		subCategory.ID, subCategory.Name, subCategory.CategoryID, subCategory.Image,
		subCategory.Status, subCategory.Sequence, subCategory.CreatedAt, subCategory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sub_category: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID. Devuelve nil sin error si no existe.
func (r *SubCategoryRepo) GetByID(id string) (*entity.SubCategory, error) {
	query := `
		SELECT id, name, category_id, image, status, sequence, created_at, updated_at
		FROM sub_categories WHERE id = $1`
	var s entity.SubCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.CategoryID, &s.Image, &s.Status, &s.Sequence, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_category: %w", err)
	}
	return &s, nil
}

// Update reemplaza los campos nombrados. Devuelve false si el id no existe.
func (r *SubCategoryRepo) Update(subCategory *entity.SubCategory) (bool, error) {
	query := `
		UPDATE sub_categories SET name = $2, category_id = $3, image = $4, status = $5, sequence = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		subCategory.ID, subCategory.Name, subCategory.CategoryID, subCategory.Image,
		subCategory.Status, subCategory.Sequence, subCategory.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update sub_category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista subcategorías con el nombre de su categoría. LEFT JOIN + COALESCE:
// una categoría padre borrada deja la referencia colgando y el nombre vacío.
func (r *SubCategoryRepo) List() ([]*entity.SubCategoryWithCategory, error) {
	query := `
		SELECT s.id, s.name, s.category_id, s.image, s.status, s.sequence, s.created_at, s.updated_at,
		       COALESCE(c.name, '') AS category_name
		FROM sub_categories s
		LEFT JOIN categories c ON c.id = s.category_id
		ORDER BY s.sequence, s.created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sub_categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubCategoryWithCategory
	for rows.Next() {
		var s entity.SubCategoryWithCategory
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.Image, &s.Status, &s.Sequence,
			&s.CreatedAt, &s.UpdatedAt, &s.CategoryName); err != nil {
			return nil, fmt.Errorf("scan sub_category: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una subcategoría por ID. No reporta si existía ni toca dependientes.
func (r *SubCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sub_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sub_category: %w", err)
	}
	return nil
}
