package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-admin-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sub_category_id, category_id, image, status, sequence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SubCategoryID, product.CategoryID, product.Image,
		product.Status, product.Sequence, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, sub_category_id, category_id, image, status, sequence, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SubCategoryID, &p.CategoryID, &p.Image, &p.Status, &p.Sequence,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos nombrados. Devuelve false si el id no existe.
func (r *ProductRepo) Update(product *entity.Product) (bool, error) {
	query := `
		UPDATE products SET name = $2, sub_category_id = $3, category_id = $4, image = $5, status = $6, sequence = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SubCategoryID, product.CategoryID, product.Image,
		product.Status, product.Sequence, product.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista productos con los nombres de subcategoría y categoría resueltos.
// LEFT JOIN + COALESCE para tolerar referencias colgando tras borrar un padre.
func (r *ProductRepo) List() ([]*entity.ProductWithRefs, error) {
	query := `
		SELECT p.id, p.name, p.sub_category_id, p.category_id, p.image, p.status, p.sequence, p.created_at, p.updated_at,
		       COALESCE(s.name, '') AS sub_category_name,
		       COALESCE(c.name, '') AS category_name
		FROM products p
		LEFT JOIN sub_categories s ON s.id = p.sub_category_id
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.sequence, p.created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithRefs
	for rows.Next() {
		var p entity.ProductWithRefs
		if err := rows.Scan(&p.ID, &p.Name, &p.SubCategoryID, &p.CategoryID, &p.Image, &p.Status,
			&p.Sequence, &p.CreatedAt, &p.UpdatedAt, &p.SubCategoryName, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (r *ProductRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
