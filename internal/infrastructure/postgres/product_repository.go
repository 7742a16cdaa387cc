package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Toda consulta va acotada por owner_id (aislamiento por tenant en el SQL).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, owner_id, name, category, quantity, min_stock, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.OwnerID, product.Name, product.Category,
		product.Quantity, product.MinStock, product.Price,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del dueño. nil sin error = no encontrado.
func (r *ProductRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	query := `
		SELECT id, owner_id, name, category, quantity, min_stock, price, created_at, updated_at
		FROM products WHERE owner_id = $1 AND id = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, ownerID, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Category, &p.Quantity, &p.MinStock, &p.Price,
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

// ListByOwner lista los productos del dueño. El filtrado fino (búsqueda,
// categoría, estado de stock) ocurre en memoria en el caso de uso.
func (r *ProductRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.Product, error) {
	query := `
		SELECT id, owner_id, name, category, quantity, min_stock, price, created_at, updated_at
		FROM products WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Category, &p.Quantity, &p.MinStock,
			&p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente (acotado por dueño).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, category = $4, quantity = $5, min_stock = $6, price = $7, updated_at = $8
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		product.OwnerID, product.ID, product.Name, product.Category,
		product.Quantity, product.MinStock, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto del dueño.
func (r *ProductRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
