package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// Todas las lecturas y escrituras van acotadas por ownerID (aislamiento por
// tenant a nivel SQL).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Product, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, ownerID, id string) error
}
