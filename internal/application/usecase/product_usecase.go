package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/filter"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/internal/domain/stock"
	"github.com/tu-usuario/gestion-pro/internal/domain/validate"
)

// ProductUseCase casos de uso CRUD para productos del inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un producto nuevo. Devuelve el producto creado
// para que el cliente reconcilie sin refetch.
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		MinStock:  in.MinStock,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validate.Product(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del dueño. nil sin error = no encontrado.
func (uc *ProductUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List trae el snapshot del dueño y aplica los filtros en memoria
// (búsqueda por nombre/categoría/id, igualdad de categoría y de estado de
// stock derivado). La respuesta incluye el resumen de estados del
// subconjunto filtrado.
func (uc *ProductUseCase) List(ctx context.Context, ownerID string, f dto.ListFilters) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pred := filter.And(
		filter.TextSearch(f.Search, func(p entity.Product) []string {
			return []string{p.Name, p.Category, p.ID}
		}),
		filter.Equals(f.Category, func(p entity.Product) string { return p.Category }),
		filter.Equals(f.Status, func(p entity.Product) string {
			return string(stock.Classify(p.Quantity, p.MinStock))
		}),
	)
	filtered := filter.Apply(products, pred)

	items := make([]dto.ProductResponse, 0, len(filtered))
	pairs := make([][2]int64, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toProductResponse(&filtered[i]))
		pairs = append(pairs, [2]int64{filtered[i].Quantity, filtered[i].MinStock})
	}
	return &dto.ProductListResponse{
		Items:   items,
		Summary: stock.Count(pairs),
	}, nil
}

// Update aplica el patch, revalida y persiste. nil sin error = no encontrado.
func (uc *ProductUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if err := validate.Product(product); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del dueño.
func (uc *ProductUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Price:       p.Price,
		StockStatus: stock.Classify(p.Quantity, p.MinStock),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
