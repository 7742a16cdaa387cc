package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/filter"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/internal/domain/validate"
)

// PartyUseCase casos de uso CRUD para clientes y proveedores. El kind
// (customer | vendor) llega por parámetro desde la ruta.
type PartyUseCase struct {
	repo       repository.PartyRepository
	ledgerRepo repository.LedgerRepository
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(repo repository.PartyRepository, ledgerRepo repository.LedgerRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo, ledgerRepo: ledgerRepo}
}

// Create valida y persiste una contraparte nueva.
func (uc *PartyUseCase) Create(ctx context.Context, ownerID, kind string, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	now := time.Now()
	party := &entity.Party{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Kind:      kind,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Balance:   in.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validate.Party(party); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetByID obtiene la contraparte más los totales agregados de su libro.
func (uc *PartyUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.PartyDetailResponse, error) {
	party, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	entries, err := uc.ledgerRepo.ListByParty(ctx, ownerID, party.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PartyDetailResponse{
		PartyResponse: *toPartyResponse(party),
		Ledger:        ledger.Aggregate(entries),
	}, nil
}

// List trae el snapshot por kind y aplica la búsqueda de texto en memoria
// (nombre, email, teléfono).
func (uc *PartyUseCase) List(ctx context.Context, ownerID, kind string, f dto.ListFilters) (*dto.PartyListResponse, error) {
	parties, err := uc.repo.ListByOwnerAndKind(ctx, ownerID, kind)
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(parties, filter.TextSearch(f.Search, func(p entity.Party) []string {
		return []string{p.Name, p.Email, p.Phone}
	}))

	items := make([]dto.PartyResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toPartyResponse(&filtered[i]))
	}
	return &dto.PartyListResponse{Items: items}, nil
}

// Update aplica el patch, revalida y persiste.
func (uc *PartyUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	if in.Name != nil {
		party.Name = *in.Name
	}
	if in.Email != nil {
		party.Email = *in.Email
	}
	if in.Phone != nil {
		party.Phone = *in.Phone
	}
	if in.Address != nil {
		party.Address = *in.Address
	}
	if in.Balance != nil {
		party.Balance = *in.Balance
	}
	if err := validate.Party(party); err != nil {
		return nil, err
	}
	party.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// Delete elimina una contraparte del dueño. Sus asientos conservan
// EntityName aunque PartyID quede huérfano (referencia opcional).
func (uc *PartyUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        p.ID,
		Kind:      p.Kind,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		Balance:   p.Balance,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
