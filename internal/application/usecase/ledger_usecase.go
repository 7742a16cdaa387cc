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

// StatementExporter serializa un estado de cuenta (contraparte + asientos +
// totales) a un formato de intercambio.
type StatementExporter interface {
	Build(party *entity.Party, entries []entity.LedgerEntry, totals ledger.Totals) ([]byte, error)
}

// LedgerUseCase casos de uso del libro de débitos/créditos. Los asientos
// son inmutables: se crean y se eliminan, nunca se actualizan.
type LedgerUseCase struct {
	repo      repository.LedgerRepository
	partyRepo repository.PartyRepository
	exporter  StatementExporter
	now       Clock
}

// NewLedgerUseCase construye el caso de uso. clock nil usa time.Now.
func NewLedgerUseCase(repo repository.LedgerRepository, partyRepo repository.PartyRepository, exporter StatementExporter, clock Clock) *LedgerUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &LedgerUseCase{repo: repo, partyRepo: partyRepo, exporter: exporter, now: clock}
}

// Create valida y registra un asiento. Si viene PartyID se verifica que la
// contraparte exista y pertenezca al dueño.
func (uc *LedgerUseCase) Create(ctx context.Context, ownerID string, in dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	now := uc.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	entry := &entity.LedgerEntry{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		EntityType:      in.EntityType,
		PartyID:         in.PartyID,
		EntityName:      in.EntityName,
		TransactionType: in.TransactionType,
		Amount:          in.Amount,
		Description:     in.Description,
		Reference:       in.Reference,
		Date:            date,
		CreatedAt:       now,
	}
	if err := validate.LedgerEntry(entry); err != nil {
		return nil, err
	}
	if entry.PartyID != "" {
		party, err := uc.partyRepo.GetByID(ctx, ownerID, entry.PartyID)
		if err != nil {
			return nil, err
		}
		if party == nil {
			return nil, &validate.RuleError{Field: "party_id", Message: "la contraparte no existe"}
		}
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toLedgerEntryResponse(entry), nil
}

// List trae el snapshot del dueño y aplica los filtros en memoria:
// búsqueda por contraparte/referencia/descripción, igualdad de tipo de
// entidad y de movimiento, rango de fecha relativo. Incluye los totales
// del subconjunto filtrado, recalculados completos.
func (uc *LedgerUseCase) List(ctx context.Context, ownerID string, f dto.ListFilters) (*dto.LedgerListResponse, error) {
	entries, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pred := filter.And(
		filter.TextSearch(f.Search, func(e entity.LedgerEntry) []string {
			return []string{e.EntityName, e.Reference, e.Description}
		}),
		filter.Equals(f.EntityType, func(e entity.LedgerEntry) string { return e.EntityType }),
		filter.Equals(f.Type, func(e entity.LedgerEntry) string { return e.TransactionType }),
		filter.DateRange(filter.Range(f.Range), uc.now(), func(e entity.LedgerEntry) time.Time { return e.Date }),
	)
	filtered := filter.Apply(entries, pred)

	items := make([]dto.LedgerEntryResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toLedgerEntryResponse(&filtered[i]))
	}
	return &dto.LedgerListResponse{
		Items:  items,
		Totals: ledger.Aggregate(filtered),
	}, nil
}

// Statement estado de cuenta de una contraparte: sus asientos y totales.
func (uc *LedgerUseCase) Statement(ctx context.Context, ownerID, partyID string) (*dto.StatementResponse, error) {
	party, err := uc.partyRepo.GetByID(ctx, ownerID, partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	entries, err := uc.repo.ListByParty(ctx, ownerID, partyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, *toLedgerEntryResponse(&entries[i]))
	}
	return &dto.StatementResponse{
		Party: dto.PartyResponse{
			ID:      party.ID,
			Kind:    party.Kind,
			Name:    party.Name,
			Email:   party.Email,
			Phone:   party.Phone,
			Address: party.Address,
			Balance: party.Balance,
		},
		Entries: items,
		Totals:  ledger.Aggregate(entries),
	}, nil
}

// ExportStatement serializa el estado de cuenta de una contraparte con el
// exportador configurado. Devuelve (nil, nil) si la contraparte no existe.
func (uc *LedgerUseCase) ExportStatement(ctx context.Context, ownerID, partyID string) ([]byte, error) {
	party, err := uc.partyRepo.GetByID(ctx, ownerID, partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	entries, err := uc.repo.ListByParty(ctx, ownerID, partyID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Build(party, entries, ledger.Aggregate(entries))
}

// Delete elimina un asiento del dueño.
func (uc *LedgerUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

func toLedgerEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:              e.ID,
		EntityType:      e.EntityType,
		PartyID:         e.PartyID,
		EntityName:      e.EntityName,
		TransactionType: e.TransactionType,
		Amount:          e.Amount,
		Description:     e.Description,
		Reference:       e.Reference,
		Date:            e.Date,
		CreatedAt:       e.CreatedAt,
	}
}
