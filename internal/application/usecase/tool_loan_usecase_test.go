package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/application/ledger"
	"github.com/pedrolucasmota/obralog-api/internal/application/usecase"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memItemRepo struct {
	items map[string]*entity.SiteItem // key: siteID+"/"+itemID
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]*entity.SiteItem)}
}

func (r *memItemRepo) key(siteID, itemID string) string { return siteID + "/" + itemID }

func (r *memItemRepo) Create(item *entity.SiteItem) error {
	cp := *item
	r.items[r.key(item.SiteID, item.ID)] = &cp
	return nil
}

func (r *memItemRepo) GetByID(siteID, itemID string) (*entity.SiteItem, error) {
	item, ok := r.items[r.key(siteID, itemID)]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *memItemRepo) GetForUpdate(siteID, itemID string) (*entity.SiteItem, error) {
	return r.GetByID(siteID, itemID)
}

func (r *memItemRepo) UpdateQuantity(item *entity.SiteItem) error {
	stored, ok := r.items[r.key(item.SiteID, item.ID)]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Quantity = item.Quantity
	stored.UpdatedAt = item.UpdatedAt
	return nil
}

func (r *memItemRepo) UpdateMetadata(item *entity.SiteItem) error {
	stored, ok := r.items[r.key(item.SiteID, item.ID)]
	if !ok {
		return domain.ErrNotFound
	}
	qty := stored.Quantity
	cp := *item
	cp.Quantity = qty
	r.items[r.key(item.SiteID, item.ID)] = &cp
	return nil
}

func (r *memItemRepo) ListBySite(siteID string) ([]*entity.SiteItem, error) {
	var list []*entity.SiteItem
	for _, item := range r.items {
		if item.SiteID == siteID {
			cp := *item
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memItemRepo) Delete(siteID, itemID string) error {
	delete(r.items, r.key(siteID, itemID))
	return nil
}

type memMovRepo struct {
	movs []*entity.Movement
}

func (r *memMovRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *memMovRepo) ListByItem(siteID, itemID string) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.movs {
		if m.SiteID == siteID && m.SiteItemID == itemID {
			cp := *m
			list = append(list, &cp)
		}
	}
	return list, nil
}

type memLoanRepo struct {
	loans map[string]*entity.ToolLoan // key: siteID+"/"+loanID
}

func newMemLoanRepo() *memLoanRepo {
	return &memLoanRepo{loans: make(map[string]*entity.ToolLoan)}
}

func (r *memLoanRepo) Create(l *entity.ToolLoan) error {
	cp := *l
	r.loans[l.SiteID+"/"+l.ID] = &cp
	return nil
}

func (r *memLoanRepo) GetByID(siteID, loanID string) (*entity.ToolLoan, error) {
	l, ok := r.loans[siteID+"/"+loanID]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLoanRepo) Update(l *entity.ToolLoan) error {
	if _, ok := r.loans[l.SiteID+"/"+l.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *l
	r.loans[l.SiteID+"/"+l.ID] = &cp
	return nil
}

func (r *memLoanRepo) ListBySite(siteID string) ([]*entity.ToolLoan, error) {
	var list []*entity.ToolLoan
	for _, l := range r.loans {
		if l.SiteID == siteID {
			cp := *l
			list = append(list, &cp)
		}
	}
	return list, nil
}

// passRunner ejecuta el callback directamente; los tests acá son secuenciales
// y las fallas del libro ocurren antes de cualquier escritura.
type passRunner struct {
	itemRepo repository.SiteItemRepository
	movRepo  repository.MovementRepository
}

func (r *passRunner) Run(_ context.Context, fn func(repository.SiteItemRepository, repository.MovementRepository) error) error {
	return fn(r.itemRepo, r.movRepo)
}

func newLoanFixture(t *testing.T, isTool bool, qty int64) (*memItemRepo, *memMovRepo, *memLoanRepo, *ledger.RegisterMovementUseCase) {
	t.Helper()
	itemRepo := newMemItemRepo()
	movRepo := &memMovRepo{}
	loanRepo := newMemLoanRepo()
	require.NoError(t, itemRepo.Create(&entity.SiteItem{
		ID:       "taladro",
		SiteID:   "obra-1",
		Name:     "Taladro percutor",
		Unit:     "un",
		Quantity: decimal.NewFromInt(qty),
		IsTool:   isTool,
	}))
	movementUC := ledger.NewRegisterMovementUseCase(&passRunner{itemRepo: itemRepo, movRepo: movRepo})
	return itemRepo, movRepo, loanRepo, movementUC
}

// ──────────────────────────────────────────────────────────────────────────────
// Préstamo
// ──────────────────────────────────────────────────────────────────────────────

func TestLend_DescuentaStockYAbrePrestamo(t *testing.T) {
	itemRepo, movRepo, loanRepo, movementUC := newLoanFixture(t, true, 5)
	uc := usecase.NewToolLoanUseCase(loanRepo, itemRepo, movementUC)

	loan, err := uc.Lend(context.Background(), "obra-1", "u1", "María", dto.LendToolRequest{
		SiteItemID: "taladro",
		WorkerName: "Juan Pérez",
		Quantity:   decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LoanStatusOpen, loan.Status)
	assert.Equal(t, "Taladro percutor", loan.ItemName)
	assert.Nil(t, loan.ReturnDate)

	item, _ := itemRepo.GetByID("obra-1", "taladro")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(3)), "el préstamo debe descontar stock")

	movs, _ := movRepo.ListByItem("obra-1", "taladro")
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeOUT, movs[0].Type)
	assert.Contains(t, movs[0].Reason, "Juan Pérez")
	assert.Equal(t, "María", movs[0].UserName)
}

func TestLend_ItemNoHerramienta_Rechazado(t *testing.T) {
	itemRepo, _, loanRepo, movementUC := newLoanFixture(t, false, 5)
	uc := usecase.NewToolLoanUseCase(loanRepo, itemRepo, movementUC)

	_, err := uc.Lend(context.Background(), "obra-1", "u1", "María", dto.LendToolRequest{
		SiteItemID: "taladro",
		WorkerName: "Juan",
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLend_SinStock_NoCreaPrestamo(t *testing.T) {
	itemRepo, movRepo, loanRepo, movementUC := newLoanFixture(t, true, 1)
	uc := usecase.NewToolLoanUseCase(loanRepo, itemRepo, movementUC)

	_, err := uc.Lend(context.Background(), "obra-1", "u1", "María", dto.LendToolRequest{
		SiteItemID: "taladro",
		WorkerName: "Juan",
		Quantity:   decimal.NewFromInt(3),
	})
	require.Error(t, err)
	assert.True(t, domain.IsInsufficientStock(err))

	loans, _ := loanRepo.ListBySite("obra-1")
	assert.Empty(t, loans, "sin stock no debe quedar préstamo")
	movs, _ := movRepo.ListByItem("obra-1", "taladro")
	assert.Empty(t, movs, "sin stock no debe quedar movimiento")
}

func TestReturn_ReponeStockYCierraPrestamo(t *testing.T) {
	itemRepo, movRepo, loanRepo, movementUC := newLoanFixture(t, true, 5)
	uc := usecase.NewToolLoanUseCase(loanRepo, itemRepo, movementUC)

	loan, err := uc.Lend(context.Background(), "obra-1", "u1", "María", dto.LendToolRequest{
		SiteItemID: "taladro",
		WorkerName: "Juan",
		Quantity:   decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	returned, err := uc.Return(context.Background(), "obra-1", loan.ID, "u1", "María")
	require.NoError(t, err)
	assert.Equal(t, entity.LoanStatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)

	item, _ := itemRepo.GetByID("obra-1", "taladro")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(5)), "la devolución debe reponer el stock")

	movs, _ := movRepo.ListByItem("obra-1", "taladro")
	require.Len(t, movs, 2, "préstamo y devolución quedan ambos en el libro")
	assert.Equal(t, entity.MovementTypeIN, movs[1].Type)
}

func TestReturn_PrestamoYaDevuelto_Rechazado(t *testing.T) {
	itemRepo, _, loanRepo, movementUC := newLoanFixture(t, true, 5)
	uc := usecase.NewToolLoanUseCase(loanRepo, itemRepo, movementUC)

	loan, err := uc.Lend(context.Background(), "obra-1", "u1", "María", dto.LendToolRequest{
		SiteItemID: "taladro",
		WorkerName: "Juan",
		Quantity:   decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	_, err = uc.Return(context.Background(), "obra-1", loan.ID, "u1", "María")
	require.NoError(t, err)

	_, err = uc.Return(context.Background(), "obra-1", loan.ID, "u1", "María")
	assert.ErrorIs(t, err, domain.ErrLoanAlreadyClosed)

	item, _ := itemRepo.GetByID("obra-1", "taladro")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(5)), "una doble devolución no debe duplicar stock")
}
