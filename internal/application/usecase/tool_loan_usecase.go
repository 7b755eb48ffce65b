package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/application/ledger"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ToolLoanUseCase préstamos de herramientas a trabajadores. El préstamo descuenta
// stock con un movimiento OUT y la devolución lo repone con un IN, así el libro
// sigue siendo la única vía de mutación de cantidades y una herramienta sin stock
// no se puede prestar.
type ToolLoanUseCase struct {
	loanRepo repository.ToolLoanRepository
	itemRepo repository.SiteItemRepository
	movement *ledger.RegisterMovementUseCase
}

// NewToolLoanUseCase construye el caso de uso.
func NewToolLoanUseCase(
	loanRepo repository.ToolLoanRepository,
	itemRepo repository.SiteItemRepository,
	movement *ledger.RegisterMovementUseCase,
) *ToolLoanUseCase {
	return &ToolLoanUseCase{loanRepo: loanRepo, itemRepo: itemRepo, movement: movement}
}

// Lend registra un préstamo: valida que el ítem sea herramienta, descuenta stock
// vía movimiento OUT y crea el registro del préstamo en estado OPEN.
func (uc *ToolLoanUseCase) Lend(ctx context.Context, siteID, userID, userName string, in dto.LendToolRequest) (*dto.ToolLoanResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(siteID, in.SiteItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !item.IsTool {
		return nil, domain.ErrInvalidInput
	}

	_, err = uc.movement.RegisterMovement(ctx, siteID, in.SiteItemID, ledger.MovementInput{
		Type:     entity.MovementTypeOUT,
		Quantity: in.Quantity,
		Reason:   fmt.Sprintf("Préstamo a %s", in.WorkerName),
		UserID:   userID,
		UserName: userName,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	loan := &entity.ToolLoan{
		ID:         uuid.New().String(),
		SiteID:     siteID,
		SiteItemID: in.SiteItemID,
		ItemName:   item.Name,
		WorkerName: in.WorkerName,
		Quantity:   in.Quantity,
		LoanDate:   now,
		Status:     entity.LoanStatusOpen,
		Notes:      in.Notes,
		UpdatedAt:  now,
	}
	if err := uc.loanRepo.Create(loan); err != nil {
		return nil, err
	}
	return toToolLoanResponse(loan), nil
}

// Return registra la devolución: repone stock con un movimiento IN y cierra el
// préstamo. Un préstamo ya devuelto no se puede devolver de nuevo.
func (uc *ToolLoanUseCase) Return(ctx context.Context, siteID, loanID, userID, userName string) (*dto.ToolLoanResponse, error) {
	loan, err := uc.loanRepo.GetByID(siteID, loanID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, domain.ErrNotFound
	}
	if loan.Status != entity.LoanStatusOpen {
		return nil, domain.ErrLoanAlreadyClosed
	}

	_, err = uc.movement.RegisterMovement(ctx, siteID, loan.SiteItemID, ledger.MovementInput{
		Type:     entity.MovementTypeIN,
		Quantity: loan.Quantity,
		Reason:   fmt.Sprintf("Devolución de %s", loan.WorkerName),
		UserID:   userID,
		UserName: userName,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	loan.Status = entity.LoanStatusReturned
	loan.ReturnDate = &now
	loan.UpdatedAt = now
	if err := uc.loanRepo.Update(loan); err != nil {
		return nil, err
	}
	return toToolLoanResponse(loan), nil
}

// List lista los préstamos de la obra, más recientes primero.
func (uc *ToolLoanUseCase) List(siteID string) ([]dto.ToolLoanResponse, error) {
	list, err := uc.loanRepo.ListBySite(siteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ToolLoanResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toToolLoanResponse(l))
	}
	return items, nil
}

func toToolLoanResponse(l *entity.ToolLoan) *dto.ToolLoanResponse {
	if l == nil {
		return nil
	}
	return &dto.ToolLoanResponse{
		ID:         l.ID,
		SiteID:     l.SiteID,
		SiteItemID: l.SiteItemID,
		ItemName:   l.ItemName,
		WorkerName: l.WorkerName,
		Quantity:   l.Quantity,
		LoanDate:   l.LoanDate,
		ReturnDate: l.ReturnDate,
		Status:     l.Status,
		Notes:      l.Notes,
		UpdatedAt:  l.UpdatedAt,
	}
}
