package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// RegisterMovementUseCase registra movimientos de stock (IN/OUT) de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) y garantía de stock nunca negativo.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento de stock.
// Quantity es la magnitud del cambio, siempre positiva; el signo lo da Type.
type MovementInput struct {
	Type     string // IN, OUT
	Quantity decimal.Decimal
	Reason   string
	UserID   string
	UserName string
}

// RegisterMovement inicia una transacción, bloquea la fila del ítem, aplica el delta
// y persiste el movimiento con date asignada por el servidor al momento del commit.
// OUT que dejaría la cantidad negativa aborta con InsufficientStockError sin
// escribir nada. Devuelve el movimiento persistido.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, siteID, itemID string, input MovementInput) (*entity.Movement, error) {
	// Validar antes de abrir transacción
	if input.Type != entity.MovementTypeIN && input.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if siteID == "" || itemID == "" {
		return nil, domain.ErrInvalidInput
	}

	var mov *entity.Movement

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.SiteItemRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del ítem para que el read-modify-write no se
		// intercale con otro escritor
		item, err := itemRepo.GetForUpdate(siteID, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		var newQty decimal.Decimal
		if input.Type == entity.MovementTypeIN {
			newQty = item.Quantity.Add(input.Quantity)
		} else {
			newQty = item.Quantity.Sub(input.Quantity)
			if newQty.IsNegative() {
				return &domain.InsufficientStockError{
					Current:   item.Quantity,
					Requested: input.Quantity,
				}
			}
		}

		now := time.Now()
		item.Quantity = newQty
		item.UpdatedAt = now
		if err := itemRepo.UpdateQuantity(item); err != nil {
			return err
		}

		mov = &entity.Movement{
			ID:         uuid.New().String(),
			SiteID:     siteID,
			SiteItemID: itemID,
			Type:       input.Type,
			Quantity:   input.Quantity,
			Date:       now,
			Reason:     input.Reason,
			UserID:     input.UserID,
			UserName:   input.UserName,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
