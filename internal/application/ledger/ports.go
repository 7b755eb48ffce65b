package ledger

import (
	"context"

	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el libro de movimientos: o se aplican
// el ajuste de cantidad y el registro del movimiento juntos, o ninguno.
// Ante fallas de serialización el runner reintenta fn completa un número acotado
// de veces y luego devuelve domain.ErrTxConflict.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.SiteItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}
