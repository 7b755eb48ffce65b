package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrTxConflict         = errors.New("conflicto de transacción, reintentos agotados")
	ErrLoanAlreadyClosed  = errors.New("el préstamo ya fue devuelto")
)

// InsufficientStockError indica que una salida (OUT) dejaría el stock en negativo.
// Lleva la cantidad actual y la solicitada para que el caller arme un mensaje preciso.
type InsufficientStockError struct {
	Current   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: actual %s, solicitado %s", e.Current, e.Requested)
}

// IsInsufficientStock verifica si err es (o envuelve) un InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
