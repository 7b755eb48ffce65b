package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/application/usecase"
)

// LoanHandler maneja los préstamos de herramientas de una obra (protegido).
type LoanHandler struct {
	uc    *usecase.ToolLoanUseCase
	users userGetter
}

// NewLoanHandler construye el handler.
func NewLoanHandler(uc *usecase.ToolLoanUseCase, users userGetter) *LoanHandler {
	return &LoanHandler{uc: uc, users: users}
}

func (h *LoanHandler) userName(c *fiber.Ctx) string {
	user, err := h.users.GetByID(GetUserID(c))
	if err != nil || user == nil {
		return ""
	}
	return user.Name
}

// Lend godoc
// @Summary      Prestar herramienta
// @Description  Descuenta el stock con un movimiento OUT y abre el préstamo.
// @Tags         loans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        body    body  dto.LendToolRequest  true  "site_item_id, worker_name, quantity"
// @Success      201  {object}  dto.ToolLoanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/loans [post]
func (h *LoanHandler) Lend(c *fiber.Ctx) error {
	var in dto.LendToolRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Lend(c.Context(), c.Params("siteId"), GetUserID(c), h.userName(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Return godoc
// @Summary      Devolver herramienta
// @Description  Repone el stock con un movimiento IN y cierra el préstamo.
// @Tags         loans
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        loanId  path  string  true  "ID del préstamo"
// @Success      200  {object}  dto.ToolLoanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/loans/{loanId}/return [post]
func (h *LoanHandler) Return(c *fiber.Ctx) error {
	resp, err := h.uc.Return(c.Context(), c.Params("siteId"), c.Params("loanId"), GetUserID(c), h.userName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar préstamos de una obra
// @Tags         loans
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Success      200  {array}  dto.ToolLoanResponse
// @Router       /api/sites/{siteId}/loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Params("siteId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
