package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/application/ledger"
	"github.com/pedrolucasmota/obralog-api/internal/application/usecase"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
)

// userGetter resuelve el nombre visible del usuario del token para firmar movimientos.
// Lo implementa repository.UserRepository.
type userGetter interface {
	GetByID(id string) (*entity.User, error)
}

// InventoryHandler maneja el inventario por obra: ítems, movimientos e historial (protegido).
type InventoryHandler struct {
	inventory *usecase.SiteInventoryUseCase
	movement  *ledger.RegisterMovementUseCase
	history   *ledger.HistoryUseCase
	users     userGetter
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	inventory *usecase.SiteInventoryUseCase,
	movement *ledger.RegisterMovementUseCase,
	history *ledger.HistoryUseCase,
	users userGetter,
) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, movement: movement, history: history, users: users}
}

// userName resuelve el nombre del usuario autenticado; vacío si no se encuentra.
func (h *InventoryHandler) userName(c *fiber.Ctx) string {
	user, err := h.users.GetByID(GetUserID(c))
	if err != nil || user == nil {
		return ""
	}
	return user.Name
}

// AddItem godoc
// @Summary      Adoptar insumo del catálogo en una obra
// @Description  Copia los campos descriptivos del catálogo al inventario local de la obra.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        body    body  dto.AddSiteItemRequest  true  "original_item_id y cantidad inicial"
// @Success      201  {object}  dto.SiteItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/inventory [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddSiteItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.inventory.AddItem(c.Params("siteId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar inventario de una obra
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Success      200  {array}  dto.SiteItemResponse
// @Router       /api/sites/{siteId}/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.inventory.List(c.Params("siteId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener ítem del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.SiteItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/inventory/{itemId} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.inventory.GetByID(c.Params("siteId"), c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateMetadata godoc
// @Summary      Actualizar metadatos de un ítem
// @Description  Solo campos descriptivos; la cantidad se muta únicamente con movimientos.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body    body  dto.UpdateSiteItemRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.SiteItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/inventory/{itemId} [put]
func (h *InventoryHandler) UpdateMetadata(c *fiber.Ctx) error {
	var in dto.UpdateSiteItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.inventory.UpdateMetadata(c.Params("siteId"), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeleteItem godoc
// @Summary      Eliminar ítem del inventario
// @Description  El historial de movimientos del ítem se conserva.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/inventory/{itemId} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.inventory.Delete(c.Params("siteId"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado"})
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  IN suma y OUT resta de forma atómica; un OUT que dejaría la cantidad
//
//	negativa se rechaza completo con 409.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body    body  dto.RegisterMovementRequest  true  "type, quantity, reason"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/inventory/{itemId}/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if !parseBody(c, &in) {
		return nil
	}
	mov, err := h.movement.RegisterMovement(c.Context(), c.Params("siteId"), c.Params("itemId"), ledger.MovementInput{
		Type:     in.Type,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		UserID:   GetUserID(c),
		UserName: h.userName(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// GetItemHistory godoc
// @Summary      Historial de movimientos de un ítem
// @Description  Ordenado por fecha descendente (más reciente primero).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {array}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/inventory/{itemId}/movements [get]
func (h *InventoryHandler) GetItemHistory(c *fiber.Ctx) error {
	movements, err := h.history.GetItemHistory(c.Context(), c.Params("siteId"), c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	list := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		list = append(list, toMovementResponse(m))
	}
	return c.JSON(list)
}

// GetAllSiteMovements godoc
// @Summary      Todos los movimientos de una obra
// @Description  Agregado de los historiales de todos los ítems, anotado con nombre y
//
//	unidad del ítem, ordenado por fecha descendente.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Success      200  {array}  dto.SiteMovementResponse
// @Router       /api/sites/{siteId}/movements [get]
func (h *InventoryHandler) GetAllSiteMovements(c *fiber.Ctx) error {
	movements, err := h.history.GetAllSiteMovements(c.Context(), c.Params("siteId"))
	if err != nil {
		return respondError(c, err)
	}
	list := make([]dto.SiteMovementResponse, 0, len(movements))
	for _, m := range movements {
		list = append(list, dto.SiteMovementResponse{
			MovementResponse: toMovementResponse(&m.Movement),
			ItemName:         m.ItemName,
			ItemUnit:         m.ItemUnit,
		})
	}
	return c.JSON(list)
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:       m.ID,
		Type:     m.Type,
		Quantity: m.Quantity,
		Date:     m.Date,
		Reason:   m.Reason,
		UserID:   m.UserID,
		UserName: m.UserName,
	}
}
