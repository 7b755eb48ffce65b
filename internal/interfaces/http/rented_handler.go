package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/application/usecase"
)

// RentedHandler maneja los equipos alquilados de una obra (protegido).
type RentedHandler struct {
	uc *usecase.RentedEquipmentUseCase
}

// NewRentedHandler construye el handler.
func NewRentedHandler(uc *usecase.RentedEquipmentUseCase) *RentedHandler {
	return &RentedHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de equipo alquilado
// @Tags         rented-equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Param        body    body  dto.RegisterEntryRequest  true  "datos del equipo y fotos de entrada"
// @Success      201  {object}  dto.RentedEquipmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/rented-equipment [post]
func (h *RentedHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.RegisterEntry(c.Params("siteId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RegisterExit godoc
// @Summary      Registrar salida de equipo alquilado
// @Tags         rented-equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        siteId       path  string  true  "ID de la obra"
// @Param        equipmentId  path  string  true  "ID del equipo"
// @Param        body         body  dto.RegisterExitRequest  true  "fecha y fotos de salida"
// @Success      200  {object}  dto.RentedEquipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sites/{siteId}/rented-equipment/{equipmentId}/exit [post]
func (h *RentedHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.RegisterExitRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.RegisterExit(c.Params("siteId"), c.Params("equipmentId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar equipos alquilados de una obra
// @Tags         rented-equipment
// @Security     Bearer
// @Produce      json
// @Param        siteId  path  string  true  "ID de la obra"
// @Success      200  {array}  dto.RentedEquipmentResponse
// @Router       /api/sites/{siteId}/rented-equipment [get]
func (h *RentedHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Params("siteId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
