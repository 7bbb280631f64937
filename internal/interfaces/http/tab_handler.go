package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hosteleria-api/internal/application/dto"
	"github.com/jhoicas/Hosteleria-api/internal/application/tabs"
	"github.com/jhoicas/Hosteleria-api/internal/domain"
)

// TabHandler maneja las peticiones HTTP de cuentas de bar.
type TabHandler struct {
	uc *tabs.TabUseCase
}

// NewTabHandler construye el handler.
func NewTabHandler(uc *tabs.TabUseCase) *TabHandler {
	return &TabHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir cuenta de bar
// @Tags         tabs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTabRequest  true  "Departamento, cliente y saldo inicial"
// @Success      201   {object}  dto.TabResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tabs [post]
func (h *TabHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTabRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "department y customer_name son requeridos; balance no negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Pay godoc
// @Summary      Aplicar pago a una cuenta
// @Tags         tabs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.PayTabRequest  true  "Importe en Ar"
// @Success      200   {object}  dto.TabResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tabs/{id}/pay [post]
func (h *TabHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayTabRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Pay(c.Context(), c.Params("id"), in.Amount)
	if err != nil {
		return tabError(c, err)
	}
	return c.JSON(out)
}

// MarkUnpaid godoc
// @Summary      Marcar cuenta como no cobrada
// @Tags         tabs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.TabResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tabs/{id}/unpaid [post]
func (h *TabHandler) MarkUnpaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkUnpaid(c.Context(), c.Params("id"))
	if err != nil {
		return tabError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cuenta por ID
// @Tags         tabs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.TabResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tabs/{id} [get]
func (h *TabHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return tabError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cuentas de un departamento
// @Tags         tabs
// @Security     Bearer
// @Produce      json
// @Param        department  query  string  true   "pub | restaurant"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.TabListResponse
// @Router       /api/tabs [get]
func (h *TabHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("department"), limit, offset)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "department inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func tabError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
	case domain.ErrInvalidAmount:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "el importe debe ser positivo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
