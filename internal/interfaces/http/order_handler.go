package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// Mensajes de fallo de pedidos.
const (
	MsgOrderCreateFailed = "Não foi possível cadastrar a venda"
	MsgStatusEditFailed  = "Não foi possível alterar o status"
)

// OrderHandler alta, cambio de estado y consultas de pedidos (protegido).
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	validate *validation.Validator
	errs     errorWriter
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, validate *validation.Validator, errs errorWriter) *OrderHandler {
	return &OrderHandler{uc: uc, validate: validate, errs: errs}
}

// Add godoc
// @Summary      Registrar venta
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddOrderRequest  true  "Venta"
// @Success      200   {object}  dto.OrderCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders/add [post]
func (h *OrderHandler) Add(c *fiber.Ctx) error {
	var in dto.AddOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgOrderCreateFailed, res)
	}
	order, err := h.uc.Add(c.UserContext(), GetEstablishmentID(c), in)
	if err != nil {
		return h.errs.failWith(c, err, MsgOrderCreateFailed)
	}
	return c.JSON(dto.OrderCreatedResponse{Message: usecase.MsgOrderCreated, ID: order.ID})
}

// EditStatus godoc
// @Summary      Cambiar estado de una venta
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditStatusRequest  true  "id y status"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders/editStatus [post]
func (h *OrderHandler) EditStatus(c *fiber.Ctx) error {
	var in dto.EditStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgStatusEditFailed, res)
	}
	if _, err := h.uc.EditStatus(c.UserContext(), GetEstablishmentID(c), in); err != nil {
		return h.errs.failWith(c, err, MsgStatusEditFailed)
	}
	return c.JSON(dto.MessageResponse{Message: usecase.MsgOrderStatusChanged})
}

// Filter godoc
// @Summary      Filtrar ventas
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterOrdersRequest  true  "customer, vendor, date [inicio, fin], status"
// @Success      200   {object}  dto.OrderListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders/filter [post]
func (h *OrderHandler) Filter(c *fiber.Ctx) error {
	var in dto.FilterOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgInvalidPayload, res)
	}
	orders, err := h.uc.Filter(c.UserContext(), GetEstablishmentID(c), in)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(dto.OrderListResponse{Orders: orders, Message: usecase.MsgOrdersFound})
}

// ByEstablishment godoc
// @Summary      Ventas del establecimiento
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        establishment  query  string  true   "ID del establecimiento (debe ser el del usuario)"
// @Param        customer       query  string  false  "ID del cliente"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /orders/establishment [get]
func (h *OrderHandler) ByEstablishment(c *fiber.Ctx) error {
	orders, err := h.uc.ByEstablishment(c.UserContext(), GetEstablishmentID(c), c.Query("establishment"), c.Query("customer"))
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(dto.OrderListResponse{Orders: orders, Message: usecase.MsgOrdersFound})
}
