package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/usecase"
)

// ListHandler listas para combos del frontend (protegido).
type ListHandler struct {
	users    *usecase.UserUseCase
	products *usecase.ProductUseCase
	lookups  *usecase.LookupUseCase
	errs     errorWriter
}

// NewListHandler construye el handler.
func NewListHandler(users *usecase.UserUseCase, products *usecase.ProductUseCase, lookups *usecase.LookupUseCase, errs errorWriter) *ListHandler {
	return &ListHandler{users: users, products: products, lookups: lookups, errs: errs}
}

// Customers godoc
// @Summary      Clientes como opciones {text, value}
// @Tags         lists
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]dto.OptionResponse
// @Router       /list/users [get]
func (h *ListHandler) Customers(c *fiber.Ctx) error {
	out, err := h.users.Options(c.UserContext(), GetEstablishmentID(c), true, "")
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(fiber.Map{"customers": out})
}

// Vendors godoc
// @Summary      Vendedores (sin el llamante) como opciones {text, value}
// @Tags         lists
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]dto.OptionResponse
// @Router       /list/vendors [get]
func (h *ListHandler) Vendors(c *fiber.Ctx) error {
	out, err := h.users.Options(c.UserContext(), GetEstablishmentID(c), false, GetUserID(c))
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(fiber.Map{"vendors": out})
}

// Products godoc
// @Summary      Productos del establecimiento
// @Tags         lists
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]dto.ProductResponse
// @Router       /list/products [get]
func (h *ListHandler) Products(c *fiber.Ctx) error {
	out, err := h.products.List(c.UserContext(), GetEstablishmentID(c))
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(fiber.Map{"products": out})
}

// PaymentMethods godoc
// @Summary      Catálogo de métodos de pago
// @Tags         lists
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /list/paymentMethods [get]
func (h *ListHandler) PaymentMethods(c *fiber.Ctx) error {
	out, err := h.lookups.PaymentMethods(c.UserContext())
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(fiber.Map{"paymentMethods": out, "message": usecase.MsgPaymentMethodsFound})
}

// Statuses godoc
// @Summary      Catálogo de estados de venta
// @Tags         lists
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /list/status [get]
func (h *ListHandler) Statuses(c *fiber.Ctx) error {
	out, err := h.lookups.Statuses(c.UserContext())
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": out, "message": usecase.MsgStatusesFound})
}
