package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// MsgProductsFound respuesta del listado de productos.
const MsgProductsFound = "Produtos buscados com sucesso"

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	validate *validation.Validator
	errs     errorWriter
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, validate *validation.Validator, errs errorWriter) *ProductHandler {
	return &ProductHandler{uc: uc, validate: validate, errs: errs}
}

// Add godoc
// @Summary      Registrar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductRequest  true  "{product: {...}}"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /products/addProduct [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgInvalidPayload, res)
	}
	out, err := h.uc.Add(c.UserContext(), GetEstablishmentID(c), in.Product)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": usecase.MsgProductCreated, "product": out})
}

// List godoc
// @Summary      Listar productos del establecimiento
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /products/getProducts [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.UserContext(), GetEstablishmentID(c))
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(dto.ProductListResponse{Products: products, Message: MsgProductsFound})
}
