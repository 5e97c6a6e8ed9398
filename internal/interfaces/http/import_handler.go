package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/importer"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// ImportHandler importación de exportaciones CSV del punto de venta (protegido).
type ImportHandler struct {
	im       *importer.Importer
	validate *validation.Validator
	errs     errorWriter
}

// NewImportHandler construye el handler.
func NewImportHandler(im *importer.Importer, validate *validation.Validator, errs errorWriter) *ImportHandler {
	return &ImportHandler{im: im, validate: validate, errs: errs}
}

// Orders godoc
// @Summary      Importar ventas desde archivo
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "start_date, end_date"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /orders/addOrdersFromFile [post]
func (h *ImportHandler) Orders(c *fiber.Ctx) error {
	return h.run(c, importer.KindSales)
}

// Products godoc
// @Summary      Importar productos desde archivo
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "start_date, end_date"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /products/addProductsFromFile [post]
func (h *ImportHandler) Products(c *fiber.Ctx) error {
	return h.run(c, importer.KindProducts)
}

// Customers godoc
// @Summary      Importar clientes desde archivo
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "start_date, end_date"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/addUsersFromFile [post]
func (h *ImportHandler) Customers(c *fiber.Ctx) error {
	return h.run(c, importer.KindCustomers)
}

// ByCategory godoc
// @Summary      Importar el archivo de la categoría informada (Customer, Product, Sale)
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "start_date, end_date, category"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /imports [post]
func (h *ImportHandler) ByCategory(c *fiber.Ctx) error {
	return h.run(c, "")
}

// run kind vacío toma el tipo de la categoría del cuerpo.
func (h *ImportHandler) run(c *fiber.Ctx, kind importer.Kind) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	res := h.validate.Struct(in)
	if kind == "" && in.Category == "" {
		if res.Errors == nil {
			res.Errors = map[string][]string{}
		}
		res.Success = false
		res.Errors["category"] = append(res.Errors["category"], "The category field is required.")
	}
	if !res.Success {
		return h.errs.invalid(c, MsgInvalidPayload, res)
	}
	if kind == "" {
		kind, _ = importer.KindForCategory(in.Category)
	}
	sum, err := h.im.Import(c.UserContext(), GetEstablishmentID(c), kind, in.Range())
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(dto.ImportResponse{
		Message: fmt.Sprintf("Arquivo lido com sucesso (%s)", sum.File),
		Summary: *sum,
	})
}
