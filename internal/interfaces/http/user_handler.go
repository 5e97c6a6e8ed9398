package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// Mensajes de usuarios.
const (
	MsgUserUpdated = "Usuário alterado com sucesso"
	MsgUserDeleted = "Colaborador removido com sucesso"
	MsgMissingID   = "O id deve ser informado"
)

// UserHandler consultas y edición de vendedores y clientes (protegido).
type UserHandler struct {
	uc       *usecase.UserUseCase
	validate *validation.Validator
	errs     errorWriter
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, validate *validation.Validator, errs errorWriter) *UserHandler {
	return &UserHandler{uc: uc, validate: validate, errs: errs}
}

// List godoc
// @Summary      Listar o filtrar usuarios del establecimiento
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        name      query  string  false  "Nombre exacto"
// @Param        email     query  string  false  "Email exacto"
// @Param        customer  query  string  false  "true | false"
// @Success      200  {object}  dto.UserListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.UserQuery
	if err := c.QueryParser(&q); err != nil {
		return h.errs.badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetEstablishmentID(c), q)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(out)
}

// GetVendor godoc
// @Summary      Obtener vendedor
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   query  string  true  "ID del vendedor"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/vendor [get]
func (h *UserHandler) GetVendor(c *fiber.Ctx) error {
	return h.get(c, false)
}

// GetCustomer godoc
// @Summary      Obtener cliente
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   query  string  true  "ID del cliente"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/customer [get]
func (h *UserHandler) GetCustomer(c *fiber.Ctx) error {
	return h.get(c, true)
}

func (h *UserHandler) get(c *fiber.Ctx, customer bool) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Code: "MISSING_ID", Message: MsgMissingID})
	}
	out, err := h.uc.Get(c.UserContext(), GetEstablishmentID(c), id, customer)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(out)
}

// ListVendors godoc
// @Summary      Vendedores del establecimiento (sin el llamante)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /users/vendors [get]
func (h *UserHandler) ListVendors(c *fiber.Ctx) error {
	return h.listKind(c, false, GetUserID(c))
}

// ListCustomers godoc
// @Summary      Clientes del establecimiento
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /users/customers [get]
func (h *UserHandler) ListCustomers(c *fiber.Ctx) error {
	return h.listKind(c, true, "")
}

func (h *UserHandler) listKind(c *fiber.Ctx, customer bool, excludeID string) error {
	users, err := h.uc.ListByKind(c.UserContext(), GetEstablishmentID(c), customer, excludeID)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(dto.UserListResponse{Users: users, Size: len(users)})
}

// EditVendor godoc
// @Summary      Editar vendedor
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users/editVendor [post]
func (h *UserHandler) EditVendor(c *fiber.Ctx) error {
	return h.edit(c, false)
}

// EditCustomer godoc
// @Summary      Editar cliente
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a modificar (sin password)"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users/editCustomer [post]
func (h *UserHandler) EditCustomer(c *fiber.Ctx) error {
	return h.edit(c, true)
}

func (h *UserHandler) edit(c *fiber.Ctx, customer bool) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgInvalidPayload, res)
	}
	out, err := h.uc.Edit(c.UserContext(), GetEstablishmentID(c), customer, in)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": MsgUserUpdated, "user": out})
}

// DeleteVendor godoc
// @Summary      Eliminar vendedor
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IDRequest  true  "ID del vendedor"
// @Success      200   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users/deleteVendor [post]
func (h *UserHandler) DeleteVendor(c *fiber.Ctx) error {
	var in dto.IDRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgInvalidPayload, res)
	}
	p := GetPrincipal(c)
	if err := h.uc.DeleteVendor(c.UserContext(), p.EstablishmentID, p.UserID, in.ID); err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: MsgUserDeleted})
}
