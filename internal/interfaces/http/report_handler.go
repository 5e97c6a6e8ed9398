package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/report"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// ReportHandler reportes CSV, indicadores JSON y resumen PDF (protegido).
type ReportHandler struct {
	svc      *report.Service
	orders   *usecase.OrderUseCase
	validate *validation.Validator
	loc      *time.Location
	errs     errorWriter
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *report.Service, orders *usecase.OrderUseCase, validate *validation.Validator, loc *time.Location, errs errorWriter) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{svc: svc, orders: orders, validate: validate, loc: loc, errs: errs}
}

type tableFunc func(ctx context.Context, establishmentID string, p *report.Period) (report.Table, error)

// period valida el rango cuando viene informado; Period nil = sin filtro de fechas.
// Un ReportRequest nil indica que ya se respondió con el error.
func (h *ReportHandler) period(c *fiber.Ctx) (*dto.ReportRequest, *report.Period, error) {
	var in dto.ReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return nil, nil, h.errs.badBody(c)
		}
	}
	r := in.Range()
	if r.IsZero() {
		return &in, nil, nil
	}
	if res := h.validate.Struct(r); !res.Success {
		return nil, nil, h.errs.invalid(c, MsgInvalidPayload, res)
	}
	from, to, err := validation.ParseRange(r, h.loc)
	if err != nil {
		return nil, nil, h.errs.badBody(c)
	}
	return &in, &report.Period{From: from, To: to}, nil
}

func (h *ReportHandler) csv(c *fiber.Ctx, build tableFunc, defaultName string) error {
	in, p, err := h.period(c)
	if in == nil {
		return err
	}
	t, err := build(c.UserContext(), GetEstablishmentID(c), p)
	if err != nil {
		return h.errs.fail(c, err)
	}
	name := strings.TrimSpace(in.FileName)
	if name == "" {
		name = defaultName
	}
	c.Attachment(name + ".csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return t.WriteCSV(c)
}

// Orders godoc
// @Summary      Reporte CSV de ventas
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Param        body  body  dto.ReportRequest  false  "file_name, start_date, end_date"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/orders [post]
func (h *ReportHandler) Orders(c *fiber.Ctx) error {
	return h.csv(c, h.svc.Orders, "orders")
}

// Products godoc
// @Summary      Reporte CSV de productos
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Param        body  body  dto.ReportRequest  false  "file_name, start_date, end_date"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/products [post]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	return h.csv(c, h.svc.Products, "products")
}

// Users godoc
// @Summary      Reporte CSV de usuarios
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Param        body  body  dto.ReportRequest  false  "file_name, start_date, end_date"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/users [post]
func (h *ReportHandler) Users(c *fiber.Ctx) error {
	return h.csv(c, h.svc.Users, "users")
}

// Clients godoc
// @Summary      Reporte CSV de clientes
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Param        body  body  dto.ReportRequest  false  "file_name, start_date, end_date"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/clients [post]
func (h *ReportHandler) Clients(c *fiber.Ctx) error {
	return h.csv(c, h.svc.Clients, "clients")
}

// Sales godoc
// @Summary      Reporte CSV de ventas por vendedor
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      text/csv
// @Param        body  body  dto.ReportRequest  false  "file_name, start_date, end_date"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/sales [post]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	return h.csv(c, h.svc.Sales, "sales")
}

// Info godoc
// @Summary      Indicadores del establecimiento
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportRequest  false  "start_date, end_date"
// @Success      200   {object}  dto.OrdersInfoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/orders/info [post]
func (h *ReportHandler) Info(c *fiber.Ctx) error {
	in, p, err := h.period(c)
	if in == nil {
		return err
	}
	out, err := h.svc.Info(c.UserContext(), GetEstablishmentID(c), p)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(out)
}

// InfoPDF godoc
// @Summary      Indicadores del establecimiento en PDF
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ReportRequest  false  "file_name, start_date, end_date"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/orders/info/pdf [post]
func (h *ReportHandler) InfoPDF(c *fiber.Ctx) error {
	in, p, err := h.period(c)
	if in == nil {
		return err
	}
	doc, err := h.svc.SummaryPDF(c.UserContext(), GetEstablishmentID(c), p)
	if err != nil {
		return h.errs.fail(c, err)
	}
	name := strings.TrimSpace(in.FileName)
	if name == "" {
		name = "order-info"
	}
	c.Attachment(name + ".pdf")
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}

// Filter godoc
// @Summary      Indicadores y ventas del filtro
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterOrdersRequest  true  "customer, vendor, date [inicio, fin], status"
// @Success      200   {object}  dto.OrdersFilterReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /reports/orders/filter [post]
func (h *ReportHandler) Filter(c *fiber.Ctx) error {
	var in dto.FilterOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.badBody(c)
	}
	if res := h.validate.Struct(in); !res.Success {
		return h.errs.invalid(c, MsgInvalidPayload, res)
	}
	est := GetEstablishmentID(c)
	orders, err := h.orders.FilterOrders(c.UserContext(), est, in)
	if err != nil {
		return h.errs.fail(c, err)
	}
	out, err := h.svc.FilterReport(c.UserContext(), est, orders)
	if err != nil {
		return h.errs.fail(c, err)
	}
	return c.JSON(out)
}
