package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/Vendas-api/internal/application/auth"
	"github.com/jhoicas/Vendas-api/internal/application/importer"
	"github.com/jhoicas/Vendas-api/internal/application/report"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName     string
	AuthUC          *auth.AuthUseCase
	EstablishmentUC *usecase.EstablishmentUseCase
	UserUC          *usecase.UserUseCase
	ProductUC       *usecase.ProductUseCase
	OrderUC         *usecase.OrderUseCase
	LookupUC        *usecase.LookupUseCase
	Importer        *importer.Importer
	Reports         *report.Service
	Validator       *validation.Validator
	Location        *time.Location
	Ping            func(ctx context.Context) error
	Log             *logger.Logger
	// SignInLimit peticiones por minuto y por IP a /users/signin; 0 desactiva el limitador.
	SignInLimit int
}

// Router registra las rutas de la API (sin prefijo /api, como los clientes existentes esperan).
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Validator == nil {
		deps.Validator = validation.New(deps.Location)
	}
	errs := errorWriter{log: deps.Log.Named("http")}

	app.Get("/health", NewHealthHandler(deps.ServiceName, deps.Ping).Health)

	// Públicas
	establishmentHandler := NewEstablishmentHandler(deps.EstablishmentUC, deps.Validator, errs)
	app.Post("/establishments/signup", establishmentHandler.SignUp)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator, errs)
	app.Post("/users/signup", authHandler.SignUp)
	signIn := []fiber.Handler{}
	if deps.SignInLimit > 0 {
		signIn = append(signIn, limiter.New(limiter.Config{Max: deps.SignInLimit, Expiration: time.Minute}))
	}
	app.Post("/users/signin", append(signIn, authHandler.SignIn)...)

	// Rutas protegidas (requieren token)
	requireAuth := AuthMiddleware(deps.AuthUC, errs.log)
	importHandler := NewImportHandler(deps.Importer, deps.Validator, errs)

	// /users mezcla rutas públicas y protegidas: el middleware va por ruta.
	users := app.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Validator, errs)
	users.Get("/", requireAuth, userHandler.List)
	users.Get("/vendor", requireAuth, userHandler.GetVendor)
	users.Get("/vendors", requireAuth, userHandler.ListVendors)
	users.Get("/customer", requireAuth, userHandler.GetCustomer)
	users.Get("/customers", requireAuth, userHandler.ListCustomers)
	users.Post("/editVendor", requireAuth, userHandler.EditVendor)
	users.Post("/editCustomer", requireAuth, userHandler.EditCustomer)
	users.Post("/deleteVendor", requireAuth, userHandler.DeleteVendor)
	users.Post("/addUsersFromFile", requireAuth, importHandler.Customers)

	products := app.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC, deps.Validator, errs)
	products.Post("/addProduct", productHandler.Add)
	products.Get("/getProducts", productHandler.List)
	products.Post("/addProductsFromFile", importHandler.Products)

	orders := app.Group("/orders", requireAuth)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Validator, errs)
	orders.Post("/add", orderHandler.Add)
	orders.Post("/editStatus", orderHandler.EditStatus)
	orders.Post("/filter", orderHandler.Filter)
	orders.Get("/establishment", orderHandler.ByEstablishment)
	orders.Post("/addOrdersFromFile", importHandler.Orders)

	app.Post("/imports", requireAuth, importHandler.ByCategory)

	reports := app.Group("/reports", requireAuth)
	reportHandler := NewReportHandler(deps.Reports, deps.OrderUC, deps.Validator, deps.Location, errs)
	reports.Post("/orders", reportHandler.Orders)
	reports.Post("/products", reportHandler.Products)
	reports.Post("/users", reportHandler.Users)
	reports.Post("/clients", reportHandler.Clients)
	reports.Post("/sales", reportHandler.Sales)
	reports.Post("/orders/info", reportHandler.Info)
	reports.Post("/orders/info/pdf", reportHandler.InfoPDF)
	reports.Post("/orders/filter", reportHandler.Filter)

	lists := app.Group("/list", requireAuth)
	listHandler := NewListHandler(deps.UserUC, deps.ProductUC, deps.LookupUC, errs)
	lists.Get("/users", listHandler.Customers)
	lists.Get("/vendors", listHandler.Vendors)
	lists.Get("/products", listHandler.Products)
	lists.Get("/paymentMethods", listHandler.PaymentMethods)
	lists.Get("/status", listHandler.Statuses)
}
