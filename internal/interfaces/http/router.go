package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dparada2020225/inventario-server/internal/application/auth"
	"github.com/dparada2020225/inventario-server/internal/application/sales"
	"github.com/dparada2020225/inventario-server/internal/application/usecase"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	ImageUC    *usecase.ImageUseCase
	CreateSale *sales.CreateSaleUseCase
	SaleQuery  *sales.QueryUseCase
	SalePDF    *sales.PDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: register es público para rol user, pero crear un admin exige
	// token de admin, por eso lleva auth opcional.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", OptionalAuthMiddleware(deps.JWTSecret), authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/users", requireAuth, adminOnly, authHandler.ListUsers)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Products: lectura autenticada, mutaciones y export solo admin.
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/export-csv", adminOnly, productHandler.ExportCSV) // antes de /:id
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales: todo solo admin.
	salesGroup := api.Group("/sales", requireAuth, adminOnly)
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQuery, deps.SalePDF)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.DownloadPDF)

	// Imágenes: subida autenticada, lectura pública.
	uploadHandler := NewUploadHandler(deps.ImageUC)
	app.Post("/upload", requireAuth, uploadHandler.Upload)
	app.Get("/images/:id", uploadHandler.GetImage)
}
