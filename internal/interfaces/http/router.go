package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin-api/internal/application/auth"
	"github.com/jhoicas/catalogo-admin-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *catalog.CategoryUseCase
	SubCategoryUC *catalog.SubCategoryUseCase
	ProductUC     *catalog.ProductUseCase
	Tokens        *token.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protect := AuthMiddleware(deps.Tokens)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh-token", authHandler.Refresh)

	// Categories: listado público, escritura protegida
	categories := api.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", protect, categoryHandler.Create)
	categories.Put("/:id", protect, categoryHandler.Update)
	categories.Delete("/:id", protect, categoryHandler.Delete)

	// SubCategories (protegido)
	subCategories := api.Group("/sub-category", protect)
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	subCategories.Get("/", subCategoryHandler.List)
	subCategories.Post("/", subCategoryHandler.Create)
	subCategories.Put("/:id", subCategoryHandler.Update)
	subCategories.Delete("/:id", subCategoryHandler.Delete)

	// Products (protegido)
	products := api.Group("/product", protect)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
