package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/order-desk/internal/application/analytics"
	"github.com/jhoicas/order-desk/internal/application/session"
	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions  *session.Service
	Stats     *analytics.StatsUseCase
	Transfer  *transfer.Service
	Catalog   *entity.Catalog
	Users     []entity.User
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Sessions)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	api.Get("/session", authHandler.Restore)

	// Catálogo (público: la pantalla de login lista los usuarios)
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Users)
	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/", catalogHandler.Get)
	catalogGroup.Get("/sellers", catalogHandler.Sellers)
	catalogGroup.Get("/destinations", catalogHandler.Destinations)
	catalogGroup.Get("/products", catalogHandler.Products)

	// Rutas protegidas (Bearer Token de la sesión activa)
	auth := AuthMiddleware(deps.JWTSecret, deps.Sessions)

	formHandler := NewFormHandler(deps.Sessions)
	api.Get("/form", auth, formHandler.Get)
	api.Post("/form/select", auth, formHandler.Select)
	api.Put("/session/view", auth, authHandler.SetViewMode)
	api.Delete("/session/edit", auth, formHandler.CancelEdit)

	orderHandler := NewOrderHandler(deps.Sessions, deps.Stats, deps.Transfer)
	ordersGroup := api.Group("/orders", auth)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/search", orderHandler.Search)
	ordersGroup.Get("/stats", orderHandler.Stats)
	ordersGroup.Get("/export", orderHandler.Export)
	ordersGroup.Post("/import", RequireRole(entity.RoleAdmin), orderHandler.Import)
	ordersGroup.Post("/submit", orderHandler.Submit)
	ordersGroup.Post("/delete", orderHandler.Delete)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Post("/:id/edit", formHandler.BeginEdit)
}
