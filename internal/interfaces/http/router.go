// Package http expose l'API REST (Fiber) : routage, middlewares et handlers.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/auth"
	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/application/usecase"
	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	FinanceUC    *finance.UseCase
	WorkUC       *usecase.WorkUseCase
	DisciplineUC *usecase.DisciplineUseCase
	OrderUC      *usecase.OrderUseCase
	SaleUC       *usecase.SaleUseCase
	RoyaltyUC    *usecase.RoyaltyUseCase
	PartnerUC    *usecase.PartnerUseCase
	JWTSecret    string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Finance : réservé au PDG
	pdgOnly := RequireRole(entity.RolePDG)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	protected.Get("/finance", pdgOnly, financeHandler.GetReport)
	protected.Get("/finance/export", pdgOnly, financeHandler.Export)

	// Catalogue
	works := protected.Group("/works")
	workHandler := NewWorkHandler(deps.WorkUC)
	works.Get("/", workHandler.List)
	works.Post("/", RequireRole(entity.RolePDG, entity.RoleConcepteur), workHandler.Create)
	works.Get("/:id", workHandler.GetByID)
	works.Put("/:id", RequireRole(entity.RolePDG, entity.RoleConcepteur), workHandler.Update)

	disciplines := protected.Group("/disciplines")
	disciplineHandler := NewDisciplineHandler(deps.DisciplineUC)
	disciplines.Get("/", disciplineHandler.List)
	disciplines.Post("/", pdgOnly, disciplineHandler.Create)

	// Commandes
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", RequireRole(entity.RolePDG, entity.RoleRepresentant), orderHandler.UpdateStatus)

	// Ventes directes
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", RequireRole(entity.RolePDG, entity.RoleRepresentant), saleHandler.Create)
	sales.Get("/", RequireRole(entity.RolePDG, entity.RoleRepresentant), saleHandler.List)

	// Droits d'auteur : réservé au PDG
	royalties := protected.Group("/royalties", pdgOnly)
	royaltyHandler := NewRoyaltyHandler(deps.RoyaltyUC)
	royalties.Get("/", royaltyHandler.List)
	royalties.Post("/calculate", royaltyHandler.Calculate)
	royalties.Post("/pay", royaltyHandler.Pay)

	// Partenaires
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Get("/", partnerHandler.List)
	partners.Post("/", pdgOnly, partnerHandler.Create)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id", pdgOnly, partnerHandler.UpdateStatus)
}
