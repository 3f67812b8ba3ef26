package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/obame-dev/editions-api/docs"
	"github.com/obame-dev/editions-api/internal/application/auth"
	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/application/usecase"
	infraexcel "github.com/obame-dev/editions-api/internal/infrastructure/excel"
	infrapdf "github.com/obame-dev/editions-api/internal/infrastructure/pdf"
	"github.com/obame-dev/editions-api/internal/infrastructure/postgres"
	"github.com/obame-dev/editions-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/obame-dev/editions-api/internal/interfaces/http"
	"github.com/obame-dev/editions-api/pkg/config"
	"github.com/obame-dev/editions-api/pkg/logger"
)

// @title        Éditions API
// @version      1.0
// @description  API de la plateforme d'édition : catalogue, commandes, ventes, droits d'auteur et reporting financier PDG.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	disciplineRepo := postgres.NewDisciplineRepository(pool)
	workRepo := postgres.NewWorkRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	royaltyRepo := postgres.NewRoyaltyRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)

	authUC := auth.New(userRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})

	exporters := map[string]finance.Exporter{
		"pdf":  infrapdf.NewReportGenerator(),
		"xlsx": infraexcel.NewReportExporter(),
		"xml":  xmlexport.NewReportExporter(),
	}
	financeUC := finance.New(financeRepo, exporters)

	workUC := usecase.NewWorkUseCase(workRepo, disciplineRepo)
	disciplineUC := usecase.NewDisciplineUseCase(disciplineRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, workRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, workRepo)
	royaltyUC := usecase.NewRoyaltyUseCase(royaltyRepo)
	partnerUC := usecase.NewPartnerUseCase(partnerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Éditions API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		FinanceUC:    financeUC,
		WorkUC:       workUC,
		DisciplineUC: disciplineUC,
		OrderUC:      orderUC,
		SaleUC:       saleUC,
		RoyaltyUC:    royaltyUC,
		PartnerUC:    partnerUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
