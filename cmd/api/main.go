package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	apprecuento "github.com/jhoicas/recuento-api/internal/application/recuento"
	"github.com/jhoicas/recuento-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/recuento-api/internal/infrastructure/pdf"
	"github.com/jhoicas/recuento-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/recuento-api/internal/interfaces/http"
	"github.com/jhoicas/recuento-api/pkg/config"
	"github.com/jhoicas/recuento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	files, err := storage.NewLocalStore(cfg.Inventory.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("carpeta de subidas")
	}

	reader := excel.NewReader()
	syncer := excel.NewResultWriter(cfg.Inventory.ResultsSheet)
	reportGen := infrapdf.NewMarotoReportGenerator()

	inventoryUC := apprecuento.NewUseCase(cfg.Inventory, log, files, reader, syncer, reportGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recuento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
