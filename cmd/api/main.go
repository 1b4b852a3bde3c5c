package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jrpvbrasil/portal-api/internal/application/boletos"
	infrapdf "github.com/jrpvbrasil/portal-api/internal/infrastructure/pdf"
	infrasga "github.com/jrpvbrasil/portal-api/internal/infrastructure/sga"
	httpRouter "github.com/jrpvbrasil/portal-api/internal/interfaces/http"
	"github.com/jrpvbrasil/portal-api/pkg/config"
	"github.com/jrpvbrasil/portal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	sgaClient := infrasga.NewClient(cfg.SGA, log)
	consultaUC := boletos.NewConsultarUseCase(sgaClient, log)

	pdfGenerator := infrapdf.NewMarotoSegundaVia(cfg.App.Name)
	segundaViaUC := boletos.NewSegundaViaUseCase(consultaUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal do Associado JRPV",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Consulta:   consultaUC,
		SegundaVia: segundaViaUC,
		Log:        log,
	})

	// SPA do portal: arquivos estáticos + fallback para index.html
	app.Static("/", cfg.Estatico.Dir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.Estatico.Dir, "index.html"))
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
