package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vecindario/mercado-api/internal/application/service"
	"github.com/vecindario/mercado-api/internal/infrastructure/memory"
	"github.com/vecindario/mercado-api/internal/infrastructure/notify"
	httpRouter "github.com/vecindario/mercado-api/internal/interfaces/http"
	"github.com/vecindario/mercado-api/pkg/config"
	"github.com/vecindario/mercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Repositorios en memoria: una instancia por proceso, inyectada de forma
	// explícita, sin estado global a nivel de módulo.
	usuarioRepo := memory.NewUsuarioRepository()
	categoriaRepo := memory.NewCategoriaRepository()
	unidadRepo := memory.NewUnidadResidencialRepository()
	productoRepo := memory.NewProductoRepository()
	servicioRepo := memory.NewServicioRepository()
	consultaRepo := memory.NewConsultaRepository()

	notifier := notify.NewConsoleNotifier(log)

	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	unidadSvc := service.NewUnidadResidencialService(unidadRepo)
	publicacionSvc := service.NewPublicacionService(
		productoRepo, usuarioRepo, categoriaRepo, notifier, cfg.Market.MaxImagenes, log)
	servicioSvc := service.NewServicioService(
		servicioRepo, usuarioRepo, categoriaRepo, notifier, log)
	consultaSvc := service.NewConsultaService(
		consultaRepo, usuarioRepo, productoRepo, servicioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UsuarioSvc:     usuarioSvc,
		CategoriaSvc:   categoriaSvc,
		UnidadSvc:      unidadSvc,
		PublicacionSvc: publicacionSvc,
		ServicioSvc:    servicioSvc,
		ConsultaSvc:    consultaSvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
