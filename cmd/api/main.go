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
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/order-desk/internal/application/analytics"
	"github.com/jhoicas/order-desk/internal/application/mirror"
	"github.com/jhoicas/order-desk/internal/application/orders"
	"github.com/jhoicas/order-desk/internal/application/session"
	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/infrastructure/catalogfile"
	"github.com/jhoicas/order-desk/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/order-desk/internal/infrastructure/pdf"
	"github.com/jhoicas/order-desk/internal/infrastructure/postgres"
	"github.com/jhoicas/order-desk/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/order-desk/internal/interfaces/http"
	"github.com/jhoicas/order-desk/pkg/config"
	"github.com/jhoicas/order-desk/pkg/logger"
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
		Str("data_dir", cfg.Storage.DataDir).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	loc := cfg.App.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	// Catálogo y directorio: si faltan o están dañados se usa la copia embebida.
	catalog, users := catalogfile.LoadWithFallback(ctx, catalogfile.Source{
		CatalogPath: cfg.Storage.CatalogPath,
		UsersPath:   cfg.Storage.UsersPath,
	}, log)

	store, err := localstore.NewFileStore(cfg.Storage.OrdersFile(), cfg.Storage.SessionFile())
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}

	repo := orders.NewRepository(store, log, orders.WithClock(clock))
	if err := repo.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar pedidos locales")
	}

	sessions := session.NewService(users, catalog, store, repo, session.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log, clock)
	if out, err := sessions.Restore(ctx); err == nil {
		log.Info().Str("user", out.User.Name).Msg("auto-login")
	}

	// Espejo remoto opcional: sin pool el espejo queda nil (deshabilitado) y la app
	// trabaja solo en local.
	var m *mirror.Mirror
	pool := connectMirror(ctx, cfg, log)
	if pool != nil {
		defer pool.Close()
		m = mirror.New(postgres.NewOrderMirrorRepository(pool), repo, log, cfg.Sync.PushTimeout)
	}
	background, bgCtx := errgroup.WithContext(ctx)
	if m.Enabled() {
		events := repo.Subscribe()
		background.Go(func() error {
			m.Run(bgCtx, events)
			return nil
		})
		background.Go(func() error {
			_, _ = m.Pull(bgCtx)
			m.Watch(bgCtx, postgres.NewChangeFeed(pool))
			return nil
		})
	}

	transferSvc := transfer.NewService(repo, log, clock)
	transferSvc.Register(transfer.FormatPDF, infrapdf.NewOrderReportEncoder(cfg.Export.PDFFontPath))
	transferSvc.Register(transfer.FormatXML, xmlexport.Encoder{})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 << 20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Order Desk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sync": m.Enabled()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:  sessions,
		Stats:     analytics.NewStatsUseCase(repo, clock),
		Transfer:  transferSvc,
		Catalog:   catalog,
		Users:     users,
		JWTSecret: cfg.JWT.Secret,
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
	stop()
	_ = background.Wait()
	<-repo.Done()

	log.Info().Msg("aplicación detenida")
}

// connectMirror abre el pool del espejo si la sincronización está habilitada.
// Devuelve nil si está deshabilitada o si el remoto no responde a tiempo.
func connectMirror(ctx context.Context, cfg *config.Config, log *logger.Logger) *pgxpool.Pool {
	if !cfg.Sync.Enabled {
		return nil
	}
	cctx, cancel := context.WithTimeout(ctx, cfg.Sync.ConnectTimeout)
	defer cancel()

	pool, err := postgres.NewPool(cctx, cfg.DB)
	if err != nil {
		log.Warn().Err(err).Msg("espejo remoto no disponible, se trabaja solo en local")
		return nil
	}
	if err := postgres.NewOrderMirrorRepository(pool).EnsureSchema(cctx); err != nil {
		log.Warn().Err(err).Msg("espejo remoto sin esquema, se trabaja solo en local")
		pool.Close()
		return nil
	}
	log.Info().Msg("espejo remoto conectado")
	return pool
}
