package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mascotas-api/internal/application/usecase"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/mascotas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mascotas-api/internal/interfaces/http"
	"github.com/jhoicas/mascotas-api/pkg/config"
	"github.com/jhoicas/mascotas-api/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

// storage repositorios del driver elegido con STORAGE_DRIVER.
type storage struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	db         httpRouter.Pinger
	close      func()
}

func openStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*storage, error) {
	if cfg.Driver == "memory" {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &storage{
			users:      store.Users(),
			categories: store.Categories(),
			products:   store.Products(),
			orders:     store.Orders(),
			db:         store,
			close:      func() {},
		}, nil
	}

	if cfg.MigrateOnStart {
		if err := migrateUp(cfg, log); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &storage{
		users:      postgres.NewUserRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		products:   postgres.NewProductRepository(pool),
		orders:     postgres.NewOrderRepository(pool),
		db:         pool,
		close:      pool.Close,
	}, nil
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	st, err := openStorage(ctx, cfg.DB, log)
	if err != nil {
		log.Error().Err(err).Msg("inicializar almacenamiento")
		return err
	}
	defer st.close()

	userUC := usecase.NewUserUseCase(st.users, usecase.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(st.categories)
	productUC := usecase.NewProductUseCase(st.products, st.categories, time.Duration(cfg.Catalog.RecentDays)*24*time.Hour)

	// PDF: comprobante del pedido
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)
	orderUC := usecase.NewOrderUseCase(st.orders, st.users, receipts)

	metrics := httpRouter.NewMetrics()
	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, log, metrics)

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:     userUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		OrderUC:    orderUC,
		DB:         st.db,
		Metrics:    metrics,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	if err := waitForShutdown(quit, listenErr); err != nil {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		return err
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// waitForShutdown bloquea hasta una señal de apagado (nil) o hasta que Listen termine por su cuenta.
// Un Listen que retorna sin señal, incluso con nil, es un error: el puerto ya no se atiende.
func waitForShutdown(quit <-chan os.Signal, listenErr <-chan error) error {
	select {
	case <-quit:
		return nil
	case err := <-listenErr:
		if err == nil {
			err = errors.New("el servidor HTTP se detuvo inesperadamente")
		}
		return fmt.Errorf("escuchar HTTP: %w", err)
	}
}
