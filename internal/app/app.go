package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/anticrisis"
	"github.com/fsdevblog/anticrisis/internal/config"
	"github.com/fsdevblog/anticrisis/internal/metrics"
	"github.com/fsdevblog/anticrisis/internal/repository/pgrepo"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/internal/service"
	"github.com/fsdevblog/anticrisis/internal/transport/api"
	"github.com/fsdevblog/anticrisis/internal/transport/reconciler"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает http сервер и фоновую сверку счетчиков и ждет SIGINT/SIGTERM. Ошибка любой из частей
// останавливает обе.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":        a.Config.RunAddress,
		"logLevel":          a.Config.LogLevel,
		"reconcileInterval": a.Config.ReconcileInterval.String(),
		"reconcileBatch":    a.Config.ReconcileBatch,
		"reconcileWorkers":  a.Config.ReconcileWorkers,
	}).Info("Starting app")

	conn, services, initErr := a.init(notifyCtx)
	if initErr != nil {
		return fmt.Errorf("app run: %w", initErr)
	}
	defer conn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, routerErr := api.New(api.RouterArgs{
		Logger:          a.Logger,
		UserService:     services.UserService,
		ProfileService:  services.ProfileService,
		FollowService:   services.FollowService,
		DiscountService: services.DiscountService,
		PostService:     services.PostService,
		JWTSecretKey:    []byte(a.Config.JWTUserSecret),
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if a.Config.ReconcileInterval > 0 {
		processor := a.newReconciler(services.ReconcileService).
			SetInterval(a.Config.ReconcileInterval).
			SetMetrics(metrics.NewReconcileMetrics(registry))
		g.Go(func() error {
			processor.Run(gCtx)
			return nil
		})
	} else {
		a.Logger.Warn("counter reconciler disabled")
	}

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

// Reconcile выполняет один полный проход сверки счетчиков всех профилей.
func (a *App) Reconcile(ctx context.Context) (*reconciler.Report, error) {
	conn, services, initErr := a.init(ctx)
	if initErr != nil {
		return nil, fmt.Errorf("app reconcile: %w", initErr)
	}
	defer conn.Close()

	report, err := a.newReconciler(services.ReconcileService).RunOnce(ctx)
	if err != nil {
		return report, fmt.Errorf("app reconcile: %w", err)
	}
	return report, nil
}

func (a *App) newReconciler(svs reconciler.Servicer) *reconciler.Processor {
	return reconciler.New(svs, a.Logger).
		SetBatchSize(a.Config.ReconcileBatch).
		SetWorkers(a.Config.ReconcileWorkers)
}

func (a *App) init(ctx context.Context) (*pgxpool.Pool, *service.AppServices, error) {
	migrations, subErr := fs.Sub(anticrisis.MigrationsFS, "migrations")
	if subErr != nil {
		return nil, nil, fmt.Errorf("init: %s", subErr.Error())
	}

	conn, connErr := pgrepo.Connect(ctx, migrations, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, fmt.Errorf("init: %w", connErr)
	}

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("init: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret))
	if sErr != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("init: %s", sErr.Error())
	}
	return conn, services, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn, uow.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}))

	factories := []struct {
		name    repoargs.RepositoryName
		factory uow.RepositoryFactory
	}{
		{repoargs.UserRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) }},
		{repoargs.ProfileRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewProfileRepository(dbtx) }},
		{repoargs.FollowRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewFollowRepository(dbtx) }},
		{repoargs.DiscountRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewDiscountRepository(dbtx) }},
		{repoargs.PostRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPostRepository(dbtx) }},
	}
	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s repo: %s", f.name, regErr.Error())
		}
	}
	return unitOfWork, nil
}
