package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"skillmatrix/internal/config"
	"skillmatrix/internal/database"
	"skillmatrix/internal/database/migration"
	dbpostgres "skillmatrix/internal/database/postgres"
	"skillmatrix/internal/database/seeder"
	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/infrastructure/cache"
	"skillmatrix/internal/metrics"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/repository/memory"
	"skillmatrix/internal/ws"
	"skillmatrix/migrations"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Container owns the long-lived dependencies of one process.
type Container struct {
	Config   config.Config
	Logger   *log.Logger
	DB       database.DB
	Store    skill.Store
	Cache    *cache.Redis
	Hub      *ws.Hub
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: logger}

	store, err := c.openStore(ctx)
	if err != nil {
		return nil, err
	}
	c.Store = store

	if cfg.Store.SeedDemo {
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, store); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)

	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = metrics.New(c.Registry)

	hubCtx, stopHub := context.WithCancel(context.Background())
	c.Hub = ws.NewHub(logger)
	c.stopHub = stopHub
	go c.Hub.Run(hubCtx)

	return c, nil
}

func (c *Container) openStore(ctx context.Context) (skill.Store, error) {
	switch c.Config.Store.Driver {
	case config.DriverPostgres:
		db, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db

		if c.Config.Database.AutoMigrate {
			if err := migrationRunner(c.Config.Database.MigrationsDir).Run(ctx, db.SQLDB()); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		c.Logger.Printf("[Store] postgres ready | host=%s db=%s", c.Config.Database.DBHost, c.Config.Database.DBName)
		return repository.NewPostgresStore(db), nil
	case config.DriverMemory:
		c.Logger.Printf("[Store] in-memory store ready")
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
	}
}

// migrationRunner prefers an explicit directory over the embedded schema.
func migrationRunner(dir string) migration.Runner {
	if dir == "" {
		return migration.Runner{FS: migrations.FS}
	}
	return migration.Runner{Dir: dir}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
