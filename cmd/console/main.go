package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/muskieco/retail-backend/internal/console"
	"github.com/muskieco/retail-backend/internal/customers"
	"github.com/muskieco/retail-backend/internal/discounts"
	"github.com/muskieco/retail-backend/internal/ledger"
	"github.com/muskieco/retail-backend/internal/products"
	"github.com/muskieco/retail-backend/internal/reports"
	"github.com/muskieco/retail-backend/internal/rewards"
	"github.com/muskieco/retail-backend/internal/staff"
	"github.com/muskieco/retail-backend/internal/stores"
	"github.com/muskieco/retail-backend/pkg/config"
	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/logger"
	"github.com/muskieco/retail-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "console"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "console",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	services, err := buildServices(dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	ui, err := console.New(services, logg, os.Stdin, os.Stdout)
	if err != nil {
		logg.Error(context.Background(), "failed to build console", err)
		os.Exit(1)
	}

	if err := ui.Run(context.Background()); err != nil {
		logg.Error(context.Background(), "console session failed", err)
		os.Exit(1)
	}
}

func buildServices(dbClient *db.Client) (console.Services, error) {
	var services console.Services
	var err error

	conn := dbClient.DB()
	if services.Stores, err = stores.NewService(stores.NewRepository(conn)); err != nil {
		return services, err
	}
	if services.Products, err = products.NewService(products.NewRepository(conn)); err != nil {
		return services, err
	}
	if services.Customers, err = customers.NewService(customers.NewRepository(conn), dbClient); err != nil {
		return services, err
	}
	if services.Staff, err = staff.NewService(staff.NewRepository(conn)); err != nil {
		return services, err
	}
	if services.Discounts, err = discounts.NewService(discounts.NewRepository(conn)); err != nil {
		return services, err
	}
	if services.Ledger, err = ledger.NewService(ledger.NewRepository(conn), dbClient); err != nil {
		return services, err
	}
	if services.Reports, err = reports.NewService(reports.NewRepository(conn)); err != nil {
		return services, err
	}
	if services.Rewards, err = rewards.NewService(rewards.NewRepository(conn)); err != nil {
		return services, err
	}
	return services, nil
}
