package migrate

import (
	"context"
	"fmt"

	"github.com/muskieco/retail-backend/pkg/config"
	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/db/models"
	"github.com/muskieco/retail-backend/pkg/logger"
)

// tables lists every model the schema bootstrap manages, in dependency order.
var tables = []any{
	&models.Store{},
	&models.Staff{},
	&models.Customer{},
	&models.Product{},
	&models.Discount{},
	&models.Transaction{},
	&models.TransactionItem{},
	&models.CustomerSignUp{},
}

// MaybeRunDev creates or updates the schema automatically when the app is
// running in dev mode and the feature flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "tables": len(tables)})
	logg.Info(ctx, "running schema auto-migration (dev auto-run)")

	if err := client.DB().WithContext(ctx).AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}

	logg.Info(ctx, "schema auto-migration completed")
	return nil
}
