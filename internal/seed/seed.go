package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rojgarhub/backend/internal/pkg/logger"
)

// defaultSettings are the key_value_store entries every install starts with.
// Existing keys are never overwritten.
var defaultSettings = map[string]interface{}{
	"siteTitle":       "RojgarHub",
	"siteTagline":     "Latest government job listings and exam preparation",
	"contactEmail":    "contact@rojgarhub.app",
	"socialLinks":     map[string]interface{}{},
	"footerText":      "",
	"maintenanceMode": false,
}

// CreateDefaultData inserts the default settings keys when they are absent
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	logger.Info().Msg("Checking/Creating default settings...")

	for key, value := range defaultSettings {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode default setting %s: %w", key, err)
		}

		_, err = dbPool.Exec(ctx,
			`INSERT INTO key_value_store (key_name, value) VALUES ($1, $2) ON CONFLICT (key_name) DO NOTHING`,
			key, encoded)
		if err != nil {
			return fmt.Errorf("failed to seed default setting %s: %w", key, err)
		}
	}

	return nil
}
