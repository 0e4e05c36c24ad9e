package migration

import (
	"embed"
	"fmt"

	"gorm.io/gorm"

	"noticeboard/internal/shared/logger"
)

const scriptsRoot = "scripts"

// scriptsFS holds one directory of goose SQL scripts per database driver.
//
//go:embed scripts
var scriptsFS embed.FS

// DefaultScriptsDir is where `migrate create` writes new scripts, relative to
// the repository root.
const DefaultScriptsDir = "./internal/infrastructure/migration/scripts"

// Up applies every pending migration for driver. It is the entry point for
// the server's --auto-migrate flag and for tests.
func Up(db *gorm.DB, driver string, log logger.Interface) error {
	strategy, err := NewGooseStrategy(driver, "", log)
	if err != nil {
		return err
	}

	if err := strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", strategy.GetName(), err)
	}
	return nil
}
