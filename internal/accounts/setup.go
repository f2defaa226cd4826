package accounts

import (
	"fmt"

	"github.com/harborview/accounts-backend/internal/db"
	"gorm.io/gorm"
)

func Init(gdb *gorm.DB) error {
	if err := db.EnsureSchema(gdb, "app_accounts"); err != nil {
		return fmt.Errorf("ensure schema app_accounts: %w", err)
	}

	if err := gdb.AutoMigrate(&User{}, &Session{}); err != nil {
		return fmt.Errorf("auto-migrate tables: %w", err)
	}
	return nil
}
