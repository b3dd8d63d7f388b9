package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/raolivei/canopy/pkg/database"
)

func migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026_08_10_CreateTransactions",
			Migrate: func(db *gorm.DB) error {
				return db.AutoMigrate(&database.Transaction{})
			},
		},
		{
			ID: "2026_08_24_AddImportIndexes",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create index if not exists idx_transactions_date_amount
    on transactions (date, amount);
`).Error
			},
		},
	}
}
