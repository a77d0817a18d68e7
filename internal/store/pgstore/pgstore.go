// Package pgstore reads the resale ledger from a PostgreSQL table through gorm.
package pgstore

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/resale"
	"github.com/etnz/resale/date"
	"github.com/etnz/resale/internal/config"
	"github.com/etnz/resale/internal/logging"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Row is a ledger row as stored in the transactions table.
type Row struct {
	ID            string `gorm:"primaryKey"`
	ItemName      *string
	Category      *string             `gorm:"index"`
	PurchasePrice decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	PurchaseDate  *time.Time          `gorm:"type:date;index"`
	SalePrice     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	SaleDate      *time.Time          `gorm:"type:date;index"`
	SoldPlatform  *string
	Vinted        *bool
	Ebay          *bool
	NetProfit     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
}

func (Row) TableName() string { return "transactions" }

// Store is a resale.Store backed by PostgreSQL.
type Store struct {
	db *gorm.DB
}

// DSN returns the connection string of the database.
func DSN(c config.DB) string {
	port := c.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, port)
}

// Open connects to the database.
func Open(c config.DB) (*Store, error) {
	db, err := gorm.Open(postgres.Open(DSN(c)), &gorm.Config{
		Logger: logger.New(logging.Logger, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to postgres on %s: %w", c.Host, err)
	}
	return New(db), nil
}

// New returns a Store using db.
func New(db *gorm.DB) *Store { return &Store{db: db} }

// Migrate creates or updates the transactions table.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&Row{})
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transactions implements resale.Store.
func (s *Store) Transactions(ctx context.Context, q resale.Query) ([]resale.Transaction, error) {
	query := s.db.WithContext(ctx).Model(&Row{}).Order("purchase_date, id")
	if q.Year != 0 {
		query = query.Where("EXTRACT(YEAR FROM purchase_date) = ? OR EXTRACT(YEAR FROM sale_date) = ?", q.Year, q.Year)
	}
	var rows []Row
	if err := query.Find(&rows).Error; err != nil {
		return nil, resale.StoreError(ctx, err)
	}
	txs := make([]resale.Transaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, r.Transaction())
	}
	return txs, nil
}

// Transaction converts the row.
func (r Row) Transaction() resale.Transaction {
	return resale.Transaction{
		ID:            r.ID,
		ItemName:      deref(r.ItemName),
		Category:      deref(r.Category),
		PurchasePrice: r.PurchasePrice,
		PurchaseDate:  dateOf(r.PurchaseDate),
		SalePrice:     r.SalePrice,
		SaleDate:      dateOf(r.SaleDate),
		SoldPlatform:  deref(r.SoldPlatform),
		Vinted:        r.Vinted,
		Ebay:          r.Ebay,
		NetProfit:     r.NetProfit,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// dateOf reads a DATE column. PostgreSQL returns it at midnight UTC.
func dateOf(t *time.Time) date.Date {
	if t == nil {
		return date.Date{}
	}
	return date.FromTime(t.UTC())
}
