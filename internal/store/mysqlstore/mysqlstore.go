// Package mysqlstore reads the resale ledger from a MySQL or MariaDB table.
package mysqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/etnz/resale"
	"github.com/etnz/resale/date"
	"github.com/etnz/resale/internal/config"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
)

// queryTimeout bounds every read of the ledger.
const queryTimeout = 5 * time.Second

const selectTransactions = `SELECT id, item_name, category, purchase_price, purchase_date,
	sale_price, sale_date, sold_platform, vinted, ebay, net_profit
	FROM transactions`

// Store is a resale.Store backed by MySQL.
type Store struct {
	db *sql.DB
}

// DSN returns the connection string of the database.
func DSN(c config.DB) string {
	port := c.Port
	if port == "" {
		port = "3306"
	}
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, port)
	cfg.DBName = c.Name
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// Open connects to the database and checks it is reachable.
func Open(ctx context.Context, c config.DB) (*Store, error) {
	db, err := sql.Open("mysql", DSN(c))
	if err != nil {
		return nil, fmt.Errorf("failed to open DB connection: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return New(db), nil
}

// New returns a Store using db.
func New(db *sql.DB) *Store { return &Store{db: db} }

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// Transactions implements resale.Store.
func (s *Store) Transactions(ctx context.Context, q resale.Query) ([]resale.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args := selectTransactions, []any{}
	if q.Year != 0 {
		query += " WHERE YEAR(purchase_date) = ? OR YEAR(sale_date) = ?"
		args = append(args, q.Year, q.Year)
	}
	query += " ORDER BY purchase_date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, resale.StoreError(ctx, err)
	}
	defer rows.Close()

	txs := make([]resale.Transaction, 0)
	for rows.Next() {
		tx, err := scan(rows)
		if err != nil {
			return nil, resale.StoreError(ctx, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, resale.StoreError(ctx, err)
	}
	return txs, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (resale.Transaction, error) {
	var (
		tx                     resale.Transaction
		name, category, sold   sql.NullString
		bought, soldOn         sql.NullTime
		vinted, ebay           sql.NullBool
		purchase, sale, profit decimal.NullDecimal
	)
	err := row.Scan(&tx.ID, &name, &category, &purchase, &bought,
		&sale, &soldOn, &sold, &vinted, &ebay, &profit)
	if err != nil {
		return tx, err
	}
	tx.ItemName = name.String
	tx.Category = category.String
	tx.PurchasePrice = purchase
	tx.PurchaseDate = dateOf(bought)
	tx.SalePrice = sale
	tx.SaleDate = dateOf(soldOn)
	tx.SoldPlatform = sold.String
	tx.Vinted = flagOf(vinted)
	tx.Ebay = flagOf(ebay)
	tx.NetProfit = profit
	return tx, nil
}

func dateOf(t sql.NullTime) date.Date {
	if !t.Valid {
		return date.Date{}
	}
	return date.FromTime(t.Time.UTC())
}

func flagOf(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}
