package resale

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/etnz/resale/date"
	"github.com/shopspring/decimal"
)

// Conventional values of Transaction.SoldPlatform.
const (
	PlatformVinted = "Vinted"
	PlatformEbay   = "eBay"
)

// Transaction is a ledger row: one item, bought and possibly sold.
//
// Every field but ID is optional. Prices are NullDecimal so that an absent
// price is never confused with a free item, dates use the zero date.Date for
// "absent", and the marketplace flags are nil when unset.
type Transaction struct {
	ID            string
	ItemName      string
	Category      string
	PurchasePrice decimal.NullDecimal
	PurchaseDate  date.Date
	SalePrice     decimal.NullDecimal
	SaleDate      date.Date
	SoldPlatform  string
	Vinted        *bool
	Ebay          *bool
	// NetProfit is authoritative when set.
	NetProfit decimal.NullDecimal
}

// IsUnsold reports whether the item has not been sold yet.
func (t Transaction) IsUnsold() bool { return t.SaleDate.IsZero() }

// IsListed reports whether the item was bought and is still on sale.
func (t Transaction) IsListed() bool { return !t.PurchaseDate.IsZero() && t.SaleDate.IsZero() }

// IsSold reports whether the item was both bought and sold.
func (t Transaction) IsSold() bool { return !t.PurchaseDate.IsZero() && !t.SaleDate.IsZero() }

// Profit returns the net profit of the row: NetProfit when recorded,
// otherwise sale minus purchase price when both are known.
func (t Transaction) Profit() (decimal.Decimal, bool) {
	if t.NetProfit.Valid {
		return t.NetProfit.Decimal, true
	}
	if t.SalePrice.Valid && t.PurchasePrice.Valid {
		return t.SalePrice.Decimal.Sub(t.PurchasePrice.Decimal), true
	}
	return decimal.Zero, false
}

// Validate reports inconsistencies of the row. The ledger tolerates them, so
// they are only warnings to the user; nothing gets fixed.
func (t Transaction) Validate() error {
	var errs error
	if t.ID == "" {
		errs = errors.Join(errs, errors.New("missing id"))
	}
	if t.PurchasePrice.Valid && t.PurchasePrice.Decimal.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("negative purchase price %v", t.PurchasePrice.Decimal))
	}
	if t.SalePrice.Valid && t.SalePrice.Decimal.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("negative sale price %v", t.SalePrice.Decimal))
	}
	if t.IsSold() && t.SaleDate.Before(t.PurchaseDate) {
		errs = errors.Join(errs, fmt.Errorf("sold on %v before being bought on %v", t.SaleDate, t.PurchaseDate))
	}
	return errs
}

// when returns the date the row is ordered by in a ledger file: the purchase
// date, or the sale date for rows without one.
func (t Transaction) when() date.Date {
	if t.PurchaseDate.IsZero() {
		return t.SaleDate
	}
	return t.PurchaseDate
}

// transactionJSON is the ledger row as persisted, with snake_case keys.
type transactionJSON struct {
	ID            string              `json:"id"`
	ItemName      string              `json:"item_name"`
	Category      string              `json:"category"`
	PurchasePrice decimal.NullDecimal `json:"purchase_price"`
	PurchaseDate  date.Date           `json:"purchase_date"`
	SalePrice     decimal.NullDecimal `json:"sale_price"`
	SaleDate      date.Date           `json:"sale_date"`
	SoldPlatform  string              `json:"sold_platform"`
	Vinted        *bool               `json:"vinted"`
	Ebay          *bool               `json:"ebay"`
	NetProfit     decimal.NullDecimal `json:"net_profit"`
}

// MarshalJSON writes the row with a stable key order, leaving absent fields out.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Optional("item_name", t.ItemName)
	w.Optional("category", t.Category)
	w.Optional("purchase_date", t.PurchaseDate)
	w.Optional("purchase_price", t.PurchasePrice)
	w.Optional("sale_date", t.SaleDate)
	w.Optional("sale_price", t.SalePrice)
	w.Optional("sold_platform", t.SoldPlatform)
	w.Optional("vinted", t.Vinted)
	w.Optional("ebay", t.Ebay)
	w.Optional("net_profit", t.NetProfit)
	return w.MarshalJSON()
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var row transactionJSON
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*t = Transaction(row)
	return nil
}
