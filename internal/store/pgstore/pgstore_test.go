package pgstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/resale"
	"github.com/etnz/resale/date"
	"github.com/etnz/resale/internal/config"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DB{Host: "db", User: "u", Password: "p", Name: "resale"})
	for _, want := range []string{"host=db", "user=u", "password=p", "dbname=resale", "port=5432"} {
		if !strings.Contains(got, want) {
			t.Errorf("DSN() = %q, want it to contain %q", got, want)
		}
	}
}

func TestRow_Transaction(t *testing.T) {
	name, platform := "Denim jacket", "eBay"
	yes := true
	bought := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	row := Row{
		ID:            "a1",
		ItemName:      &name,
		PurchasePrice: decimal.NewNullDecimal(decimal.RequireFromString("20.00")),
		PurchaseDate:  &bought,
		SoldPlatform:  &platform,
		Ebay:          &yes,
	}

	tx := row.Transaction()
	if tx.ID != "a1" || tx.ItemName != name || tx.Category != "" || tx.SoldPlatform != platform {
		t.Errorf("unexpected text fields: %+v", tx)
	}
	if want := date.New(2024, time.January, 10); tx.PurchaseDate != want {
		t.Errorf("PurchaseDate = %v, want %v", tx.PurchaseDate, want)
	}
	if !tx.SaleDate.IsZero() {
		t.Errorf("SaleDate = %v, want absent", tx.SaleDate)
	}
	if tx.SalePrice.Valid {
		t.Errorf("SalePrice = %v, want absent", tx.SalePrice)
	}
	if !tx.PurchasePrice.Decimal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("PurchasePrice = %v, want 20", tx.PurchasePrice.Decimal)
	}
	if tx.Vinted != nil || tx.Ebay == nil || !*tx.Ebay {
		t.Errorf("unexpected flags vinted=%v ebay=%v", tx.Vinted, tx.Ebay)
	}
	if !tx.IsListed() {
		t.Error("IsListed() = false, want true")
	}
}

func TestTransactions_Canceled(t *testing.T) {
	db, err := gorm.Open(postgres.Open(DSN(config.DB{Host: "127.0.0.1", Port: "1", User: "u", Name: "resale"})), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(db).Transactions(ctx, resale.Query{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Transactions() = %v, want context.Canceled", err)
	}
	if errors.Is(err, resale.ErrStoreUnavailable) {
		t.Errorf("Transactions() = %v, a canceled request must not report an unavailable store", err)
	}
}
