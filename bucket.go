package resale

import (
	"maps"
	"slices"
	"time"

	"github.com/etnz/resale/date"
	"github.com/shopspring/decimal"
)

// MonthSums holds one sum per calendar month.
type MonthSums map[date.YearMonth]decimal.Decimal

// A DateSelector picks the date a transaction is bucketed by. Returning the
// zero date leaves the transaction out.
type DateSelector func(Transaction) date.Date

// A ValueSelector picks the value a transaction adds to its bucket.
type ValueSelector func(Transaction) decimal.Decimal

// ByPurchase buckets transactions by purchase date.
func ByPurchase(tx Transaction) date.Date { return tx.PurchaseDate }

// BySale buckets transactions by sale date.
func BySale(tx Transaction) date.Date { return tx.SaleDate }

// BySoldDate buckets sold transactions by sale date, and skips the others.
func BySoldDate(tx Transaction) date.Date {
	if !tx.IsSold() {
		return date.Date{}
	}
	return tx.SaleDate
}

// PurchasePrice is the purchase price, 0 when absent.
func PurchasePrice(tx Transaction) decimal.Decimal { return tx.PurchasePrice.Decimal }

// SalePrice is the sale price, 0 when absent.
func SalePrice(tx Transaction) decimal.Decimal { return tx.SalePrice.Decimal }

// NetProfit is the profit of the transaction, 0 when it cannot be known.
func NetProfit(tx Transaction) decimal.Decimal {
	p, _ := tx.Profit()
	return p
}

// Count counts transactions.
func Count(Transaction) decimal.Decimal { return decimal.NewFromInt(1) }

// GroupByMonth sums value(tx) per calendar month of when(tx).
//
// Transactions whose selected date is absent are skipped. A month only
// appears once a transaction falls in it, even if its value is zero.
func GroupByMonth(txs []Transaction, when DateSelector, value ValueSelector) MonthSums {
	sums := make(MonthSums)
	for _, tx := range txs {
		d := when(tx)
		if d.IsZero() {
			continue
		}
		m := d.YearMonth()
		sums[m] = sums[m].Add(value(tx))
	}
	return sums
}

// MonthBucket is a month of the full history timeline.
type MonthBucket struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	Label         string     `json:"label"`
	TotalSales    Money      `json:"totalSales"`
	TotalPurchase Money      `json:"totalPurchase"`
	// Profit is the month cash flow: sales minus purchases of that month.
	// It is negative for a month with purchases but no sales.
	Profit Money `json:"profit"`
}

// Timeline returns one bucket per month in which anything was bought or sold,
// in chronological order.
//
// Purchases are counted in their purchase month and sales in their sale
// month, so an item bought and sold in different months shows in both.
func Timeline(txs []Transaction) []MonthBucket {
	purchases := GroupByMonth(txs, ByPurchase, PurchasePrice)
	sales := GroupByMonth(txs, BySale, SalePrice)

	months := slices.Collect(maps.Keys(purchases))
	for m := range sales {
		if _, exists := purchases[m]; !exists {
			months = append(months, m)
		}
	}
	slices.SortFunc(months, date.YearMonth.Compare)

	timeline := make([]MonthBucket, 0, len(months))
	for _, m := range months {
		timeline = append(timeline, MonthBucket{
			Year:          m.Year,
			Month:         m.Month,
			Label:         m.Label(),
			TotalSales:    M(sales[m]),
			TotalPurchase: M(purchases[m]),
			Profit:        M(sales[m].Sub(purchases[m])),
		})
	}
	return timeline
}

// YearView folds sums into twelve slots, January first. Months outside the
// scope are ignored; for the whole history each slot adds up that calendar
// month of every year.
func YearView(sums MonthSums, s Scope) [12]decimal.Decimal {
	var view [12]decimal.Decimal
	for i := range view {
		view[i] = decimal.Zero
	}
	for m, v := range sums {
		if s.All || m.Year == s.Year {
			view[m.Month-1] = view[m.Month-1].Add(v)
		}
	}
	return view
}

// monthlyMoney converts a year view to amounts.
func monthlyMoney(view [12]decimal.Decimal) [12]Money {
	var res [12]Money
	for i, v := range view {
		res[i] = M(v)
	}
	return res
}

// monthlyMean divides sums by counts slot by slot, 0 for empty slots.
func monthlyMean(sums, counts [12]decimal.Decimal) [12]decimal.Decimal {
	var res [12]decimal.Decimal
	for i := range sums {
		res[i] = quotient(sums[i], counts[i])
	}
	return res
}
