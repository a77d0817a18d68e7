package resale

import (
	"cmp"
	"slices"
	"strings"

	"github.com/etnz/resale/date"
	"github.com/shopspring/decimal"
)

// Metrics are pure functions of a transaction snapshot. Sums treat absent
// values as 0, while means and ratios leave out the transactions lacking the
// values they need. None of them can return NaN: an empty denominator gives 0.

// Uncategorized labels the items without a category.
const Uncategorized = "Uncategorized"

// soldIn reports whether tx was sold within s.
func soldIn(tx Transaction, s Scope) bool { return tx.IsSold() && s.Contains(tx.SaleDate) }

// listedIn reports whether tx is still on sale and was bought within s.
func listedIn(tx Transaction, s Scope) bool { return tx.IsListed() && s.Contains(tx.PurchaseDate) }

// SellThrough is the share of the items that have been sold.
type SellThrough struct {
	TotalListed int     `json:"totalListed"` // sold and still listed items
	TotalSold   int     `json:"totalSold"`
	Percentage  Percent `json:"percentage"`
}

// SellThroughRate compares the items sold within s to the items bought within
// s and still listed.
func SellThroughRate(txs []Transaction, s Scope) SellThrough {
	var sold, active int
	for _, tx := range txs {
		switch {
		case soldIn(tx, s):
			sold++
		case listedIn(tx, s):
			active++
		}
	}
	total := sold + active
	return SellThrough{
		TotalListed: total,
		TotalSold:   sold,
		Percentage:  percentOf(decimal.NewFromInt(int64(sold)), decimal.NewFromInt(int64(total))),
	}
}

// SellingPrice is the mean sale price.
type SellingPrice struct {
	TotalSales Money `json:"totalSales"`
	SoldCount  int   `json:"soldCount"`
	Average    Money `json:"average"`
}

// AverageSellingPrice averages the sale price of the items sold within s.
// Items sold without a recorded price are left out.
func AverageSellingPrice(txs []Transaction, s Scope) SellingPrice {
	var res SellingPrice
	for _, tx := range txs {
		if soldIn(tx, s) && tx.SalePrice.Valid {
			res.TotalSales = res.TotalSales.Add(M(tx.SalePrice.Decimal))
			res.SoldCount++
		}
	}
	res.Average = res.TotalSales.DivCount(res.SoldCount)
	return res
}

// ProfitPerItem is the mean net profit of a sold item.
type ProfitPerItem struct {
	NetProfit Money `json:"netProfit"`
	SoldCount int   `json:"soldCount"`
	Average   Money `json:"average"`
}

// AverageProfitPerItem averages the net profit of the items sold within s.
// An item whose profit cannot be known counts for 0.
func AverageProfitPerItem(txs []Transaction, s Scope) ProfitPerItem {
	var res ProfitPerItem
	for _, tx := range txs {
		if soldIn(tx, s) {
			res.NetProfit = res.NetProfit.Add(M(NetProfit(tx)))
			res.SoldCount++
		}
	}
	res.Average = res.NetProfit.DivCount(res.SoldCount)
	return res
}

// Totals are the money spent and earned over a scope.
type Totals struct {
	TotalPurchase Money `json:"totalPurchase"`
	TotalSales    Money `json:"totalSales"`
	Profit        Money `json:"profit"`
}

// ScopeTotals sums the purchases made and the sales made within s.
//
// Each column is filtered on its own date: an item bought one year and sold
// the next costs the first year and earns the second.
func ScopeTotals(txs []Transaction, s Scope) Totals {
	var res Totals
	for _, tx := range txs {
		if s.Contains(tx.PurchaseDate) {
			res.TotalPurchase = res.TotalPurchase.Add(M(PurchasePrice(tx)))
		}
		if s.Contains(tx.SaleDate) {
			res.TotalSales = res.TotalSales.Add(M(SalePrice(tx)))
		}
	}
	res.Profit = res.TotalSales.Sub(res.TotalPurchase)
	return res
}

// ReturnOnInvestment is the profit relative to the money spent.
type ReturnOnInvestment struct {
	Profit     Money   `json:"profit"`
	TotalSpend Money   `json:"totalSpend"`
	Percentage Percent `json:"percentage"`
}

// ROI computes the return on investment over s, from the same figures as ScopeTotals.
func ROI(txs []Transaction, s Scope) ReturnOnInvestment {
	t := ScopeTotals(txs, s)
	return ReturnOnInvestment{
		Profit:     t.Profit,
		TotalSpend: t.TotalPurchase,
		Percentage: percentOf(t.Profit.Decimal(), t.TotalPurchase.Decimal()),
	}
}

// multipleOf returns sale/purchase price, and whether the item has a
// meaningful multiple: sold, with a sale price and a positive purchase price.
func multipleOf(tx Transaction) (decimal.Decimal, bool) {
	if !tx.IsSold() || !tx.SalePrice.Valid || !tx.PurchasePrice.Valid || !tx.PurchasePrice.Decimal.IsPositive() {
		return decimal.Zero, false
	}
	return quotient(tx.SalePrice.Decimal, tx.PurchasePrice.Decimal), true
}

// AverageProfitMultiple is the mean of sale/purchase price over the items sold
// within s. Items bought for free or for an unknown price are left out of the
// mean entirely.
func AverageProfitMultiple(txs []Transaction, s Scope) Ratio {
	sum, n := decimal.Zero, 0
	for _, tx := range txs {
		if m, ok := multipleOf(tx); ok && s.Contains(tx.SaleDate) {
			sum = sum.Add(m)
			n++
		}
	}
	return ratioOf(sum, decimal.NewFromInt(int64(n)))
}

// DaysToSell is the mean time an item stays listed.
type DaysToSell struct {
	Days Ratio `json:"days"`
}

// AverageDaysToSell averages the whole days between purchase and sale of the
// items sold within s.
func AverageDaysToSell(txs []Transaction, s Scope) DaysToSell {
	var days, n int64
	for _, tx := range txs {
		if soldIn(tx, s) {
			days += int64(tx.PurchaseDate.DaysUntil(tx.SaleDate))
			n++
		}
	}
	return DaysToSell{Days: ratioOf(decimal.NewFromInt(days), decimal.NewFromInt(n))}
}

// ListingsCount is a number of items on sale.
type ListingsCount struct {
	Count int `json:"count"`
}

// ActiveListings counts the items bought and not sold yet.
func ActiveListings(txs []Transaction) ListingsCount {
	var res ListingsCount
	for _, tx := range txs {
		if tx.IsListed() {
			res.Count++
		}
	}
	return res
}

// InventoryValue is the money tied up in unsold items.
type InventoryValue struct {
	Value Money `json:"value"`
}

// UnsoldInventoryValue sums the purchase price of the items bought and not sold yet.
func UnsoldInventoryValue(txs []Transaction) InventoryValue {
	var res InventoryValue
	for _, tx := range txs {
		if tx.IsListed() {
			res.Value = res.Value.Add(M(PurchasePrice(tx)))
		}
	}
	return res
}

// ItemsStats counts items bought and items sold over a scope.
//
// Bought includes the items sold since; it is reported under the "listed" key.
type ItemsStats struct {
	Bought int `json:"listed"`
	Sold   int `json:"sold"`
}

// ScopeItemsStats counts the items bought within s, and the items sold within s.
func ScopeItemsStats(txs []Transaction, s Scope) ItemsStats {
	var res ItemsStats
	for _, tx := range txs {
		if s.Contains(tx.PurchaseDate) {
			res.Bought++
		}
		if soldIn(tx, s) {
			res.Sold++
		}
	}
	return res
}

// CategorySales sums the sales of one category.
type CategorySales struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	TotalSales Money  `json:"totalSales"`
	Profit     Money  `json:"profit"`
}

// SalesByCategory sums the items sold within s per category, by category name.
func SalesByCategory(txs []Transaction, s Scope) []CategorySales {
	index := make(map[string]int)
	res := make([]CategorySales, 0)
	for _, tx := range txs {
		if !soldIn(tx, s) {
			continue
		}
		name := categoryOf(tx)
		i, exists := index[name]
		if !exists {
			i = len(res)
			index[name] = i
			res = append(res, CategorySales{Category: name})
		}
		res[i].Count++
		res[i].TotalSales = res[i].TotalSales.Add(M(SalePrice(tx)))
		res[i].Profit = res[i].Profit.Add(M(NetProfit(tx)))
	}
	slices.SortFunc(res, func(a, b CategorySales) int { return cmp.Compare(a.Category, b.Category) })
	return res
}

// CategoryStock sums the unsold items of one category.
type CategoryStock struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Value    Money  `json:"value"`
}

// UnsoldStockByCategory sums the items still listed per category, by category name.
func UnsoldStockByCategory(txs []Transaction) []CategoryStock {
	index := make(map[string]int)
	res := make([]CategoryStock, 0)
	for _, tx := range txs {
		if !tx.IsListed() {
			continue
		}
		name := categoryOf(tx)
		i, exists := index[name]
		if !exists {
			i = len(res)
			index[name] = i
			res = append(res, CategoryStock{Category: name})
		}
		res[i].Count++
		res[i].Value = res[i].Value.Add(M(PurchasePrice(tx)))
	}
	slices.SortFunc(res, func(a, b CategoryStock) int { return cmp.Compare(a.Category, b.Category) })
	return res
}

func categoryOf(tx Transaction) string {
	if c := strings.TrimSpace(tx.Category); c != "" {
		return c
	}
	return Uncategorized
}

// SalesWithin sums the sale prices of the sales made within r.
func SalesWithin(txs []Transaction, r date.Range) Money {
	var res Money
	for _, tx := range txs {
		if r.Contains(tx.SaleDate) {
			res = res.Add(M(SalePrice(tx)))
		}
	}
	return res
}

// CurrentMonthSales sums the sales of the calendar month of today.
func CurrentMonthSales(txs []Transaction, today date.Date) Money {
	return SalesWithin(txs, date.NewRange(today, date.Monthly))
}

// CurrentWeekSales sums the sales of the ISO week (Monday to Sunday) of today.
func CurrentWeekSales(txs []Transaction, today date.Date) Money {
	return SalesWithin(txs, date.NewRange(today, date.Weekly))
}
