package resale

import (
	"testing"
	"time"

	"github.com/etnz/resale/date"
)

func TestGroupByMonth(t *testing.T) {
	txs := []Transaction{
		{PurchaseDate: D("2024-01-10"), PurchasePrice: P("20"), SaleDate: D("2024-02-15"), SalePrice: P("50")},
		{PurchaseDate: D("2024-01-31"), PurchasePrice: P("5")},
		{PurchaseDate: D("2024-02-01")}, // no price
		{PurchasePrice: P("99")},        // no date
	}
	got := GroupByMonth(txs, ByPurchase, PurchasePrice)
	want := map[date.YearMonth]string{
		{Year: 2024, Month: time.January}:  "25",
		{Year: 2024, Month: time.February}: "0",
	}
	if len(got) != len(want) {
		t.Fatalf("GroupByMonth() = %v, want %v", got, want)
	}
	for m, w := range want {
		if v, exists := got[m]; !exists || !v.Equal(dec(w)) {
			t.Errorf("GroupByMonth()[%v] = %v, want %v", m, v, w)
		}
	}

	counts := GroupByMonth(txs, BySoldDate, Count)
	if len(counts) != 1 || !counts[date.YearMonth{Year: 2024, Month: time.February}].Equal(dec("1")) {
		t.Errorf("GroupByMonth(BySoldDate, Count) = %v, want one sale in Feb 2024", counts)
	}
}

// An item bought one month and sold another shows in both months.
func TestTimeline_AcrossMonths(t *testing.T) {
	txs := []Transaction{
		{PurchaseDate: D("2024-01-10"), PurchasePrice: P("20"), SaleDate: D("2024-02-15"), SalePrice: P("50"), SoldPlatform: PlatformEbay},
	}
	doc := payload(t, Timeline(txs))
	expectPaths(t, doc, map[string]any{
		"$[0].year":          float64(2024),
		"$[0].month":         float64(1),
		"$[0].label":         "Jan 2024",
		"$[0].totalPurchase": float64(20),
		"$[0].totalSales":    float64(0),
		"$[0].profit":        float64(-20),
		"$[1].month":         float64(2),
		"$[1].label":         "Feb 2024",
		"$[1].totalPurchase": float64(0),
		"$[1].totalSales":    float64(50),
		"$[1].profit":        float64(50),
	})
	if n := len(doc.([]any)); n != 2 {
		t.Errorf("Timeline() has %d months, want 2", n)
	}
}

func TestTimeline_Order(t *testing.T) {
	txs := []Transaction{
		{SaleDate: D("2024-03-02"), SalePrice: P("1")},
		{PurchaseDate: D("2023-12-01"), PurchasePrice: P("1")},
		{PurchaseDate: D("2024-03-01"), PurchasePrice: P("1")},
		{PurchaseDate: D("2022-07-01"), PurchasePrice: P("1")},
	}
	got := Timeline(txs)
	want := []string{"Jul 2022", "Dec 2023", "Mar 2024"}
	if len(got) != len(want) {
		t.Fatalf("Timeline() = %d months, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Label != w {
			t.Errorf("Timeline()[%d] = %s, want %s", i, got[i].Label, w)
		}
	}
	if !got[2].Profit.IsZero() {
		t.Errorf("Timeline() Mar 2024 profit = %v, want 0", got[2].Profit.Decimal())
	}
}

func TestYearView(t *testing.T) {
	sums := MonthSums{
		{Year: 2023, Month: time.March}: dec("10"),
		{Year: 2024, Month: time.March}: dec("5"),
		{Year: 2024, Month: time.May}:   dec("7"),
	}
	testCases := []struct {
		scope    Scope
		mar, may string
	}{
		{InYear(2024), "5", "7"},
		{InYear(2023), "10", "0"},
		{InYear(2019), "0", "0"},
		{AllTime, "15", "7"},
	}
	for _, tc := range testCases {
		view := YearView(sums, tc.scope)
		if !view[time.March-1].Equal(dec(tc.mar)) || !view[time.May-1].Equal(dec(tc.may)) {
			t.Errorf("YearView(%v) Mar, May = %v, %v, want %s, %s", tc.scope, view[2], view[4], tc.mar, tc.may)
		}
		total := dec("0")
		for _, v := range view {
			total = total.Add(v)
		}
		if want := dec(tc.mar).Add(dec(tc.may)); !total.Equal(want) {
			t.Errorf("YearView(%v) total = %v, want %v", tc.scope, total, want)
		}
	}
}
