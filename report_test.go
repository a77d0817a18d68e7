package resale

import (
	"encoding/json"
	"testing"
)

var monthlyArrays = []string{
	"monthlyProfit",
	"monthlySales",
	"monthlyExpenses",
	"monthlyAverageSellingPrice",
	"monthlyAverageProfitPerItem",
	"monthlyAverageProfitMultiple",
}

func TestNewReport_OneSale(t *testing.T) {
	txs := []Transaction{
		{ID: "a", Category: "Shoes", PurchaseDate: D("2024-01-10"), PurchasePrice: P("20"), SaleDate: D("2024-02-15"), SalePrice: P("50"), SoldPlatform: PlatformEbay},
	}
	doc := payload(t, NewReport(txs, InYear(2024), D("2024-02-20")))
	expectPaths(t, doc, map[string]any{
		"$.selectedYear":                    float64(2024),
		"$.availableYears[0]":               float64(2024),
		"$.profitTimeline[0].profit":        float64(-20),
		"$.profitTimeline[1].profit":        float64(50),
		"$.monthlyProfit[0]":                float64(-20),
		"$.monthlyProfit[1]":                float64(50),
		"$.monthlySales[1]":                 float64(50),
		"$.monthlyExpenses[0]":              float64(20),
		"$.monthlyAverageSellingPrice[1]":   float64(50),
		"$.monthlyAverageProfitPerItem[1]":  float64(30),
		"$.monthlyAverageProfitMultiple[1]": 2.5,
		"$.salesByCategory[0].category":     "Shoes",
		"$.salesByCategory[0].profit":       float64(30),
		"$.sellThroughRate.totalListed":     float64(1),
		"$.sellThroughRate.totalSold":       float64(1),
		"$.sellThroughRate.percentage":      float64(100),
		"$.averageSellingPrice.average":     float64(50),
		"$.averageProfitPerItem.netProfit":  float64(30),
		"$.roi.profit":                      float64(30),
		"$.roi.totalSpend":                  float64(20),
		"$.roi.percentage":                  float64(150),
		"$.averageDaysToSell.days":          float64(36),
		"$.activeListingsCount.count":       float64(0),
		"$.unsoldInventoryValue.value":      float64(0),
		"$.yearSpecificTotals.totalSales":   float64(50),
		"$.allTimeAverageProfitMultiple":    2.5,
		"$.yearItemsStats.listed":           float64(1),
		"$.yearItemsStats.sold":             float64(1),
		"$.currentMonthSales":               float64(50),
		"$.currentWeekSales":                float64(0),
	})
}

// The monthly arrays always have twelve entries, even without any data.
func TestNewReport_Empty(t *testing.T) {
	for _, scope := range []Scope{InYear(2025), AllTime} {
		doc := payload(t, NewReport(nil, scope, D("2025-03-01")))
		for _, name := range monthlyArrays {
			values := get(t, "$."+name, doc).([]any)
			if len(values) != 12 {
				t.Errorf("%v: %s has %d entries, want 12", scope, name, len(values))
			}
			for i, v := range values {
				if v != float64(0) {
					t.Errorf("%v: %s[%d] = %v, want 0", scope, name, i, v)
				}
			}
		}
		for _, name := range []string{"availableYears", "profitTimeline", "salesByCategory", "unsoldStockByCategory"} {
			if values, ok := get(t, "$."+name, doc).([]any); !ok || len(values) != 0 {
				t.Errorf("%v: %s = %v, want []", scope, name, values)
			}
		}
	}
}

func TestNewReport_AllTime(t *testing.T) {
	report := NewReport(shop, AllTime, D("2025-01-01"))
	doc := payload(t, report)
	expectPaths(t, doc, map[string]any{
		"$.selectedYear":                  "all",
		"$.yearSpecificTotals.totalSales": float64(220),
		"$.sellThroughRate.totalListed":   float64(6),
		"$.monthlySales[1]":               float64(150), // Feb 2023 and Feb 2024
		"$.monthlyExpenses[1]":            float64(50),
	})
}

// Inventory figures cover the whole ledger, whatever the year.
func TestNewReport_Inventory(t *testing.T) {
	for _, scope := range []Scope{InYear(2023), InYear(2024), AllTime} {
		doc := payload(t, NewReport(shop, scope, D("2025-01-01")))
		expectPaths(t, doc, map[string]any{
			"$.activeListingsCount.count":    float64(2),
			"$.unsoldInventoryValue.value":   float64(23),
			"$.allTimeAverageProfitMultiple": 2.83, // (2.5 + 4 + 2) / 3
		})
	}
}

// A year without data falls back to the most recent one.
func TestNewReport_YearFallback(t *testing.T) {
	today := D("2025-01-01")
	fallback, err := json.Marshal(NewReport(shop, InYear(2019), today))
	if err != nil {
		t.Fatal(err)
	}
	direct, err := json.Marshal(NewReport(shop, InYear(2024), today))
	if err != nil {
		t.Fatal(err)
	}
	if string(fallback) != string(direct) {
		t.Errorf("report for 2019 =\n%s\nwant the report for 2024\n%s", fallback, direct)
	}
	doc := payload(t, NewReport(shop, InYear(2019), today))
	expectPaths(t, doc, map[string]any{
		"$.selectedYear":      float64(2024),
		"$.availableYears[0]": float64(2024),
		"$.availableYears[1]": float64(2023),
	})
}
