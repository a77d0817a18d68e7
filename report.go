package resale

import (
	"github.com/etnz/resale/date"
	"github.com/shopspring/decimal"
)

// Report is the analytics payload of a ledger for a scope.
//
// Every figure is computed at full precision; amounts, percentages and ratios
// are only rounded to two decimals when the report is marshalled. Slices are
// never nil and monthly arrays always have twelve entries, January first.
type Report struct {
	SelectedYear   Scope         `json:"selectedYear"`
	AvailableYears []int         `json:"availableYears"`
	ProfitTimeline []MonthBucket `json:"profitTimeline"`

	MonthlyProfit                [12]Money `json:"monthlyProfit"`
	MonthlySales                 [12]Money `json:"monthlySales"`
	MonthlyExpenses              [12]Money `json:"monthlyExpenses"`
	MonthlyAverageSellingPrice   [12]Money `json:"monthlyAverageSellingPrice"`
	MonthlyAverageProfitPerItem  [12]Money `json:"monthlyAverageProfitPerItem"`
	MonthlyAverageProfitMultiple [12]Ratio `json:"monthlyAverageProfitMultiple"`

	SalesByCategory       []CategorySales `json:"salesByCategory"`
	UnsoldStockByCategory []CategoryStock `json:"unsoldStockByCategory"`

	SellThroughRate              SellThrough        `json:"sellThroughRate"`
	AverageSellingPrice          SellingPrice       `json:"averageSellingPrice"`
	AverageProfitPerItem         ProfitPerItem      `json:"averageProfitPerItem"`
	ROI                          ReturnOnInvestment `json:"roi"`
	AverageDaysToSell            DaysToSell         `json:"averageDaysToSell"`
	ActiveListingsCount          ListingsCount      `json:"activeListingsCount"`
	UnsoldInventoryValue         InventoryValue     `json:"unsoldInventoryValue"`
	YearSpecificTotals           Totals             `json:"yearSpecificTotals"`
	AllTimeAverageProfitMultiple Ratio              `json:"allTimeAverageProfitMultiple"`
	YearItemsStats               ItemsStats         `json:"yearItemsStats"`
	CurrentMonthSales            Money              `json:"currentMonthSales"`
	CurrentWeekSales             Money              `json:"currentWeekSales"`
}

// NewReport computes the report of the ledger snapshot txs.
//
// The requested scope is resolved against the years present in the ledger
// (see ResolveScope). Inventory figures are about the whole ledger whatever
// the scope, and the current month and week sales are relative to today.
func NewReport(txs []Transaction, requested Scope, today date.Date) *Report {
	available := AvailableYears(txs)
	s := ResolveScope(requested, available)

	sales := YearView(GroupByMonth(txs, BySale, SalePrice), s)
	expenses := YearView(GroupByMonth(txs, ByPurchase, PurchasePrice), s)
	var profit [12]decimal.Decimal
	for i := range profit {
		profit[i] = sales[i].Sub(expenses[i])
	}

	soldSales := YearView(GroupByMonth(txs, BySoldDate, SalePrice), s)
	soldPriced := YearView(GroupByMonth(txs, func(tx Transaction) date.Date {
		if !tx.SalePrice.Valid {
			return date.Date{}
		}
		return BySoldDate(tx)
	}, Count), s)
	soldCount := YearView(GroupByMonth(txs, BySoldDate, Count), s)
	soldProfit := YearView(GroupByMonth(txs, BySoldDate, NetProfit), s)

	multiples := YearView(GroupByMonth(txs, byMultiple, func(tx Transaction) decimal.Decimal {
		m, _ := multipleOf(tx)
		return m
	}), s)
	multipleCount := YearView(GroupByMonth(txs, byMultiple, Count), s)

	return &Report{
		SelectedYear:   s,
		AvailableYears: available,
		ProfitTimeline: Timeline(txs),

		MonthlyProfit:                monthlyMoney(profit),
		MonthlySales:                 monthlyMoney(sales),
		MonthlyExpenses:              monthlyMoney(expenses),
		MonthlyAverageSellingPrice:   monthlyMoney(monthlyMean(soldSales, soldPriced)),
		MonthlyAverageProfitPerItem:  monthlyMoney(monthlyMean(soldProfit, soldCount)),
		MonthlyAverageProfitMultiple: monthlyRatio(monthlyMean(multiples, multipleCount)),

		SalesByCategory:       SalesByCategory(txs, s),
		UnsoldStockByCategory: UnsoldStockByCategory(txs),

		SellThroughRate:              SellThroughRate(txs, s),
		AverageSellingPrice:          AverageSellingPrice(txs, s),
		AverageProfitPerItem:         AverageProfitPerItem(txs, s),
		ROI:                          ROI(txs, s),
		AverageDaysToSell:            AverageDaysToSell(txs, s),
		ActiveListingsCount:          ActiveListings(txs),
		UnsoldInventoryValue:         UnsoldInventoryValue(txs),
		YearSpecificTotals:           ScopeTotals(txs, s),
		AllTimeAverageProfitMultiple: AverageProfitMultiple(txs, AllTime),
		YearItemsStats:               ScopeItemsStats(txs, s),
		CurrentMonthSales:            CurrentMonthSales(txs, today),
		CurrentWeekSales:             CurrentWeekSales(txs, today),
	}
}

// byMultiple buckets by sale date the sold items having a profit multiple.
func byMultiple(tx Transaction) date.Date {
	if _, ok := multipleOf(tx); !ok {
		return date.Date{}
	}
	return tx.SaleDate
}

func monthlyRatio(view [12]decimal.Decimal) [12]Ratio {
	var res [12]Ratio
	for i, v := range view {
		res[i] = Ratio{value: v}
	}
	return res
}
