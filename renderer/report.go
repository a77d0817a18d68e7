// Package renderer renders resale reports as markdown.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/resale"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the analytics report.
func ReportMarkdown(r *resale.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.SelectedYear.All {
		doc.H1("Resale Report, all years")
	} else {
		doc.H1(fmt.Sprintf("Resale Report %d", r.SelectedYear.Year))
	}

	doc.H2("Overview")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Purchases", r.YearSpecificTotals.TotalPurchase.String()},
			{"Sales", r.YearSpecificTotals.TotalSales.String()},
			{md.Bold("Profit"), md.Bold(r.YearSpecificTotals.Profit.SignedString())},
			{"ROI", r.ROI.Percentage.String()},
			{"Sell-through rate", fmt.Sprintf("%s (%d of %d)", r.SellThroughRate.Percentage, r.SellThroughRate.TotalSold, r.SellThroughRate.TotalListed)},
			{"Average selling price", r.AverageSellingPrice.Average.String()},
			{"Average profit per item", r.AverageProfitPerItem.Average.String()},
			{"Average days to sell", r.AverageDaysToSell.Days.String()},
			{"Items bought / sold", fmt.Sprintf("%d / %d", r.YearItemsStats.Bought, r.YearItemsStats.Sold)},
		},
	})

	doc.H2("Inventory")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Active listings", fmt.Sprint(r.ActiveListingsCount.Count)},
			{"Unsold inventory value", r.UnsoldInventoryValue.Value.String()},
			{"All-time average profit multiple", r.AllTimeAverageProfitMultiple.String() + "x"},
			{"Sales this month", r.CurrentMonthSales.String()},
			{"Sales this week", r.CurrentWeekSales.String()},
		},
	})

	doc.H2("Monthly")
	monthly := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Sales", "Expenses", "Profit", "Avg. Price", "Avg. Profit", "Avg. Multiple"},
	}
	for i := range 12 {
		monthly.Rows = append(monthly.Rows, []string{
			time.Month(i + 1).String(),
			r.MonthlySales[i].String(),
			r.MonthlyExpenses[i].String(),
			r.MonthlyProfit[i].SignedString(),
			r.MonthlyAverageSellingPrice[i].String(),
			r.MonthlyAverageProfitPerItem[i].String(),
			r.MonthlyAverageProfitMultiple[i].String(),
		})
	}
	doc.Table(monthly)

	if len(r.SalesByCategory) > 0 {
		doc.H2("Sales by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Sold", "Sales", "Profit"},
		}
		for _, c := range r.SalesByCategory {
			table.Rows = append(table.Rows, []string{c.Category, fmt.Sprint(c.Count), c.TotalSales.String(), c.Profit.SignedString()})
		}
		doc.Table(table)
	}

	if len(r.UnsoldStockByCategory) > 0 {
		doc.H2("Unsold Stock by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Items", "Value"},
		}
		for _, c := range r.UnsoldStockByCategory {
			table.Rows = append(table.Rows, []string{c.Category, fmt.Sprint(c.Count), c.Value.String()})
		}
		doc.Table(table)
	}

	if len(r.ProfitTimeline) > 0 {
		doc.H2("Timeline")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Month", "Purchases", "Sales", "Cash Flow"},
		}
		for _, b := range r.ProfitTimeline {
			table.Rows = append(table.Rows, []string{b.Label, b.TotalPurchase.String(), b.TotalSales.String(), b.Profit.SignedString()})
		}
		doc.Table(table)
	}

	return doc.String()
}
