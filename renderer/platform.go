package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/resale"
	"github.com/etnz/resale/date"
	md "github.com/nao1215/markdown"
)

// PlatformMarkdown renders the platform report of a month.
func PlatformMarkdown(p *resale.PlatformMonth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Platform Report %s", date.YearMonth{Year: p.Year, Month: p.Month}.Label()))
	platformMonth(doc, p)
	return doc.String()
}

// PlatformYearMarkdown renders the platform reports of a year, skipping the
// months without any sale.
func PlatformYearMarkdown(year int, months []resale.PlatformMonth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Platform Report %d", year))

	var vinted, ebay resale.PlatformBucket
	for _, p := range months {
		vinted = addBucket(vinted, p.Vinted)
		ebay = addBucket(ebay, p.Ebay)
	}
	doc.Table(bucketsTable(vinted, ebay))

	for _, p := range months {
		if empty(p) {
			continue
		}
		doc.H2(date.YearMonth{Year: p.Year, Month: p.Month}.Label())
		platformMonth(doc, &p)
	}
	return doc.String()
}

func platformMonth(doc *md.Markdown, p *resale.PlatformMonth) {
	doc.Table(bucketsTable(p.Vinted, p.Ebay))
	if len(p.UntaggedItems) > 0 {
		doc.PlainText(md.Bold("Untagged sales") + ", without a platform label:")
		doc.BulletList(itemLines(p.UntaggedItems)...)
	}
	if len(p.AmbiguousItems) > 0 {
		doc.PlainText(md.Bold("Ambiguous sales") + ", credited to both platforms:")
		doc.BulletList(itemLines(p.AmbiguousItems)...)
	}
}

func bucketsTable(vinted, ebay resale.PlatformBucket) md.TableSet {
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Platform", "Purchases", "Sales", "Profit"},
		Rows: [][]string{
			{resale.PlatformVinted, vinted.Purchases.String(), vinted.Sales.String(), vinted.Profit.SignedString()},
			{resale.PlatformEbay, ebay.Purchases.String(), ebay.Sales.String(), ebay.Profit.SignedString()},
		},
	}
}

func addBucket(a, b resale.PlatformBucket) resale.PlatformBucket {
	return resale.PlatformBucket{
		Purchases: a.Purchases.Add(b.Purchases),
		Sales:     a.Sales.Add(b.Sales),
		Profit:    a.Profit.Add(b.Profit),
	}
}

func empty(p resale.PlatformMonth) bool {
	for _, b := range []resale.PlatformBucket{p.Vinted, p.Ebay} {
		if !b.Purchases.IsZero() || !b.Sales.IsZero() || !b.Profit.IsZero() {
			return false
		}
	}
	return len(p.UntaggedItems) == 0 && len(p.AmbiguousItems) == 0
}

// itemLines describes items, e.g. "Denim jacket (a1) sold on 2024-02-15 for €50.00".
func itemLines(items []resale.ItemRef) []string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		name := it.ItemName
		if name == "" {
			name = "unnamed item"
		}
		line := fmt.Sprintf("%s (%s) sold on %s for %s", name, it.ID, it.SaleDate, it.SalePrice)
		if it.SoldPlatform != "" {
			line += fmt.Sprintf(", platform %q", it.SoldPlatform)
		}
		lines = append(lines, line)
	}
	return lines
}
