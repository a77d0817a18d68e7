package resale

import (
	"fmt"
	"time"

	"github.com/etnz/resale/date"
)

// Attribution is the marketplace a sale is credited to.
type Attribution int

const (
	// Untagged sales are credited to no marketplace.
	Untagged Attribution = iota
	Vinted
	Ebay
	// Ambiguous sales are tagged for both marketplaces. They are credited to
	// both and reported so that the tags get fixed.
	Ambiguous
)

func (a Attribution) String() string {
	switch a {
	case Untagged:
		return "untagged"
	case Vinted:
		return "vinted"
	case Ebay:
		return "ebay"
	case Ambiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("Attribution(%d)", int(a))
	}
}

// Vinted reports whether the sale is credited to Vinted.
func (a Attribution) Vinted() bool { return a == Vinted || a == Ambiguous }

// Ebay reports whether the sale is credited to eBay.
func (a Attribution) Ebay() bool { return a == Ebay || a == Ambiguous }

func isTrue(b *bool) bool  { return b != nil && *b }
func isFalse(b *bool) bool { return b != nil && !*b }

// Classify reconciles the three marketplace tags of a transaction.
//
// Either the platform label or the flag is enough to credit a marketplace,
// but a fully explicit tagging for the other marketplace (label and flag set,
// this marketplace's flag explicitly false) overrides a stale flag.
func Classify(tx Transaction) Attribution {
	vinted := (tx.SoldPlatform == PlatformVinted || isTrue(tx.Vinted)) &&
		!(tx.SoldPlatform == PlatformEbay && isTrue(tx.Ebay) && isFalse(tx.Vinted))
	ebay := (tx.SoldPlatform == PlatformEbay || isTrue(tx.Ebay)) &&
		!(tx.SoldPlatform == PlatformVinted && isTrue(tx.Vinted) && isFalse(tx.Ebay))

	switch {
	case vinted && ebay:
		return Ambiguous
	case vinted:
		return Vinted
	case ebay:
		return Ebay
	default:
		return Untagged
	}
}

// hasPlatformLabel reports whether the sale names one of the known marketplaces.
func hasPlatformLabel(tx Transaction) bool {
	return tx.SoldPlatform == PlatformVinted || tx.SoldPlatform == PlatformEbay
}

// PlatformBucket sums the sales credited to a marketplace.
type PlatformBucket struct {
	Purchases Money `json:"purchases"`
	Sales     Money `json:"sales"`
	Profit    Money `json:"profit"`
}

func (b *PlatformBucket) add(tx Transaction) {
	b.Purchases = b.Purchases.Add(M(PurchasePrice(tx)))
	b.Sales = b.Sales.Add(M(SalePrice(tx)))
	b.Profit = b.Profit.Add(M(SalePrice(tx).Sub(PurchasePrice(tx))))
}

// ItemRef identifies a sale needing attention in a platform report.
type ItemRef struct {
	ID           string    `json:"id"`
	ItemName     string    `json:"itemName"`
	SoldPlatform string    `json:"soldPlatform"`
	SaleDate     date.Date `json:"saleDate"`
	SalePrice    Money     `json:"salePrice"`
}

func refOf(tx Transaction) ItemRef {
	return ItemRef{
		ID:           tx.ID,
		ItemName:     tx.ItemName,
		SoldPlatform: tx.SoldPlatform,
		SaleDate:     tx.SaleDate,
		SalePrice:    M(SalePrice(tx)),
	}
}

// PlatformMonth splits the sales of a month by marketplace.
type PlatformMonth struct {
	Year           int            `json:"year"`
	Month          time.Month     `json:"month"`
	Vinted         PlatformBucket `json:"vinted"`
	Ebay           PlatformBucket `json:"ebay"`
	UntaggedItems  []ItemRef      `json:"untaggedItems"`
	AmbiguousItems []ItemRef      `json:"ambiguousItems"`
}

// PlatformReport splits the items sold in the given month by marketplace.
//
// Buckets follow Classify: untagged sales are in neither, ambiguous ones in
// both. Every sale without a known platform label is listed in UntaggedItems,
// even when a flag credited it to a bucket.
// Ambiguous sales are listed too.
func PlatformReport(txs []Transaction, year int, month time.Month) PlatformMonth {
	res := PlatformMonth{
		Year:           year,
		Month:          month,
		UntaggedItems:  make([]ItemRef, 0),
		AmbiguousItems: make([]ItemRef, 0),
	}
	period := date.YearMonth{Year: year, Month: month}
	for _, tx := range txs {
		if !tx.IsSold() || tx.SaleDate.YearMonth() != period {
			continue
		}
		a := Classify(tx)
		if a.Vinted() {
			res.Vinted.add(tx)
		}
		if a.Ebay() {
			res.Ebay.add(tx)
		}
		if !hasPlatformLabel(tx) {
			res.UntaggedItems = append(res.UntaggedItems, refOf(tx))
		}
		if a == Ambiguous {
			res.AmbiguousItems = append(res.AmbiguousItems, refOf(tx))
		}
	}
	return res
}

// PlatformYear returns the twelve monthly platform reports of a year.
func PlatformYear(txs []Transaction, year int) []PlatformMonth {
	res := make([]PlatformMonth, 0, 12)
	for m := time.January; m <= time.December; m++ {
		res = append(res, PlatformReport(txs, year, m))
	}
	return res
}
