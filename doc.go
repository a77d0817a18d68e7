// Package resale turns a resale inventory ledger into the figures a reseller
// looks at: monthly profit, return on investment, sell-through rate, average
// selling price, average profit multiple and per-marketplace sales.
//
// The ledger is a flat list of buy/sell rows (see [Transaction]). It is read
// through a [Store], and every figure is computed from that read-only snapshot
// by pure functions:
//   - Time bucketing: [GroupByMonth] is the single grouping primitive, from
//     which [Timeline] (full history) and [YearView] (12 monthly slots) derive.
//   - Metrics: [SellThroughRate], [AverageSellingPrice], [ROI],
//     [AverageProfitMultiple], [AverageDaysToSell] and friends.
//   - Platform attribution: [Classify] reconciles the three marketplace tags
//     of a sale into a single [Attribution].
//   - Year selection: [ResolveScope] picks the year a report is about.
//
// [NewReport] assembles all of it into the JSON payload served by the
// `resale` command line tool and its HTTP API.
package resale
