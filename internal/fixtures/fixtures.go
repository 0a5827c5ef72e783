// Package fixtures generates synthetic feed-file content for tests: a
// deterministic index cycles over the catalog's CUSIPs, advancing one
// tick per call and emitting canned fractional price strings.
package fixtures

import (
	"strconv"
	"strings"
	"time"

	"treasury-pipeline/internal/catalog"
	"treasury-pipeline/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05.000"

type tick struct {
	bid, ask string
}

var cannedTicks = []tick{
	{"99-008", "99-016"},
	{"100-000", "100-008"},
	{"98-160", "98-168"},
}

// Generator cycles deterministically over the static product catalog.
type Generator struct {
	products []domain.Product
	index    int
}

// NewGenerator creates a generator over every catalog product, in
// identifier order.
func NewGenerator() *Generator {
	products := catalog.All()
	for i := 1; i < len(products); i++ {
		for j := i; j > 0 && products[j].Identifier < products[j-1].Identifier; j-- {
			products[j], products[j-1] = products[j-1], products[j]
		}
	}
	return &Generator{products: products}
}

func (g *Generator) next() domain.Product {
	p := g.products[g.index%len(g.products)]
	g.index++
	return p
}

// PricesCSV builds n rows of prices.txt content starting at ts, one
// tick apart.
func (g *Generator) PricesCSV(n int, ts time.Time) string {
	var b strings.Builder
	b.WriteString("Timestamp,CUSIP,Bid,Ask\n")
	for i := 0; i < n; i++ {
		p := g.next()
		t := cannedTicks[i%len(cannedTicks)]
		b.WriteString(ts.Add(time.Duration(i) * 100 * time.Millisecond).Format(timestampLayout))
		b.WriteByte(',')
		b.WriteString(p.Identifier)
		b.WriteByte(',')
		b.WriteString(t.bid)
		b.WriteByte(',')
		b.WriteString(t.ask)
		b.WriteByte('\n')
	}
	return b.String()
}

// MarketDataCSV builds n rows of marketdata.txt content, each with five
// depth levels built from the same canned tick widened by level.
func (g *Generator) MarketDataCSV(n int, ts time.Time) string {
	var b strings.Builder
	b.WriteString("Timestamp,CUSIP,Bid1,BidSize1,Ask1,AskSize1,Bid2,BidSize2,Ask2,AskSize2,Bid3,BidSize3,Ask3,AskSize3,Bid4,BidSize4,Ask4,AskSize4,Bid5,BidSize5,Ask5,AskSize5\n")
	for i := 0; i < n; i++ {
		p := g.next()
		t := cannedTicks[i%len(cannedTicks)]
		b.WriteString(ts.Add(time.Duration(i) * 100 * time.Millisecond).Format(timestampLayout))
		b.WriteByte(',')
		b.WriteString(p.Identifier)
		for level := 1; level <= 5; level++ {
			b.WriteByte(',')
			b.WriteString(t.bid)
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(1_000_000 * level))
			b.WriteByte(',')
			b.WriteString(t.ask)
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(1_000_000 * level))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TradesCSV builds n headerless trades.txt rows, alternating BUY/SELL.
func (g *Generator) TradesCSV(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		p := g.next()
		side := "BUY"
		if i%2 == 1 {
			side = "SELL"
		}
		b.WriteString(p.Identifier)
		b.WriteByte(',')
		b.WriteString("T" + strconv.Itoa(i+1))
		b.WriteByte(',')
		b.WriteString(cannedTicks[i%len(cannedTicks)].bid)
		b.WriteByte(',')
		b.WriteString("TRSY1")
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(1_000_000))
		b.WriteByte(',')
		b.WriteString(side)
		b.WriteByte('\n')
	}
	return b.String()
}

// InquiriesCSV builds n headerless inquiries.txt rows, all RECEIVED.
func (g *Generator) InquiriesCSV(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		p := g.next()
		b.WriteString("I" + strconv.Itoa(i+1))
		b.WriteByte(',')
		b.WriteString(p.Identifier)
		b.WriteByte(',')
		b.WriteString("BUY")
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(1_000_000))
		b.WriteByte(',')
		b.WriteString(cannedTicks[i%len(cannedTicks)].ask)
		b.WriteByte(',')
		b.WriteString("RECEIVED")
		b.WriteByte('\n')
	}
	return b.String()
}
