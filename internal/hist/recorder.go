// Package hist implements the historical data service: five kind-tagged
// sinks (position, risk, execution, streaming, inquiry) that each keep an
// insert-or-overwrite keyed store and append a timestamped line to an
// output file on every record. Persistence itself (the file I/O) is a
// declared external collaborator; this package only formats the line and
// writes it best-effort, using a scaled-integer line formatter adapted
// to these five sink schemas.
package hist

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"treasury-pipeline/internal/domain"
)

// Recorder is a generic keyed, append-only sink for one record kind.
type Recorder[V any] struct {
	out        io.Writer
	store      map[string]V
	keyFunc    func(V) string
	formatFunc func(V) string
	now        func() time.Time
}

func newRecorder[V any](out io.Writer, keyFunc func(V) string, formatFunc func(V) string) *Recorder[V] {
	return &Recorder[V]{
		out:        out,
		store:      make(map[string]V),
		keyFunc:    keyFunc,
		formatFunc: formatFunc,
		now:        time.Now,
	}
}

// Get returns the current stored record for a key.
func (r *Recorder[V]) Get(key string) (V, bool) {
	v, ok := r.store[key]
	return v, ok
}

// ProcessAdd implements pipeline.Listener[V]; insert-or-overwrite by key,
// then append the record line to the sink file.
func (r *Recorder[V]) ProcessAdd(v V) {
	key := r.keyFunc(v)
	r.store[key] = v
	r.writeLine(v)
}

func (r *Recorder[V]) ProcessRemove(V) {}
func (r *Recorder[V]) ProcessUpdate(V) {}

// writeLine appends "<timestamp>,<record>\n". Write failures are swallowed:
// persistence here is best-effort.
func (r *Recorder[V]) writeLine(v V) {
	if r.out == nil {
		return
	}
	line := timestamp(r.now()) + "," + r.formatFunc(v) + "\n"
	_, _ = r.out.Write([]byte(line))
}

func timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000")
}

// NewPositionRecorder sinks Position records to positions.txt's schema:
// product-id, book, qty, book, qty, ... (books sorted for determinism).
func NewPositionRecorder(out io.Writer) *Recorder[domain.Position] {
	return newRecorder(out,
		func(p domain.Position) string { return p.Product.Identifier },
		func(p domain.Position) string {
			books := make([]string, 0, len(p.PerBook))
			for book := range p.PerBook {
				books = append(books, book)
			}
			sort.Strings(books)

			var b strings.Builder
			b.WriteString(p.Product.Identifier)
			for _, book := range books {
				b.WriteByte(',')
				b.WriteString(book)
				b.WriteByte(',')
				b.WriteString(strconv.FormatInt(p.PerBook[book], 10))
			}
			return b.String()
		})
}

// NewRiskRecorder sinks PV01 records to risk.txt's schema:
// product-id, pv01, quantity.
func NewRiskRecorder(out io.Writer) *Recorder[domain.PV01] {
	return newRecorder(out,
		func(pv domain.PV01) string { return pv.ProductID },
		func(pv domain.PV01) string {
			var b strings.Builder
			b.WriteString(pv.ProductID)
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(pv.Factor, 'f', -1, 64))
			b.WriteByte(',')
			b.WriteString(strconv.FormatInt(pv.Quantity, 10))
			return b.String()
		})
}

// NewStreamingRecorder sinks PriceStream records to streaming.txt's schema:
// product-id, bidOrder, offerOrder, each order "price,visible,hidden,side".
func NewStreamingRecorder(out io.Writer) *Recorder[domain.PriceStream] {
	return newRecorder(out,
		func(ps domain.PriceStream) string { return ps.Product.Identifier },
		func(ps domain.PriceStream) string {
			var b strings.Builder
			b.WriteString(ps.Product.Identifier)
			b.WriteByte(',')
			writeStreamOrder(&b, ps.Bid)
			b.WriteByte(',')
			writeStreamOrder(&b, ps.Offer)
			return b.String()
		})
}

func writeStreamOrder(b *strings.Builder, o domain.PriceStreamOrder) {
	b.WriteString(o.Price.String())
	b.WriteByte(',')
	b.WriteString(strconv.FormatInt(o.Visible, 10))
	b.WriteByte(',')
	b.WriteString(strconv.FormatInt(o.Hidden, 10))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(o.Side)))
}

// NewExecutionRecorder sinks ExecutionOrder records to executions.txt's
// schema: product-id, order-id, side, order-type, price, visible, hidden,
// parent, is-child.
func NewExecutionRecorder(out io.Writer) *Recorder[domain.ExecutionOrder] {
	return newRecorder(out,
		func(o domain.ExecutionOrder) string { return o.OrderID },
		func(o domain.ExecutionOrder) string {
			var b strings.Builder
			b.WriteString(o.Product.Identifier)
			b.WriteByte(',')
			b.WriteString(o.OrderID)
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(int(o.Side)))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(int(o.OrderType)))
			b.WriteByte(',')
			b.WriteString(o.Price.String())
			b.WriteByte(',')
			b.WriteString(strconv.FormatInt(o.VisibleQty, 10))
			b.WriteByte(',')
			b.WriteString(strconv.FormatInt(o.HiddenQty, 10))
			b.WriteByte(',')
			b.WriteString(o.ParentOrderID)
			b.WriteByte(',')
			b.WriteString(strconv.FormatBool(o.IsChildOrder))
			return b.String()
		})
}

// NewInquiryRecorder sinks Inquiry records to aggregatedinquiries.txt's
// schema: inquiry-id, product-id, side, qty, price, state. Keyed by
// inquiry id (see DESIGN.md's resolution of the source's ambiguous key).
func NewInquiryRecorder(out io.Writer) *Recorder[domain.Inquiry] {
	return newRecorder(out,
		func(i domain.Inquiry) string { return i.InquiryID },
		func(i domain.Inquiry) string {
			var b strings.Builder
			b.WriteString(i.InquiryID)
			b.WriteByte(',')
			b.WriteString(i.Product.Identifier)
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(int(i.Side)))
			b.WriteByte(',')
			b.WriteString(strconv.FormatInt(i.Quantity, 10))
			b.WriteByte(',')
			b.WriteString(i.Price.String())
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(int(i.State)))
			return b.String()
		})
}
