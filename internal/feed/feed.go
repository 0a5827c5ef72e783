// Package feed decodes the four external CSV input files into typed
// domain events. Parsing itself (field splitting) uses the standard
// library's encoding/csv: nothing in the reference corpus exercises a
// CSV or flat-file parsing library, so this is the one ambient concern
// this module serves with the standard library rather than a
// third-party dependency (see DESIGN.md).
package feed

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"treasury-pipeline/internal/catalog"
	"treasury-pipeline/internal/domain"
	"treasury-pipeline/internal/errors"
	"treasury-pipeline/internal/priceformat"
)

const timestampLayout = "2006-01-02 15:04:05.000"

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

func lookupProduct(id string) (domain.Product, error) {
	p, ok := catalog.Lookup(id)
	if !ok {
		return domain.Product{}, errors.Newf("feed: unknown product %s", id)
	}
	return p, nil
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "feed: malformed timestamp "+s)
	}
	return t, nil
}

func parseInt64(field, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "feed: malformed "+field+" "+s)
	}
	return n, nil
}

func parseTradeSide(s string) (domain.TradeSide, error) {
	switch s {
	case "BUY":
		return domain.Buy, nil
	case "SELL":
		return domain.Sell, nil
	default:
		return domain.TradeSideUnknown, errors.Newf("feed: unknown side %s", s)
	}
}

// parseInquiryState maps the state token, treating an unrecognized token
// as CUSTOMER_REJECTED rather than a fatal parse error.
func parseInquiryState(s string) domain.InquiryState {
	switch s {
	case "RECEIVED":
		return domain.Received
	case "QUOTED":
		return domain.Quoted
	case "DONE":
		return domain.Done
	case "REJECTED":
		return domain.Rejected
	case "CUSTOMER_REJECTED":
		return domain.CustomerRejected
	default:
		return domain.CustomerRejected
	}
}

// DecodeQuotes parses prices.txt: Timestamp, CUSIP, Bid, Ask. The header
// line is skipped.
func DecodeQuotes(r io.Reader) ([]domain.Quote, error) {
	cr := newReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "feed: malformed prices record")
	}
	if len(records) == 0 {
		return nil, nil
	}
	records = records[1:]

	out := make([]domain.Quote, 0, len(records))
	for _, rec := range records {
		if len(rec) != 4 {
			return nil, errors.New("feed: malformed prices record")
		}
		ts, err := parseTimestamp(rec[0])
		if err != nil {
			return nil, err
		}
		product, err := lookupProduct(rec[1])
		if err != nil {
			return nil, err
		}
		bid, err := priceformat.Decode(rec[2])
		if err != nil {
			return nil, errors.Wrap(err, "feed: invalid bid price")
		}
		ask, err := priceformat.Decode(rec[3])
		if err != nil {
			return nil, errors.Wrap(err, "feed: invalid ask price")
		}
		out = append(out, domain.Quote{Timestamp: ts, Product: product, Bid: bid, Ask: ask})
	}
	return out, nil
}

// DecodeDepthSnapshots parses marketdata.txt: Timestamp, CUSIP, then five
// repetitions of (Bid, BidSize, Ask, AskSize). The header line is
// skipped.
func DecodeDepthSnapshots(r io.Reader) ([]domain.DepthSnapshot, error) {
	cr := newReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "feed: malformed marketdata record")
	}
	if len(records) == 0 {
		return nil, nil
	}
	records = records[1:]

	out := make([]domain.DepthSnapshot, 0, len(records))
	for _, rec := range records {
		if len(rec) != 22 {
			return nil, errors.New("feed: malformed marketdata record")
		}
		ts, err := parseTimestamp(rec[0])
		if err != nil {
			return nil, err
		}
		product, err := lookupProduct(rec[1])
		if err != nil {
			return nil, err
		}

		snap := domain.DepthSnapshot{Timestamp: ts, Product: product}
		for level := 0; level < 5; level++ {
			base := 2 + level*4
			bidPrice, err := priceformat.Decode(rec[base])
			if err != nil {
				return nil, errors.Wrap(err, "feed: invalid bid price")
			}
			bidSize, err := parseInt64("bid size", rec[base+1])
			if err != nil {
				return nil, err
			}
			askPrice, err := priceformat.Decode(rec[base+2])
			if err != nil {
				return nil, errors.Wrap(err, "feed: invalid ask price")
			}
			askSize, err := parseInt64("ask size", rec[base+3])
			if err != nil {
				return nil, err
			}
			snap.Bids[level] = domain.Order{Price: bidPrice, Quantity: bidSize, Side: domain.Bid}
			snap.Offers[level] = domain.Order{Price: askPrice, Quantity: askSize, Side: domain.Offer}
		}
		out = append(out, snap)
	}
	return out, nil
}

// DecodeTrades parses trades.txt: no header.
// CUSIP, TradeId, Price, Book, Quantity, BUY|SELL.
func DecodeTrades(r io.Reader) ([]domain.Trade, error) {
	cr := newReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "feed: malformed trades record")
	}

	out := make([]domain.Trade, 0, len(records))
	for _, rec := range records {
		if len(rec) != 6 {
			return nil, errors.New("feed: malformed trades record")
		}
		product, err := lookupProduct(rec[0])
		if err != nil {
			return nil, err
		}
		price, err := priceformat.Decode(rec[2])
		if err != nil {
			return nil, errors.Wrap(err, "feed: invalid trade price")
		}
		qty, err := parseInt64("quantity", rec[4])
		if err != nil {
			return nil, err
		}
		side, err := parseTradeSide(rec[5])
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Trade{
			Product:  product,
			TradeID:  rec[1],
			Price:    price,
			Book:     rec[3],
			Quantity: qty,
			Side:     side,
		})
	}
	return out, nil
}

// DecodeInquiries parses inquiries.txt: no header.
// InquiryId, CUSIP, BUY|SELL, Quantity, Price, RECEIVED|QUOTED|DONE|REJECTED|CUSTOMER_REJECTED.
func DecodeInquiries(r io.Reader) ([]domain.Inquiry, error) {
	cr := newReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "feed: malformed inquiries record")
	}

	out := make([]domain.Inquiry, 0, len(records))
	for _, rec := range records {
		if len(rec) != 6 {
			return nil, errors.New("feed: malformed inquiries record")
		}
		product, err := lookupProduct(rec[1])
		if err != nil {
			return nil, err
		}
		side, err := parseTradeSide(rec[2])
		if err != nil {
			return nil, err
		}
		qty, err := parseInt64("quantity", rec[3])
		if err != nil {
			return nil, err
		}
		price, err := priceformat.Decode(rec[4])
		if err != nil {
			return nil, errors.Wrap(err, "feed: invalid inquiry price")
		}
		out = append(out, domain.Inquiry{
			InquiryID: rec[0],
			Product:   product,
			Side:      side,
			Quantity:  qty,
			Price:     price,
			State:     parseInquiryState(rec[5]),
		})
	}
	return out, nil
}
