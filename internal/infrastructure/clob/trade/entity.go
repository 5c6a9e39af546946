package trade

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vikions/opipolix-builder-dashboard/pkg/errors"
)

// Trade represents one validated builder fill from the CLOB API.
type Trade struct {
	ID        string
	Market    string
	Owner     string // trimmed, lowercased; empty means unattributed
	TxHash    string // trimmed; empty means no settlement hash reported
	Side      string
	Price     decimal.Decimal
	Size      decimal.Decimal
	SizeUSDC  decimal.Decimal
	MatchTime time.Time
}

// Filter represents the query parameters of the builder-trades endpoint.
type Filter struct {
	Cursor string
	After  string
	Before string
	Limit  int
}

// Page is one normalized page of the builder-trades endpoint.
type Page struct {
	Trades     []*Trade
	NextCursor string
}

// endCursor is the sentinel the API returns on the last page.
const endCursor = "LTE="

// tradeRecord is the raw wire form of one trade. Numeric and time fields are
// kept raw because the API serves them as either strings or numbers, and both
// snake_case and camelCase key spellings occur.
type tradeRecord struct {
	ID          string          `json:"id"`
	Market      string          `json:"market"`
	Owner       string          `json:"owner"`
	TxHash      string          `json:"transactionHash"`
	TxHashSnake string          `json:"transaction_hash"`
	Side        string          `json:"side"`
	Price       json.RawMessage `json:"price"`
	Size        json.RawMessage `json:"size"`
	SizeUSDC    json.RawMessage `json:"sizeUsdc"`
	SizeSnake   json.RawMessage `json:"size_usdc"`
	MatchTime   json.RawMessage `json:"matchTime"`
	MatchSnake  json.RawMessage `json:"match_time"`
}

// toTrade validates the raw record into a Trade. sizeUsdc and matchTime are
// required: daily buckets must reconcile exactly with the all-time totals,
// which needs every counted trade to carry a bucketable timestamp.
func (r *tradeRecord) toTrade() (*Trade, error) {
	txHash := r.TxHash
	if txHash == "" {
		txHash = r.TxHashSnake
	}

	sizeRaw := r.SizeUSDC
	if sizeRaw == nil {
		sizeRaw = r.SizeSnake
	}
	if sizeRaw == nil {
		return nil, parseError("trade record is missing sizeUsdc")
	}
	sizeUSDC, err := parseDecimal(sizeRaw)
	if err != nil {
		return nil, parseError(fmt.Sprintf("invalid sizeUsdc: %v", err))
	}

	matchRaw := r.MatchTime
	if matchRaw == nil {
		matchRaw = r.MatchSnake
	}
	if matchRaw == nil {
		return nil, parseError("trade record is missing matchTime")
	}
	matchTime, err := parseMatchTime(matchRaw)
	if err != nil {
		return nil, parseError(fmt.Sprintf("invalid matchTime: %v", err))
	}

	t := &Trade{
		ID:        r.ID,
		Market:    r.Market,
		Owner:     strings.ToLower(strings.TrimSpace(r.Owner)),
		TxHash:    strings.TrimSpace(txHash),
		Side:      r.Side,
		SizeUSDC:  sizeUSDC,
		MatchTime: matchTime,
	}

	// optional decimals, zero when absent or malformed
	if r.Price != nil {
		t.Price, _ = parseDecimal(r.Price)
	}
	if r.Size != nil {
		t.Size, _ = parseDecimal(r.Size)
	}

	return t, nil
}

// envelope covers the object response shapes of the builder-trades endpoint.
type envelope struct {
	Trades     []tradeRecord `json:"trades"`
	Data       []tradeRecord `json:"data"`
	NextCursor string        `json:"next_cursor"`
	NextCamel  string        `json:"nextCursor"`
}

// normalizePage decodes one response body into a Page. Accepted shapes:
// a bare array, {"trades": [...]} or {"data": [...]}, with the cursor under
// next_cursor or nextCursor. Anything else is a parse error.
func normalizePage(body json.RawMessage) (*Page, error) {
	var records []tradeRecord
	var cursor string

	trimmed := strings.TrimSpace(string(body))
	switch {
	case strings.HasPrefix(trimmed, "["):
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, parseError(fmt.Sprintf("unexpected builder-trades array: %v", err))
		}
	case strings.HasPrefix(trimmed, "{"):
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, parseError(fmt.Sprintf("unexpected builder-trades envelope: %v", err))
		}
		records = env.Trades
		if records == nil {
			records = env.Data
		}
		cursor = env.NextCursor
		if cursor == "" {
			cursor = env.NextCamel
		}
	default:
		return nil, parseError("builder-trades response is neither array nor object")
	}

	page := &Page{
		Trades:     make([]*Trade, 0, len(records)),
		NextCursor: cursor,
	}
	for i := range records {
		t, err := records[i].toTrade()
		if err != nil {
			return nil, err
		}
		page.Trades = append(page.Trades, t)
	}

	return page, nil
}

// parseDecimal parses a JSON string or number into a decimal.
func parseDecimal(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "null" || s == "" {
		return decimal.Zero, fmt.Errorf("empty value")
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, err
		}
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}

// parseMatchTime parses an RFC 3339 timestamp (Z or offset form) or unix
// seconds, serialized as either a JSON string or number.
func parseMatchTime(raw json.RawMessage) (time.Time, error) {
	s := strings.TrimSpace(string(raw))
	if s == "null" || s == "" {
		return time.Time{}, fmt.Errorf("empty value")
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		s = strings.TrimSpace(s)
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("not RFC 3339 or unix seconds: %q", s)
	}
	whole := int64(seconds)
	nanos := int64((seconds - float64(whole)) * float64(time.Second))
	return time.Unix(whole, nanos).UTC(), nil
}

func parseError(message string) error {
	return errors.NewErrorDetails(message, errors.UpstreamParseError, "")
}
