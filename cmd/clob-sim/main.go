// clob-sim is a local stand-in for the CLOB API. It generates random builder
// trades and serves them with cursor pagination, so the dashboard can be run
// without credentials.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// simTrade mirrors the wire shape of one builder trade.
type simTrade struct {
	ID        string `json:"id"`
	Market    string `json:"market"`
	Owner     string `json:"owner"`
	TxHash    string `json:"transactionHash"`
	Side      string `json:"side"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	SizeUSDC  string `json:"sizeUsdc"`
	MatchTime string `json:"matchTime"`
}

type simPage struct {
	Trades     []simTrade `json:"trades"`
	NextCursor string     `json:"next_cursor"`
}

const endCursor = "LTE="

// generateRandomHex creates a random 0x-prefixed hex string
func generateRandomHex(rng *rand.Rand, length int) string {
	const charset = "0123456789abcdef"
	var result strings.Builder
	result.WriteString("0x")
	for i := 0; i < length; i++ {
		result.WriteByte(charset[rng.Intn(len(charset))])
	}
	return result.String()
}

// generateTrades creates realistic builder trades spread over the past days
func generateTrades(rng *rand.Rand, count, days, owners int) []simTrade {
	ownerPool := make([]string, owners)
	for i := range ownerPool {
		ownerPool[i] = generateRandomHex(rng, 40)
	}

	now := time.Now().UTC()
	trades := make([]simTrade, count)

	for i := range trades {
		// price in cents between 0.01 and 0.99
		price := float64(rng.Intn(99)+1) / 100
		// share size between 1 and 500
		size := float64(rng.Intn(4991)+10) / 10
		notional := price * size

		side := "BUY"
		if rng.Float64() < 0.5 {
			side = "SELL"
		}

		matchTime := now.Add(-time.Duration(rng.Int63n(int64(days) * 24 * int64(time.Hour))))

		trades[i] = simTrade{
			ID:        strconv.Itoa(i + 1),
			Market:    generateRandomHex(rng, 64),
			Owner:     ownerPool[rng.Intn(len(ownerPool))],
			TxHash:    generateRandomHex(rng, 64),
			Side:      side,
			Price:     strconv.FormatFloat(price, 'f', 2, 64),
			Size:      strconv.FormatFloat(size, 'f', 1, 64),
			SizeUSDC:  strconv.FormatFloat(notional, 'f', 2, 64),
			MatchTime: matchTime.Format(time.RFC3339),
		}
	}

	return trades
}

func cursorFor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

func parseCursor(cursor string) int {
	if cursor == "" {
		return 0
	}
	decoded, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0
	}
	offset, err := strconv.Atoi(string(decoded))
	if err != nil {
		return 0
	}
	return offset
}

func main() {
	var (
		port     = flag.Int("port", 9090, "listen port")
		count    = flag.Int("trades", 2500, "number of trades to generate")
		days     = flag.Int("days", 30, "spread trades over this many past days")
		owners   = flag.Int("owners", 40, "size of the owner address pool")
		pageSize = flag.Int("page-size", 500, "trades per page")
		seed     = flag.Int64("seed", 0, "random seed, 0 uses current time")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	trades := generateTrades(rng, *count, *days, *owners)
	log.Printf("generated %d trades across %d days for %d owners", *count, *days, *owners)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /time", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%d", time.Now().Unix())
	})

	mux.HandleFunc("GET /builder/trades", func(w http.ResponseWriter, r *http.Request) {
		offset := parseCursor(r.URL.Query().Get("id"))
		limit := *pageSize
		if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l < limit {
			limit = l
		}

		end := offset + limit
		if end > len(trades) {
			end = len(trades)
		}

		page := simPage{Trades: []simTrade{}, NextCursor: endCursor}
		if offset < len(trades) {
			page.Trades = trades[offset:end]
		}
		if end < len(trades) {
			page.NextCursor = cursorFor(end)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			log.Printf("failed to write page: %v", err)
		}

		log.Printf("served %d trades (offset %d, cursor %q)", len(page.Trades), offset, r.URL.Query().Get("id"))
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("clob-sim listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
