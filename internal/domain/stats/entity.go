package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the aggregated statistics for one builder account, recomputed
// on every request and never persisted. Volumes are USDC decimals rounded to
// cents and marshal as JSON strings.
type Snapshot struct {
	TotalVolume decimal.Decimal `json:"totalVolume"`
	TotalTrades int             `json:"totalTrades"`
	UniqueUsers int             `json:"uniqueUsers"`
	UniqueTxs   int             `json:"uniqueTxs"`

	WindowVolume decimal.Decimal `json:"windowVolume"`
	WindowTrades int             `json:"windowTrades"`
	WindowUsers  int             `json:"windowUsers"`
	WindowTxs    int             `json:"windowTxs"`

	Daily  []DailyBucket  `json:"daily"`
	Weekly []WeeklyBucket `json:"weekly"`

	GeneratedAt time.Time `json:"generatedAt"`
	WindowHours int       `json:"windowHours"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`
}

// DailyBucket aggregates one UTC calendar day of trading.
type DailyBucket struct {
	Date        string          `json:"date"` // "2006-01-02"
	Volume      decimal.Decimal `json:"volume"`
	Trades      int             `json:"trades"`
	UniqueUsers int             `json:"uniqueUsers"`
	UniqueTxs   int             `json:"uniqueTxs"`
}

// WeeklyBucket aggregates one ISO week of trading.
type WeeklyBucket struct {
	Week        string          `json:"week"` // "2006-W01"
	Volume      decimal.Decimal `json:"volume"`
	Trades      int             `json:"trades"`
	UniqueUsers int             `json:"uniqueUsers"`
	UniqueTxs   int             `json:"uniqueTxs"`
}
