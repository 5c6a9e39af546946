// Package stats reduces builder trade history into the aggregate snapshot.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vikions/opipolix-builder-dashboard/internal/domain/stats"
	"github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob/trade"
	"github.com/vikions/opipolix-builder-dashboard/pkg/errors"
	"github.com/vikions/opipolix-builder-dashboard/pkg/logger"
	"github.com/vikions/opipolix-builder-dashboard/pkg/timeframe"
)

// Usecase is the usecase for builder stats.
type Usecase struct {
	tradeRepository trade.TradeRepository
	logger          logger.Interface
	now             func() time.Time
}

// NewUsecase creates a new stats usecase.
func NewUsecase(tradeRepository trade.TradeRepository, logger logger.Interface) *Usecase {
	return &Usecase{
		tradeRepository: tradeRepository,
		logger:          logger,
		now:             time.Now,
	}
}

// bucket accumulates one calendar bucket before it is collapsed into counts.
type bucket struct {
	volume decimal.Decimal
	trades int
	users  map[string]struct{}
	txs    map[string]struct{}
}

func newBucket() *bucket {
	return &bucket{
		volume: decimal.Zero,
		users:  map[string]struct{}{},
		txs:    map[string]struct{}{},
	}
}

func (b *bucket) add(t *trade.Trade) {
	b.volume = b.volume.Add(t.SizeUSDC)
	b.trades++
	if t.Owner != "" {
		b.users[t.Owner] = struct{}{}
	}
	if t.TxHash != "" {
		b.txs[t.TxHash] = struct{}{}
	}
}

// Snapshot fetches the full builder trade history and aggregates it.
// An empty history is a valid all-zero snapshot, not an error. hours outside
// the supported range is corrected, never rejected.
func (u *Usecase) Snapshot(ctx context.Context, hours int) (*stats.Snapshot, error) {
	hours = timeframe.ClampHours(hours)
	now := u.now().UTC()
	windowStart := timeframe.WindowStart(now, hours)

	trades, pages, err := u.tradeRepository.ListAll(ctx, trade.Filter{})
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	u.logger.DebugContext(ctx, "fetched builder trades",
		logger.NewField("trades", len(trades)),
		logger.NewField("pages", pages),
	)

	allTime := newBucket()
	window := newBucket()
	daily := map[string]*bucket{}
	weekly := map[string]*bucket{}

	for _, t := range trades {
		allTime.add(t)

		dayKey := timeframe.DayKey(t.MatchTime)
		if daily[dayKey] == nil {
			daily[dayKey] = newBucket()
		}
		daily[dayKey].add(t)

		weekKey := timeframe.WeekKey(t.MatchTime)
		if weekly[weekKey] == nil {
			weekly[weekKey] = newBucket()
		}
		weekly[weekKey].add(t)

		// window lower bound is inclusive
		if !t.MatchTime.Before(windowStart) {
			window.add(t)
		}
	}

	snapshot := &stats.Snapshot{
		TotalVolume: allTime.volume.Round(2),
		TotalTrades: allTime.trades,
		UniqueUsers: len(allTime.users),
		UniqueTxs:   len(allTime.txs),

		WindowVolume: window.volume.Round(2),
		WindowTrades: window.trades,
		WindowUsers:  len(window.users),
		WindowTxs:    len(window.txs),

		Daily:  collapseDaily(daily),
		Weekly: collapseWeekly(weekly),

		GeneratedAt: now,
		WindowHours: hours,
		WindowStart: windowStart,
		WindowEnd:   now,
	}

	return snapshot, nil
}

// collapseDaily turns the day buckets into a slice sorted ascending by date.
func collapseDaily(daily map[string]*bucket) []stats.DailyBucket {
	out := make([]stats.DailyBucket, 0, len(daily))
	for date, b := range daily {
		out = append(out, stats.DailyBucket{
			Date:        date,
			Volume:      b.volume.Round(2),
			Trades:      b.trades,
			UniqueUsers: len(b.users),
			UniqueTxs:   len(b.txs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// collapseWeekly turns the week buckets into a slice sorted ascending by
// ISO week key.
func collapseWeekly(weekly map[string]*bucket) []stats.WeeklyBucket {
	out := make([]stats.WeeklyBucket, 0, len(weekly))
	for week, b := range weekly {
		out = append(out, stats.WeeklyBucket{
			Week:        week,
			Volume:      b.volume.Round(2),
			Trades:      b.trades,
			UniqueUsers: len(b.users),
			UniqueTxs:   len(b.txs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}
