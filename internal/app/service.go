package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tradejournal/internal/calendar"
	"tradejournal/internal/domain"
	"tradejournal/internal/pipeline"
	"tradejournal/internal/ports"
	"tradejournal/pkg/id"
)

// JournalService owns the in-memory journal state and orchestrates
// imports, mutations, and the calendar projection. Persistence is
// best-effort: the in-memory state is updated first and is immediately
// authoritative for reads; save failures are logged and never surface to
// the caller.
type JournalService struct {
	logger ports.Logger
	store  ports.StateRepository

	mu    sync.Mutex // Protects state
	state *domain.State
}

// NewJournalService creates the service with an empty journal. Call Load
// to pick up previously persisted state.
func NewJournalService(logger ports.Logger, store ports.StateRepository) (*JournalService, error) {
	if logger == nil || store == nil {
		return nil, fmt.Errorf("missing required dependencies for JournalService")
	}
	return &JournalService{
		logger: logger,
		store:  store,
		state:  domain.NewState(),
	}, nil
}

// Load replaces the in-memory state with the persisted blob. A load
// failure is logged and leaves the state at its initialized empty
// defaults; it is never fatal.
func (s *JournalService) Load(ctx context.Context) {
	state, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to load journal state, starting empty")
		return
	}
	if state.Comments == nil {
		state.Comments = make(map[string][]domain.Comment)
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.logger.Info(ctx, "Journal state loaded", map[string]interface{}{
		"trades":        len(state.Trades),
		"manualEntries": len(state.ManualEntries),
	})
}

// Import reads all records from the source, runs the grouping pipeline,
// and replaces the trade set wholesale. Imports are not additive merges
// across batches. A source failure aborts the import with the in-memory
// state untouched.
func (s *JournalService) Import(ctx context.Context, src ports.RecordSource) (pipeline.Stats, error) {
	records, err := src.Read(ctx)
	if err != nil {
		s.logger.Error(ctx, err, "Import aborted, record source failed")
		return pipeline.Stats{}, fmt.Errorf("read records: %w", err)
	}

	trades, stats := pipeline.Group(records)

	s.mu.Lock()
	s.state.Trades = trades
	s.mu.Unlock()

	s.logger.Info(ctx, "Import complete", map[string]interface{}{
		"rows":                stats.Rows,
		"executions":          stats.Executions,
		"trades":              stats.Trades,
		"skippedMissingField": stats.SkippedMissingField,
		"skippedBadTimestamp": stats.SkippedBadTimestamp,
	})

	s.persist(ctx)
	return stats, nil
}

// CalendarEvents projects the current state into calendar events. The
// projection is recomputed on every call and never persisted.
func (s *JournalService) CalendarEvents() []domain.CalendarEvent {
	s.mu.Lock()
	trades := s.state.Trades
	entries := s.state.ManualEntries
	s.mu.Unlock()

	return calendar.Events(trades, entries)
}

// AddManualEntry assigns the entry an id, appends it, and persists. The
// stored entry, id included, is returned.
func (s *JournalService) AddManualEntry(ctx context.Context, entry domain.ManualEntry) domain.ManualEntry {
	entry.ID = id.New()

	s.mu.Lock()
	s.state.ManualEntries = append(s.state.ManualEntries, entry)
	s.mu.Unlock()

	s.logger.Debug(ctx, "Manual entry added", map[string]interface{}{"id": entry.ID, "date": entry.Date})
	s.persist(ctx)
	return entry
}

// AddComment appends a free-text comment to the given date's log and
// persists.
func (s *JournalService) AddComment(ctx context.Context, date, text string) domain.Comment {
	comment := domain.Comment{
		ID:        id.New(),
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.state.Comments[date] = append(s.state.Comments[date], comment)
	s.mu.Unlock()

	s.logger.Debug(ctx, "Comment added", map[string]interface{}{"id": comment.ID, "date": date})
	s.persist(ctx)
	return comment
}

// RemoveTradesForDay drops every trade whose trade date equals the given
// day or has it as a prefix (tolerating timestamp-suffixed date strings),
// persists the filtered set, and returns how many trades were removed.
func (s *JournalService) RemoveTradesForDay(ctx context.Context, date string) int {
	s.mu.Lock()
	kept := s.state.Trades[:0:0]
	for _, trade := range s.state.Trades {
		if trade.TradeDate == date || strings.HasPrefix(trade.TradeDate, date) {
			continue
		}
		kept = append(kept, trade)
	}
	removed := len(s.state.Trades) - len(kept)
	s.state.Trades = kept
	s.mu.Unlock()

	s.logger.Info(ctx, "Removed trades for day", map[string]interface{}{"date": date, "removed": removed})
	s.persist(ctx)
	return removed
}

// Trades returns a copy of the current trade set.
func (s *JournalService) Trades() []domain.FinalizedTrade {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FinalizedTrade, len(s.state.Trades))
	copy(out, s.state.Trades)
	return out
}

// ManualEntries returns a copy of the stored manual entries.
func (s *JournalService) ManualEntries() []domain.ManualEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ManualEntry, len(s.state.ManualEntries))
	copy(out, s.state.ManualEntries)
	return out
}

// Comments returns a copy of the comment log for the given date.
func (s *JournalService) Comments(date string) []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := s.state.Comments[date]
	out := make([]domain.Comment, len(comments))
	copy(out, comments)
	return out
}

// persist saves a snapshot of the current state. Failures are logged and
// swallowed: the in-memory state stays authoritative for the session.
func (s *JournalService) persist(ctx context.Context) {
	s.mu.Lock()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.Error(ctx, err, "Failed to persist journal state")
	}
}
