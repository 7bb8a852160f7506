// Package timesheet is the local time-tracking store: an in-memory entry
// collection mirrored to the key-value bridge, with sorted and aggregate
// views derived from it. The collection is the single source of truth; the
// running total is recomputed after every mutation.
package timesheet

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/MoroniPereira/TIME-SHEET/internal/errs"
	"github.com/MoroniPereira/TIME-SHEET/internal/model"
	"github.com/MoroniPereira/TIME-SHEET/internal/storage"
)

// Store owns the time-entry collection. Not safe for concurrent use; the
// client is single-threaded by design.
type Store struct {
	kv      storage.Store
	log     *zap.Logger
	entries []model.TimeEntry
	total   float64
}

// New returns an empty store. Call Load to hydrate from the bridge.
func New(kv storage.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// Load reads the persisted collection. Idempotent: the in-memory collection
// is replaced, never appended to. An absent key leaves the store empty;
// malformed JSON degrades to empty with a warning.
func (s *Store) Load() {
	s.entries = nil
	s.total = 0

	raw, ok := s.kv.Get(storage.KeyTimeEntries)
	if !ok {
		return
	}
	var entries []model.TimeEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.Warn("persisted time entries are malformed, starting empty", zap.Error(err))
		return
	}
	// The file may have been edited by hand; entries breaking the Add
	// invariants are dropped rather than poisoning the aggregate.
	kept := entries[:0]
	for _, e := range entries {
		if err := validate(e); err != nil {
			s.log.Warn("dropping invalid persisted time entry", zap.Int64("id", e.ID), zap.Error(err))
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	s.recompute()
}

// Add validates and appends an entry, persists the collection and updates
// the total. Entries are immutable once added.
func (s *Store) Add(e model.TimeEntry) error {
	if err := validate(e); err != nil {
		return err
	}
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			return fmt.Errorf("entry %d: %w", e.ID, errs.ErrDuplicateID)
		}
	}
	s.entries = append(s.entries, e)
	s.persist()
	s.recompute()
	return nil
}

// Delete removes every entry with the given id (at most one in practice),
// persists and updates the total. Deleting an unknown id is a no-op.
func (s *Store) Delete(id int64) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.persist()
	s.recompute()
}

// Entries returns the collection in insertion order.
func (s *Store) Entries() []model.TimeEntry {
	out := make([]model.TimeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Sorted returns the entries most recent first, ordered by date plus start
// time. The sort is stable, so same-moment entries keep insertion order.
func (s *Store) Sorted() []model.TimeEntry {
	out := s.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) > sortKey(out[j])
	})
	return out
}

// sortKey orders entries chronologically. Dates are fixed-width
// ("2006-01-02"); start times may carry a single-digit hour ("8:30"), so the
// clock component is zero-padded before string comparison.
func sortKey(e model.TimeEntry) string {
	return e.Date + "T" + normalizeClock(e.StartTime)
}

// normalizeClock pads an H:MM time to HH:MM. Anything else is returned
// unchanged.
func normalizeClock(t string) string {
	if i := strings.IndexByte(t, ':'); i == 1 {
		return "0" + t
	}
	return t
}

// TotalHours returns the aggregate duration of all entries.
func (s *Store) TotalHours() float64 {
	return s.total
}

// FormattedTotal renders the aggregate as "<h>h <m>min".
func (s *Store) FormattedTotal() string {
	return FormatHours(s.total)
}

// FormatHours renders fractional hours as "<h>h <m>min". A minute component
// that rounds to 60 carries into the hour, so 1.999 renders "2h 0min".
func FormatHours(total float64) string {
	hours := int(math.Floor(total))
	minutes := int(math.Round((total - math.Floor(total)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

func (s *Store) persist() {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		s.log.Warn("marshal time entries", zap.Error(err))
		return
	}
	s.kv.Set(storage.KeyTimeEntries, string(raw))
}

func (s *Store) recompute() {
	sum := 0.0
	for _, e := range s.entries {
		sum += e.DurationHours
	}
	s.total = sum
}

// validate enforces the entry invariants: non-negative duration and, when a
// lunch break is recorded, lunchStart < lunchEnd with both inside
// [start, end].
func validate(e model.TimeEntry) error {
	if e.DurationHours < 0 {
		return fmt.Errorf("entry %d: negative duration", e.ID)
	}
	if e.LunchStartTime == "" && e.LunchEndTime == "" {
		return nil
	}
	if e.LunchStartTime == "" || e.LunchEndTime == "" {
		return fmt.Errorf("entry %d: lunch break needs both start and end", e.ID)
	}
	lunchStart := normalizeClock(e.LunchStartTime)
	lunchEnd := normalizeClock(e.LunchEndTime)
	if lunchStart >= lunchEnd {
		return fmt.Errorf("entry %d: lunch start must precede lunch end", e.ID)
	}
	if lunchStart < normalizeClock(e.StartTime) || lunchEnd > normalizeClock(e.EndTime) {
		return fmt.Errorf("entry %d: lunch break outside work interval", e.ID)
	}
	return nil
}
