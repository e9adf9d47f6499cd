package domain

// ManualEntry is a user-created annotation placed on a calendar date.
// It is independent of trades; identity is the ID assigned at creation.
type ManualEntry struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Date   string            `json:"date"` // YYYY-MM-DD
	Fields map[string]string `json:"fields,omitempty"` // Extra user data
}

// Comment is one free-text note attached to a date.
type Comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"` // RFC3339 creation time
}

// State is the whole journal as persisted: the current trade set, the
// manual calendar entries, and the per-date comment log. It is read and
// written as a single blob; there is no incremental persistence.
type State struct {
	Trades        []FinalizedTrade     `json:"trades"`
	ManualEntries []ManualEntry        `json:"manualEntries"`
	Comments      map[string][]Comment `json:"comments"`
}

// NewState returns an empty journal state ready for use.
func NewState() *State {
	return &State{Comments: make(map[string][]Comment)}
}

// Clone returns a copy of the state that shares no mutable containers
// with the receiver. Trade and entry values themselves are treated as
// immutable once committed.
func (s *State) Clone() *State {
	out := &State{
		Trades:        make([]FinalizedTrade, len(s.Trades)),
		ManualEntries: make([]ManualEntry, len(s.ManualEntries)),
		Comments:      make(map[string][]Comment, len(s.Comments)),
	}
	copy(out.Trades, s.Trades)
	copy(out.ManualEntries, s.ManualEntries)
	for date, comments := range s.Comments {
		cc := make([]Comment, len(comments))
		copy(cc, comments)
		out.Comments[date] = cc
	}
	return out
}
