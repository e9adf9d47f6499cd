package ports

import (
	"context"

	"tradejournal/internal/domain"
)

// StateRepository defines the interface for loading and storing the whole
// journal state as a single blob under one well-known key. There is no
// incremental persistence: Load reads the whole blob, Save overwrites it.
type StateRepository interface {
	// Load retrieves the persisted state. A store that has never been
	// saved to returns an empty state, not an error.
	Load(ctx context.Context) (*domain.State, error)
	// Save overwrites the persisted state with the given snapshot.
	Save(ctx context.Context, state *domain.State) error
}

// RecordSource is the upstream delimited-text parser boundary. It yields
// one RawRecord per data row; a fatal parse error fails the whole read
// and aborts the import that requested it.
type RecordSource interface {
	Read(ctx context.Context) ([]domain.RawRecord, error)
}
