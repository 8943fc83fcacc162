package income

import (
	"context"
	"log/slog"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
)

// touchMarker records the mutation instant on the advisory update marker.
// Marker failures never fail the mutation: the collection write already
// succeeded and projection does not depend on the marker.
func touchMarker(ctx context.Context, marker adapter.UpdateMarker, clock adapter.Clock) {
	if err := marker.Touch(ctx, clock.Now()); err != nil {
		slog.Warn("Failed to touch update marker", "error", err)
	}
}
