package export

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("export not found")

type Repository interface {
	Create(ctx context.Context, e *Export) error
	Get(ctx context.Context, id string) (*Export, error)

	// ClaimPending moves the oldest pending export to PROCESSING and returns
	// it. It returns nil, nil when nothing is pending.
	ClaimPending(ctx context.Context) (*Export, error)
	MarkDone(ctx context.Context, id, url string) error
	MarkFailed(ctx context.Context, id, reason string) error
}
