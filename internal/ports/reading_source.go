package ports

import "context"

// ReadingSource produces one temperature sample per call.
type ReadingSource interface {
	Fetch(ctx context.Context) (int, error)
}
