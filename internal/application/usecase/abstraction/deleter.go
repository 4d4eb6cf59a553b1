package abstraction

import "context"

// Deleter removes a video document together with its stored blobs.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}
