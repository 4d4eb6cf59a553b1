package blob

import "context"

// Remover deletes a previously stored blob by its public URL.
type Remover interface {
	Remove(ctx context.Context, url string) error
}
