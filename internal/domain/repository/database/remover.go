package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Remover deletes a video document. The bool reports whether a document was
// actually removed.
type Remover interface {
	Remove(ctx context.Context, id primitive.ObjectID) (bool, error)
}
