package usecase

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/pkg/apperr"
)

// parseVideoID validates the raw id before any store call so that malformed
// ids fail fast with a validation error instead of querying the store.
func parseVideoID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.Validationf("invalid video id %q", raw)
	}

	return id, nil
}
