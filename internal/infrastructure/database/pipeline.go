package database

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/domain/dto"
)

// Pipelines are built as data so filter, ranking and pagination logic can be
// exercised without a running store.

const (
	defaultPage  = int64(1)
	defaultLimit = int64(10)
)

// sortableFields whitelists caller-supplied sort keys. Unknown keys fall back
// to newest-first.
var sortableFields = map[string]struct{}{
	"createdAt": {},
	"views":     {},
	"duration":  {},
	"title":     {},
}

func normalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return page, limit
}

// listPipeline builds the published-catalog listing: filter, owner join,
// ranking, then a $facet carrying the requested page and the total count in
// one round trip.
func listPipeline(q dto.ListVideosQuery) mongo.Pipeline {
	match := bson.D{{Key: "isPublished", Value: true}}
	if q.Owner != nil {
		match = append(match, bson.E{Key: "owner", Value: *q.Owner})
	}
	if q.Query != "" {
		match = append(match, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: q.Query}}})
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
	}

	if q.Query != "" {
		pipeline = append(pipeline, bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}},
		}}})
	}

	pipeline = append(pipeline,
		ownerSummaryLookup(),
		firstOwnerStage(),
		bson.D{{Key: "$sort", Value: sortSpec(q)}},
	)

	page, limit := normalizePage(q.Page, q.Limit)
	pipeline = append(pipeline, bson.D{{Key: "$facet", Value: bson.D{
		{Key: "docs", Value: bson.A{
			bson.D{{Key: "$skip", Value: (page - 1) * limit}},
			bson.D{{Key: "$limit", Value: limit}},
		}},
		{Key: "totalCount", Value: bson.A{
			bson.D{{Key: "$count", Value: "count"}},
		}},
	}}})

	return pipeline
}

// sortSpec ranks text-queried listings by relevance with views as tie-break;
// otherwise it honors the whitelisted caller sort, defaulting to newest-first.
func sortSpec(q dto.ListVideosQuery) bson.D {
	if q.Query != "" {
		return bson.D{
			{Key: "score", Value: -1},
			{Key: "views", Value: -1},
		}
	}

	if _, ok := sortableFields[q.SortBy]; ok {
		direction := -1
		if q.SortType == "asc" {
			direction = 1
		}

		return bson.D{{Key: q.SortBy, Value: direction}}
	}

	return bson.D{{Key: "createdAt", Value: -1}}
}

// detailPipeline builds the single-video enrichment: likes count and
// viewer-relative isLiked, owner profile with subscription enrichment. A nil
// viewer degrades to NilObjectID, which can never match a stored id, so
// anonymous reads get false flags instead of errors.
func detailPipeline(id primitive.ObjectID, viewer *primitive.ObjectID) mongo.Pipeline {
	viewerID := primitive.NilObjectID
	if viewer != nil {
		viewerID = *viewer
	}

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: LikeCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "video"},
			{Key: "as", Value: "likes"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UserCollection},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$lookup", Value: bson.D{
					{Key: "from", Value: SubscriptionCollection},
					{Key: "localField", Value: "_id"},
					{Key: "foreignField", Value: "channel"},
					{Key: "as", Value: "subscribers"},
				}}},
				bson.D{{Key: "$addFields", Value: bson.D{
					{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
					{Key: "isSubscribed", Value: bson.D{{Key: "$cond", Value: bson.D{
						{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{viewerID, "$subscribers.subscriber"}}}},
						{Key: "then", Value: true},
						{Key: "else", Value: false},
					}}}},
				}}},
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "fullName", Value: 1},
					{Key: "avatar", Value: 1},
					{Key: "subscribersCount", Value: 1},
					{Key: "isSubscribed", Value: 1},
				}}},
			}},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$size", Value: "$likes"}}},
			{Key: "isLiked", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{viewerID, "$likes.likedBy"}}}},
				{Key: "then", Value: true},
				{Key: "else", Value: false},
			}}}},
		}}},
		// Keep the derived count, drop the raw likes array.
		bson.D{{Key: "$project", Value: bson.D{{Key: "likes", Value: 0}}}},
	}
}

func ownerSummaryLookup() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: UserCollection},
		{Key: "localField", Value: "owner"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "owner"},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "username", Value: 1},
				{Key: "fullName", Value: 1},
				{Key: "avatar", Value: 1},
			}}},
		}},
	}}}
}

// firstOwnerStage collapses the 1:1 owner join array to a single object. When
// the owner record is gone the field is simply absent.
func firstOwnerStage() bson.D {
	return bson.D{{Key: "$addFields", Value: bson.D{
		{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
	}}}
}
