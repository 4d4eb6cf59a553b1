package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	VideoCollection        = "videos"
	UserCollection         = "users"
	LikeCollection         = "likes"
	SubscriptionCollection = "subscriptions"
)

// TextIndexName is the full-text index over title and description; listing
// with a query ranks by its textScore.
const TextIndexName = "video_text_search"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initVideoCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initVideoCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": VideoCollection})
	if err != nil {
		return err
	}

	if len(collections) == 0 {
		collOpts := options.CreateCollection().SetValidator(bson.M{
			"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"videoFile", "thumbnail", "title", "description", "owner", "isPublished"},
				"properties": bson.M{
					"videoFile":   bson.M{"bsonType": "string", "minLength": 1},
					"thumbnail":   bson.M{"bsonType": "string", "minLength": 1},
					"title":       bson.M{"bsonType": "string", "minLength": 1},
					"description": bson.M{"bsonType": "string", "minLength": 1},
					"duration":    bson.M{"bsonType": []string{"double", "int", "long"}},
					"views": bson.M{
						"bsonType": []string{"int", "long"},
						"minimum":  0,
					},
					"isPublished": bson.M{"bsonType": "bool"},
					"owner":       bson.M{"bsonType": "objectId"},
					"createdAt":   bson.M{"bsonType": "date"},
					"updatedAt":   bson.M{"bsonType": "date"},
				},
			},
		})

		if err := db.Client.Database(db.DBName).CreateCollection(ctx, VideoCollection, collOpts); err != nil {
			return err
		}
	}

	coll := db.Client.Database(db.DBName).Collection(VideoCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().SetName(TextIndexName),
		},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return err
}

func (db *Database) Stop() error {
	return db.Client.Disconnect(context.Background())
}

func (db *Database) videos() *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(VideoCollection)
}
