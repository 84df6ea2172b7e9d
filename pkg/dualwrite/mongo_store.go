package dualwrite

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) SecondaryStore {
	return &mongoStore{db: db}
}

// Insert mints an ObjectId, stores the document under it, and returns the
// hex id. The hex id becomes the primary key in the relational store too,
// so both stores share one identity for the record.
func (s *mongoStore) Insert(ctx context.Context, kind Kind, doc map[string]interface{}) (string, error) {
	oid := primitive.NewObjectID()
	now := time.Now().UTC()

	insert := bson.M{"_id": oid, "createdAt": now, "updatedAt": now, "deletedAt": nil}
	for k, v := range doc {
		insert[k] = v
	}

	if _, err := s.db.Collection(string(kind)).InsertOne(ctx, insert); err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (s *mongoStore) Update(ctx context.Context, kind Kind, id string, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	_, err := s.db.Collection(string(kind)).UpdateOne(ctx, s.idFilter(id), bson.M{"$set": set})
	return err
}

func (s *mongoStore) SoftDelete(ctx context.Context, kind Kind, id string) error {
	now := time.Now().UTC()
	_, err := s.db.Collection(string(kind)).UpdateOne(ctx, s.idFilter(id), bson.M{
		"$set": bson.M{"deletedAt": now, "updatedAt": now},
	})
	return err
}

func (s *mongoStore) Restore(ctx context.Context, kind Kind, id string) error {
	_, err := s.db.Collection(string(kind)).UpdateOne(ctx, s.idFilter(id), bson.M{
		"$set": bson.M{"deletedAt": nil, "updatedAt": time.Now().UTC()},
	})
	return err
}

// idFilter matches by ObjectId when the id parses as one, otherwise by the
// raw string. Ids minted locally after a secondary failure are plain uuids.
func (s *mongoStore) idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}
