package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterCollection = "counters"

// sequence allocates monotonically increasing int64 identifiers from a
// counters collection, one document per entity name. The atomic
// findOneAndUpdate keeps IDs unique under concurrent inserts.
type sequence struct {
	coll *mongo.Collection
}

func newSequence(db *mongo.Database) *sequence {
	return &sequence{coll: db.Collection(counterCollection)}
}

func (s *sequence) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Value int64 `bson:"value"`
	}
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return doc.Value, nil
}
