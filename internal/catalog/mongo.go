package catalog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"studentsignal/pkg/models"
)

type MongoRepo struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

func NewMongoRepo(client *mongo.Client, database, collection string) *MongoRepo {
	return &MongoRepo{
		Client:     client,
		Collection: client.Database(database).Collection(collection),
	}
}

func (r *MongoRepo) Get(ctx context.Context, idOrSlug string) (*models.TransformedRecord, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "id", Value: idOrSlug}},
		bson.D{{Key: "slug", Value: idOrSlug}},
	}}}

	var rec models.TransformedRecord
	err := r.Collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 0}})).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "get %s", idOrSlug)
	}
	return &rec, nil
}

func (r *MongoRepo) Count(ctx context.Context, q ListQuery) (int, error) {
	n, err := r.Collection.CountDocuments(ctx, buildFilter(q))
	if err != nil {
		return 0, eris.Wrap(err, "count documents")
	}
	return int(n), nil
}

func (r *MongoRepo) List(ctx context.Context, q ListQuery) ([]models.TransformedRecord, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(q.offset())).
		SetLimit(int64(q.limit()))

	cur, err := r.Collection.Find(ctx, buildFilter(q), opts)
	if err != nil {
		return nil, eris.Wrap(err, "find")
	}
	defer cur.Close(ctx)

	out := make([]models.TransformedRecord, 0, q.limit())
	if err := cur.All(ctx, &out); err != nil {
		return nil, eris.Wrap(err, "decode")
	}
	return out, nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx, readpref.Primary())
}

// buildFilter mirrors SQLiteRepo's WHERE clause. Search text is matched
// literally, never as a user-supplied pattern.
func buildFilter(q ListQuery) bson.D {
	filter := bson.D{}
	if s := strings.TrimSpace(q.Search); s != "" {
		rx := bson.D{{Key: "$regex", Value: regexp.QuoteMeta(s)}, {Key: "$options", Value: "i"}}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: rx}},
			bson.D{{Key: "description", Value: rx}},
		}})
	}
	if s := strings.TrimSpace(q.Category); s != "" {
		filter = append(filter, bson.E{Key: "category", Value: s})
	}
	if s := strings.TrimSpace(q.Type); s != "" {
		filter = append(filter, bson.E{Key: "type", Value: s})
	}
	if s := strings.TrimSpace(q.Tag); s != "" {
		filter = append(filter, bson.E{Key: "tags", Value: strings.ToLower(s)})
	}
	if q.Renewable != nil {
		filter = append(filter, bson.E{Key: "renewable", Value: *q.Renewable})
	}
	return filter
}
