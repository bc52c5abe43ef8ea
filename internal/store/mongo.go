package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"studentsignal/pkg/models"
)

// MongoWriter rebuilds a catalog collection by filling a uniquely named
// staging collection and renaming it over the destination with
// dropTarget, which replaces the old generation in a single step.
type MongoWriter struct {
	Client   *mongo.Client
	Database string
	Log      *zap.Logger

	now func() time.Time
}

func NewMongoWriter(client *mongo.Client, database string, log *zap.Logger) *MongoWriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &MongoWriter{Client: client, Database: database, Log: log, now: time.Now}
}

func (w *MongoWriter) Replace(ctx context.Context, name string, records []models.TransformedRecord) (res Result, err error) {
	res.Collection = name
	tr := newTracker(w.Log.With(zap.String("collection", name), zap.String("backend", "mongodb")))
	defer func() { res.States = tr.states() }()

	if err := validateCollectionName(name); err != nil {
		return res, tr.fail(err)
	}

	tr.to(StateChecking)
	db := w.Client.Database(w.Database)
	names, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return res, tr.fail(eris.Wrap(err, "list collections"))
	}
	res.ReplacedExisting = len(names) > 0

	staging := stagingName(name, w.now())
	coll := db.Collection(staging)
	// the staging collection is garbage once we fail past this point
	discard := func() {
		if dropErr := coll.Drop(context.WithoutCancel(ctx)); dropErr != nil {
			w.Log.Warn("store: could not drop staging collection",
				zap.String("staging", staging), zap.Error(dropErr))
		}
	}

	tr.to(StateInserting)
	inserted := 0
	if len(records) == 0 {
		if err := db.CreateCollection(ctx, staging); err != nil {
			return res, tr.fail(eris.Wrap(err, "create empty staging collection"))
		}
	} else {
		docs := make([]interface{}, len(records))
		for i := range records {
			docs[i] = records[i]
		}
		ir, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
		if err != nil {
			discard()
			return res, tr.fail(eris.Wrap(err, "insert into staging"))
		}
		inserted = len(ir.InsertedIDs)
	}

	tr.to(StateVerifying)
	if err := verifyCount(len(records), inserted); err != nil {
		discard()
		return res, tr.fail(err)
	}
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		discard()
		return res, tr.fail(eris.Wrap(err, "count staging documents"))
	}
	if err := verifyCount(len(records), int(n)); err != nil {
		discard()
		return res, tr.fail(err)
	}
	if _, err := coll.Indexes().CreateMany(ctx, catalogIndexes()); err != nil {
		discard()
		return res, tr.fail(eris.Wrap(err, "create indexes"))
	}

	tr.to(StateSwapping)
	cmd := bson.D{
		{Key: "renameCollection", Value: w.Database + "." + staging},
		{Key: "to", Value: w.Database + "." + name},
		{Key: "dropTarget", Value: true},
	}
	if err := w.Client.Database("admin").RunCommand(ctx, cmd).Err(); err != nil {
		discard()
		return res, tr.fail(eris.Wrap(err, "swap staging into place"))
	}

	res.Inserted = inserted
	tr.to(StateDone)
	return res, nil
}

func catalogIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
}

func stagingName(name string, at time.Time) string {
	return fmt.Sprintf("%s_staging_%d", name, at.UnixNano())
}

func validateCollectionName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return eris.Wrap(ErrInvalidName, "empty")
	case strings.ContainsAny(name, "$\x00"):
		return eris.Wrapf(ErrInvalidName, "%q contains $ or NUL", name)
	case strings.HasPrefix(name, "system."):
		return eris.Wrapf(ErrInvalidName, "%q is reserved", name)
	}
	return nil
}
