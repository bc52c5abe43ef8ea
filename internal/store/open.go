package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"studentsignal/internal/config"
	"studentsignal/pkg/database"
)

type Kind string

const (
	KindMongo  Kind = "mongodb"
	KindSQLite Kind = "sqlite"
)

var ErrUnsupportedURL = eris.New("unsupported store url")

const sqliteScheme = "sqlite://"

// Backend is an open connection to the catalog store.
type Backend struct {
	Kind     Kind
	Database string // mongo database name; unused for sqlite

	SQL   *sql.DB
	Mongo *mongo.Client
}

// ParseURL classifies a store URL. For sqlite it also returns the file
// path; "sqlite://" alone means the default path.
func ParseURL(url string) (Kind, string, error) {
	url = strings.TrimSpace(url)
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return KindMongo, "", nil
	case strings.HasPrefix(url, sqliteScheme):
		path := strings.TrimPrefix(url, sqliteScheme)
		if path == "" {
			path = config.SQLitePath()
		}
		return KindSQLite, path, nil
	default:
		return "", "", eris.Wrapf(ErrUnsupportedURL, "%q", redact(url))
	}
}

// Open connects to the store at url and checks it is reachable.
func Open(ctx context.Context, url, dbName string) (*Backend, error) {
	kind, path, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindSQLite:
		db, err := database.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "open sqlite")
		}
		return &Backend{Kind: KindSQLite, SQL: db}, nil

	default:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
		if err != nil {
			return nil, eris.Wrap(err, "connect mongodb")
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, eris.Wrapf(err, "ping mongodb at %s", redact(url))
		}
		return &Backend{Kind: KindMongo, Database: dbName, Mongo: client}, nil
	}
}

// Writer returns the destination writer for this backend.
func (b *Backend) Writer(log *zap.Logger) Writer {
	if b.Kind == KindSQLite {
		return NewSQLiteWriter(b.SQL, log)
	}
	return NewMongoWriter(b.Mongo, b.Database, log)
}

func (b *Backend) Close(ctx context.Context) error {
	switch {
	case b.SQL != nil:
		return b.SQL.Close()
	case b.Mongo != nil:
		return b.Mongo.Disconnect(ctx)
	}
	return nil
}

// redact hides credentials in a connection string before it is logged.
func redact(url string) string {
	scheme := strings.Index(url, "://")
	at := strings.LastIndex(url, "@")
	if scheme < 0 || at < scheme {
		return url
	}
	return url[:scheme+3] + "***" + url[at:]
}
