// Package mongo contains the default credential store backed by MongoDB.
package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"titlecheck/config"
	"titlecheck/internal/domain/lifecycle"
	"titlecheck/internal/errors"
)

const (
	emailIndexName    = "email_unique"
	usernameIndexName = "username_unique"
)

// ErrURIRequired is returned when the mongo driver is selected without a connection string.
var ErrURIRequired = errors.New("mongodb uri must be provided")

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the users collection.
// The connection is verified and the unique indexes are created when the application starts.
func New(params Params) (*mongoLib.Collection, error) {
	cfg := params.Config.MongoDB
	if cfg == nil || cfg.URI == "" {
		return nil, errors.WithStack(ErrURIRequired)
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(newCommandMonitor(params.Logger))
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongoLib.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", cfg.Database),
				slog.String("collection", cfg.Collection))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return collection, nil
}

// EnsureIndexes creates the unique indexes on username and email. Existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, collection *mongoLib.Collection) error {
	models := []mongoLib.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndexName),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(usernameIndexName),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	return nil
}
