package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/forumroles/internal/forum/domain"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	rolesCollection    = "forum_roles"
	connectTimeout     = 10 * time.Second
	pingTimeout        = 2 * time.Second
	createIndexTimeout = 30 * time.Second
)

// Store is a MongoDB backed store.Store. Transactions need a replica set.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	roles  *mongo.Collection
}

// NewStore connects to uri and checks the primary is reachable.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(database),
	}
	s.roles = s.db.Collection(rolesCollection)

	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

// ApplyMigrations creates the collection indexes. Safe to run repeatedly.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), createIndexTimeout)
	defer cancel()

	if _, err := s.roles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "course_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "course_key", Value: 1}},
		},
	}); err != nil {
		return fmt.Errorf("add indexes to %s collection: %w", rolesCollection, err)
	}
	return nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// Tx starts a session with an open transaction.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	sess, err := s.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if err := sess.StartTransaction(); err != nil {
		sess.EndSession(ctx)
		return nil, fmt.Errorf("start transaction: %w", err)
	}
	return &txStore{parent: s, sess: sess, ctx: ctx}, nil
}

// WithTx runs fn in a transaction. The driver retries fn on transient
// transaction errors, so fn must be safe to run more than once.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(&txStore{parent: s, sess: sess, ctx: sc, managed: true})
	})
	return err
}

func (s *Store) Roles() store.Roles { return &rolesRepo{coll: s.roles} }

// courseKey is the case-folded course id used for lookups.
func courseKey(courseID string) string {
	return strings.ToLower(courseID)
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

type roleDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	CourseID    string    `bson:"course_id"`
	CourseKey   string    `bson:"course_key"`
	Permissions []string  `bson:"permissions"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d roleDoc) toDomain() domain.Role {
	return domain.Role{
		ID:          d.ID,
		Name:        d.Name,
		CourseID:    d.CourseID,
		Permissions: sortedPermissions(d.Permissions),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
