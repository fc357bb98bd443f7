package mongodb

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"go.mongodb.org/mongo-driver/mongo"
)

var errNestedTx = errors.New("mongodb: nested transactions are not supported")

type txStore struct {
	parent *Store
	sess   mongo.Session
	ctx    context.Context

	// managed is set when WithTransaction owns commit, abort and the session.
	managed bool
}

func (t *txStore) Commit() error {
	if t.managed {
		return nil
	}
	defer t.sess.EndSession(t.ctx)
	return t.sess.CommitTransaction(t.ctx)
}

func (t *txStore) Rollback() error {
	if t.managed {
		return nil
	}
	defer t.sess.EndSession(t.ctx)
	return t.sess.AbortTransaction(t.ctx)
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func (t *txStore) Roles() store.Roles {
	return &rolesRepo{coll: t.parent.roles, sess: t.sess}
}

func (t *txStore) ApplyMigrations() error { return nil }
