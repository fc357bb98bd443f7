package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/forumroles/internal/forum/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongodb)
// implement this. Repositories hang off it as methods so a Tx-scoped Store can
// hand out the same repositories bound to the transaction.
type Store interface {
	Roles() Roles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Roles stores forum roles and their permission sets. Course ids are matched
// case-insensitively; the stored CourseID keeps whatever casing was last saved.
type Roles interface {
	// FindOrCreateRole returns the role for (name, courseID), creating it when
	// absent. The bool reports whether the role was created by this call.
	FindOrCreateRole(ctx context.Context, name, courseID string) (domain.Role, bool, error)

	// GetRole fetches a role by name and course. Returns ErrNotFound when absent.
	GetRole(ctx context.Context, name, courseID string) (domain.Role, error)

	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// ListRolesByCourse returns every role of a course with permissions loaded,
	// ordered by name.
	ListRolesByCourse(ctx context.Context, courseID string) ([]domain.Role, error)

	// SaveRole persists the mutable fields of a role (name, course id) and bumps updated_at.
	SaveRole(ctx context.Context, r domain.Role) error

	// DeleteRole removes a role along with its permission grants.
	DeleteRole(ctx context.Context, roleID string) error

	// AddPermission grants a permission to a role. Granting twice is a no-op.
	AddPermission(ctx context.Context, roleID, permission string) error

	// HasPermission reports whether the role holds the permission.
	HasPermission(ctx context.Context, roleID, permission string) (bool, error)

	// ListPermissions returns the role's permissions sorted by name.
	ListPermissions(ctx context.Context, roleID string) ([]string, error)

	// InheritPermissions copies the current permission set of sourceRoleID
	// onto roleID. It is a one-shot union, later changes to the source are
	// not reflected.
	InheritPermissions(ctx context.Context, roleID, sourceRoleID string) error
}
