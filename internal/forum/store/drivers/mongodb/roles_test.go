package mongodb

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/forumroles/internal/forum/domain"
	"github.com/aussiebroadwan/forumroles/internal/forum/service"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"github.com/aussiebroadwan/forumroles/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway database on the test replica set.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	uri := testMongoURI(t)
	ctx := context.Background()
	s, err := NewStore(ctx, uri, "forumroles_test_"+idx.New().String())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.db.Drop(context.Background())
		_ = s.Close()
	})

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestFindOrCreateRole(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, ok, err := s.Roles().FindOrCreateRole(ctx, "Moderator", "course-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "course-1", created.CourseID)
	require.Empty(t, created.Permissions)

	again, ok, err := s.Roles().FindOrCreateRole(ctx, "Moderator", "course-1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, created.ID, again.ID)
}

func TestCourseMatchingIgnoresCase(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	legacy, _, err := s.Roles().FindOrCreateRole(ctx, "Student", "edX/Demo/2014")
	require.NoError(t, err)

	found, created, err := s.Roles().FindOrCreateRole(ctx, "Student", "edx/demo/2014")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, legacy.ID, found.ID)
	require.Equal(t, "edX/Demo/2014", found.CourseID)

	found.CourseID = "edx/demo/2014"
	require.NoError(t, s.Roles().SaveRole(ctx, found))

	reloaded, err := s.Roles().GetRoleByID(ctx, legacy.ID)
	require.NoError(t, err)
	require.Equal(t, "edx/demo/2014", reloaded.CourseID)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Roles().GetRole(ctx, "Administrator", "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Roles().DeleteRole(ctx, idx.New().String()), store.ErrNotFound)

	perms, err := s.Roles().ListPermissions(ctx, idx.New().String())
	require.NoError(t, err)
	require.Empty(t, perms)
}

func TestPermissionsAndInheritance(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	roles := s.Roles()

	student, _, err := roles.FindOrCreateRole(ctx, "Student", "course-1")
	require.NoError(t, err)
	moderator, _, err := roles.FindOrCreateRole(ctx, "Moderator", "course-1")
	require.NoError(t, err)

	require.NoError(t, roles.AddPermission(ctx, student.ID, "vote"))
	require.NoError(t, roles.AddPermission(ctx, student.ID, "vote"))
	require.NoError(t, roles.AddPermission(ctx, moderator.ID, "edit_content"))
	require.NoError(t, roles.InheritPermissions(ctx, moderator.ID, student.ID))

	perms, err := roles.ListPermissions(ctx, moderator.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"edit_content", "vote"}, perms)

	require.NoError(t, roles.AddPermission(ctx, student.ID, "unvote"))
	has, err := roles.HasPermission(ctx, moderator.ID, "unvote")
	require.NoError(t, err)
	require.False(t, has)

	list, err := roles.ListRolesByCourse(ctx, "COURSE-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Moderator", list[0].Name)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, _, err := tx.Roles().FindOrCreateRole(ctx, "Student", "course-1")
		require.NoError(t, err)
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Roles().GetRole(ctx, "Student", "course-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var id string
	err := s.WithTx(ctx, func(tx store.Tx) error {
		role, _, err := tx.Roles().FindOrCreateRole(ctx, "Student", "course-1")
		if err != nil {
			return err
		}
		id = role.ID
		return tx.Roles().AddPermission(ctx, role.ID, "vote")
	})
	require.NoError(t, err)

	has, err := s.Roles().HasPermission(ctx, id, "vote")
	require.NoError(t, err)
	require.True(t, has)
}

func TestTxCommitAndRollback(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tx, err := s.Tx(ctx)
	require.NoError(t, err)
	_, _, err = tx.Roles().FindOrCreateRole(ctx, "Moderator", "course-1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	_, err = s.Roles().GetRole(ctx, "Moderator", "course-1")
	require.NoError(t, err)

	tx, err = s.Tx(ctx)
	require.NoError(t, err)
	_, _, err = tx.Roles().FindOrCreateRole(ctx, "Student", "course-1")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	_, err = s.Roles().GetRole(ctx, "Student", "course-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestNestedTxRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		return err
	})
	require.ErrorIs(t, err, errNestedTx)
}

func TestConcurrentFindOrCreateRole(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	const workers = 8
	var (
		wg      sync.WaitGroup
		ids     [workers]string
		created [workers]bool
		errs    [workers]error
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			role, ok, err := s.Roles().FindOrCreateRole(ctx, "Student", "course-1")
			ids[i], created[i], errs[i] = role.ID, ok, err
		}(i)
	}
	wg.Wait()

	createdCount := 0
	for i := range workers {
		require.NoError(t, errs[i])
		require.Equal(t, ids[0], ids[i])
		if created[i] {
			createdCount++
		}
	}
	require.Equal(t, 1, createdCount)
}

func TestSeedAgainstMongo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seeder := &service.RoleSeeder{Store: s}

	require.NoError(t, seeder.SeedPermissionsRoles(ctx, "edX/Demo/2014"))
	require.NoError(t, seeder.SeedPermissionsRoles(ctx, "edX/Demo/2014"))
	require.True(t, seeder.ArePermissionsRolesSeeded(ctx, "edX/Demo/2014"))

	admin, err := s.Roles().GetRole(ctx, domain.RoleAdministrator, "edX/Demo/2014")
	require.NoError(t, err)
	perms, err := s.Roles().ListPermissions(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, perms, 18)

	res, err := seeder.UnseedPermissionsRoles(ctx, "edX/Demo/2014")
	require.NoError(t, err)
	require.Len(t, res.Removed, 4)
	require.False(t, seeder.ArePermissionsRolesSeeded(ctx, "edX/Demo/2014"))
}
