package sqlite

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestFindOrCreateRole(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, ok, err := s.Roles().FindOrCreateRole(ctx, "Moderator", "course-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "course-1", created.CourseID)

	again, ok, err := s.Roles().FindOrCreateRole(ctx, "Moderator", "course-1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, created.ID, again.ID)

	other, ok, err := s.Roles().FindOrCreateRole(ctx, "Moderator", "course-2")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEqual(t, created.ID, other.ID)
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

func TestGetRoleNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Roles().GetRole(ctx, "Administrator", "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Roles().GetRoleByID(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Roles().DeleteRole(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"), store.ErrNotFound)
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
	require.NoError(t, roles.AddPermission(ctx, student.ID, "vote")) // idempotent
	require.NoError(t, roles.AddPermission(ctx, moderator.ID, "edit_content"))

	require.NoError(t, roles.InheritPermissions(ctx, moderator.ID, student.ID))
	require.NoError(t, roles.InheritPermissions(ctx, moderator.ID, student.ID))

	perms, err := roles.ListPermissions(ctx, moderator.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"edit_content", "vote"}, perms)

	has, err := roles.HasPermission(ctx, student.ID, "edit_content")
	require.NoError(t, err)
	require.False(t, has)

	// Inheritance is a snapshot, not a live link
	require.NoError(t, roles.AddPermission(ctx, student.ID, "unvote"))
	has, err = roles.HasPermission(ctx, moderator.ID, "unvote")
	require.NoError(t, err)
	require.False(t, has)
}

func TestDeleteRoleDropsGrants(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	roles := s.Roles()

	role, _, err := roles.FindOrCreateRole(ctx, "Student", "course-1")
	require.NoError(t, err)
	require.NoError(t, roles.AddPermission(ctx, role.ID, "vote"))

	require.NoError(t, roles.DeleteRole(ctx, role.ID))

	perms, err := roles.ListPermissions(ctx, role.ID)
	require.NoError(t, err)
	require.Empty(t, perms)

	_, err = roles.GetRole(ctx, "Student", "course-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListRolesByCourse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	roles := s.Roles()

	for _, name := range []string{"Student", "Administrator"} {
		r, _, err := roles.FindOrCreateRole(ctx, name, "course-1")
		require.NoError(t, err)
		require.NoError(t, roles.AddPermission(ctx, r.ID, "vote"))
	}
	_, _, err := roles.FindOrCreateRole(ctx, "Student", "course-2")
	require.NoError(t, err)

	list, err := roles.ListRolesByCourse(ctx, "course-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Administrator", list[0].Name)
	require.Equal(t, "Student", list[1].Name)
	require.Equal(t, []string{"vote"}, list[1].Permissions)
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
