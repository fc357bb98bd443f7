package sqlite

import (
	"context"

	"github.com/aussiebroadwan/forumroles/internal/forum/domain"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"github.com/aussiebroadwan/forumroles/internal/forum/store/drivers/sqlite/gen"
	"github.com/aussiebroadwan/forumroles/pkg/idx"
)

type rolesRepo struct {
	q *gen.Queries
}

func (r *rolesRepo) FindOrCreateRole(ctx context.Context, name, courseID string) (domain.Role, bool, error) {
	inserted, err := r.q.CreateRoleIfAbsent(ctx, gen.CreateRoleIfAbsentParams{
		ID:       idx.New().String(),
		Name:     name,
		CourseID: courseID,
	})
	if err != nil {
		return domain.Role{}, false, err
	}

	role, err := r.GetRole(ctx, name, courseID)
	if err != nil {
		return domain.Role{}, false, err
	}
	return role, inserted == 1, nil
}

func (r *rolesRepo) GetRole(ctx context.Context, name, courseID string) (domain.Role, error) {
	row, err := r.q.GetRoleByNameAndCourse(ctx, gen.GetRoleByNameAndCourseParams{
		Name:     name,
		CourseID: courseID,
	})
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row, err := r.q.GetRoleByID(ctx, id)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) ListRolesByCourse(ctx context.Context, courseID string) ([]domain.Role, error) {
	rows, err := r.q.ListRolesByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, len(rows))
	for i, row := range rows {
		roles[i] = mapRole(row)
		perms, err := r.ListPermissions(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		roles[i].Permissions = perms
	}
	return roles, nil
}

func (r *rolesRepo) SaveRole(ctx context.Context, role domain.Role) error {
	n, err := r.q.UpdateRole(ctx, gen.UpdateRoleParams{
		Name:     role.Name,
		CourseID: role.CourseID,
		ID:       role.ID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rolesRepo) DeleteRole(ctx context.Context, roleID string) error {
	// Explicit so grants go even on connections without foreign_keys enabled
	if err := r.q.DeleteRolePermissions(ctx, roleID); err != nil {
		return err
	}

	n, err := r.q.DeleteRole(ctx, roleID)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rolesRepo) AddPermission(ctx context.Context, roleID, permission string) error {
	if err := r.q.CreatePermission(ctx, permission); err != nil {
		return err
	}
	return r.q.GrantPermission(ctx, gen.GrantPermissionParams{
		RoleID:         roleID,
		PermissionName: permission,
	})
}

func (r *rolesRepo) HasPermission(ctx context.Context, roleID, permission string) (bool, error) {
	count, err := r.q.CountRolePermission(ctx, gen.CountRolePermissionParams{
		RoleID:         roleID,
		PermissionName: permission,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *rolesRepo) ListPermissions(ctx context.Context, roleID string) ([]string, error) {
	perms, err := r.q.ListRolePermissions(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if perms == nil {
		perms = []string{}
	}
	return perms, nil
}

func (r *rolesRepo) InheritPermissions(ctx context.Context, roleID, sourceRoleID string) error {
	return r.q.CopyRolePermissions(ctx, gen.CopyRolePermissionsParams{
		RoleID:       roleID,
		SourceRoleID: sourceRoleID,
	})
}
