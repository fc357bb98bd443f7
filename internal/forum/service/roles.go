package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/forumroles/internal/forum/domain"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
)

var ErrUnknownRole = errors.New("unknown forum role")

type RolesService struct {
	Store store.Store
}

// ListCourseRoles returns the forum roles of a course with their permissions.
func (s *RolesService) ListCourseRoles(ctx context.Context, courseID string) ([]domain.Role, error) {
	return s.Store.Roles().ListRolesByCourse(ctx, courseID)
}

// RoleHasPermission reports whether the named role of a course holds a
// permission. Returns store.ErrNotFound when the course has no such role.
func (s *RolesService) RoleHasPermission(ctx context.Context, courseID, roleName, permission string) (bool, error) {
	if !domain.IsRoleName(roleName) {
		return false, ErrUnknownRole
	}

	role, err := s.Store.Roles().GetRole(ctx, roleName, courseID)
	if err != nil {
		return false, err
	}
	return s.Store.Roles().HasPermission(ctx, role.ID, permission)
}
