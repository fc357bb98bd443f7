package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/forumroles/internal/forum/domain"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"github.com/aussiebroadwan/forumroles/pkg/slogx"
)

var ErrInvalidCourseID = errors.New("invalid course id")

// RoleSeeder provisions, removes and verifies the forum roles of a course.
type RoleSeeder struct {
	Store store.Store
}

// SeedPermissionsRoles creates (or re-keys) the four forum roles of a course
// and grants their permission sets. Moderator inherits Student, Community TA
// and Administrator inherit Moderator. The whole seed runs in one transaction.
func (s *RoleSeeder) SeedPermissionsRoles(ctx context.Context, courseID string) error {
	if strings.TrimSpace(courseID) == "" {
		return ErrInvalidCourseID
	}
	l := slogx.FromContext(ctx).With(slog.String("course_id", courseID))

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		roles := tx.Roles()

		administrator, err := upsertRole(ctx, roles, courseID, domain.RoleAdministrator)
		if err != nil {
			return err
		}
		moderator, err := upsertRole(ctx, roles, courseID, domain.RoleModerator)
		if err != nil {
			return err
		}
		communityTA, err := upsertRole(ctx, roles, courseID, domain.RoleCommunityTA)
		if err != nil {
			return err
		}
		student, err := upsertRole(ctx, roles, courseID, domain.RoleStudent)
		if err != nil {
			return err
		}

		grants := []struct {
			role  domain.Role
			perms []string
		}{
			{student, domain.StudentPermissions()},
			{moderator, domain.ModeratorPermissions()},
			{administrator, domain.AdministratorPermissions()},
		}
		for _, g := range grants {
			for _, perm := range g.perms {
				if err := roles.AddPermission(ctx, g.role.ID, perm); err != nil {
					return fmt.Errorf("grant %q to %s: %w", perm, g.role.Name, err)
				}
			}
		}

		// Order matters: each copy sees the source's set as it is right now.
		// Community TA is a Moderator with different styling.
		inherits := []struct{ role, source domain.Role }{
			{moderator, student},
			{communityTA, moderator},
			{administrator, moderator},
		}
		for _, in := range inherits {
			if err := roles.InheritPermissions(ctx, in.role.ID, in.source.ID); err != nil {
				return fmt.Errorf("%s inherit from %s: %w", in.role.Name, in.source.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		l.Error("failed to seed forum roles", slog.Any("error", err))
		return fmt.Errorf("seed forum roles: %w", err)
	}

	l.Info("seeded forum roles")
	return nil
}

// upsertRole finds or creates the role and, when an existing record carries a
// differently cased course id, rewrites it to the requested one.
func upsertRole(ctx context.Context, roles store.Roles, courseID, name string) (domain.Role, error) {
	role, created, err := roles.FindOrCreateRole(ctx, name, courseID)
	if err != nil {
		return domain.Role{}, fmt.Errorf("upsert role %s: %w", name, err)
	}

	if !created && role.CourseID != courseID {
		slogx.FromContext(ctx).Info("re-keying forum role",
			slog.String("role", name),
			slog.String("from_course_id", role.CourseID),
			slog.String("to_course_id", courseID),
		)
		role.CourseID = courseID
		if err := roles.SaveRole(ctx, role); err != nil {
			return domain.Role{}, fmt.Errorf("save role %s: %w", name, err)
		}
	}
	return role, nil
}

// UnseedResult names the forum roles an unseed removed and the ones it left
// in place because they are filed under a differently cased course id.
type UnseedResult struct {
	Removed []string
	Skipped []string
}

// UnseedPermissionsRoles deletes the forum roles of a course. Roles that do
// not exist are skipped, so calling it twice is fine.
func (s *RoleSeeder) UnseedPermissionsRoles(ctx context.Context, courseID string) (UnseedResult, error) {
	res := UnseedResult{Removed: []string{}, Skipped: []string{}}
	if strings.TrimSpace(courseID) == "" {
		return res, ErrInvalidCourseID
	}
	l := slogx.FromContext(ctx).With(slog.String("course_id", courseID))

	roles := s.Store.Roles()
	for _, name := range domain.RoleNames {
		role, err := roles.GetRole(ctx, name, courseID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			l.Error("failed to look up forum role", slog.String("role", name), slog.Any("error", err))
			return res, fmt.Errorf("unseed forum roles: %w", err)
		}

		// Lookups ignore case; only delete the role filed under this exact id.
		if role.CourseID != courseID {
			l.Warn("skipping forum role filed under another course id",
				slog.String("role", name),
				slog.String("stored_course_id", role.CourseID),
			)
			res.Skipped = append(res.Skipped, name)
			continue
		}

		err = roles.DeleteRole(ctx, role.ID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			l.Error("failed to remove forum role", slog.String("role", name), slog.Any("error", err))
			return res, fmt.Errorf("unseed forum roles: %w", err)
		}
		res.Removed = append(res.Removed, name)
	}

	l.Info("unseeded forum roles",
		slog.Int("removed", len(res.Removed)),
		slog.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// ArePermissionsRolesSeeded reports whether the Administrator, Moderator and
// Student roles of a course exist and hold their full permission sets.
// Any store failure reads as "not seeded". Community TA is not checked.
func (s *RoleSeeder) ArePermissionsRolesSeeded(ctx context.Context, courseID string) bool {
	l := slogx.FromContext(ctx).With(slog.String("course_id", courseID))
	roles := s.Store.Roles()

	administrator, err := roles.GetRole(ctx, domain.RoleAdministrator, courseID)
	if err != nil {
		l.Debug("forum roles not seeded", slog.String("role", domain.RoleAdministrator), slog.Any("error", err))
		return false
	}
	moderator, err := roles.GetRole(ctx, domain.RoleModerator, courseID)
	if err != nil {
		l.Debug("forum roles not seeded", slog.String("role", domain.RoleModerator), slog.Any("error", err))
		return false
	}
	student, err := roles.GetRole(ctx, domain.RoleStudent, courseID)
	if err != nil {
		l.Debug("forum roles not seeded", slog.String("role", domain.RoleStudent), slog.Any("error", err))
		return false
	}

	studentPerms := domain.StudentPermissions()
	moderatorPerms := append(domain.ModeratorPermissions(), studentPerms...)
	administratorPerms := append(domain.AdministratorPermissions(), moderatorPerms...)

	checks := []struct {
		role  domain.Role
		perms []string
	}{
		{student, studentPerms},
		{moderator, moderatorPerms},
		{administrator, administratorPerms},
	}
	for _, c := range checks {
		for _, perm := range c.perms {
			has, err := roles.HasPermission(ctx, c.role.ID, perm)
			if err != nil || !has {
				l.Debug("forum role missing permission",
					slog.String("role", c.role.Name),
					slog.String("permission", perm),
					slog.Any("error", err),
				)
				return false
			}
		}
	}
	return true
}
