package domain

import (
	"slices"
	"time"
)

// Forum role names. A course holds at most one role of each name.
const (
	RoleAdministrator = "Administrator"
	RoleModerator     = "Moderator"
	RoleCommunityTA   = "Community TA"
	RoleStudent       = "Student"
)

// RoleNames lists every forum role in seeding order.
var RoleNames = []string{
	RoleAdministrator,
	RoleModerator,
	RoleCommunityTA,
	RoleStudent,
}

type Role struct {
	ID          string
	Name        string
	CourseID    string
	Permissions []string // Only populated by reads that load permissions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRoleName reports whether name is one of the forum role names.
func IsRoleName(name string) bool {
	return slices.Contains(RoleNames, name)
}
