package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/forumroles/internal/forum/service"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"github.com/aussiebroadwan/forumroles/pkg/forumsdk"
	"github.com/aussiebroadwan/forumroles/pkg/httpx"
	"github.com/aussiebroadwan/forumroles/pkg/slogx"
)

type RolesHandler struct {
	Seeder *service.RoleSeeder
	Roles  *service.RolesService
}

// HandleSeed seeds the forum roles of a course
//
//	@Summary		Seed forum roles
//	@Description	Creates the Administrator, Moderator, Community TA and Student roles of a course and grants their permissions.
//	@Description	Idempotent. Roles stored under a differently cased course id are re-keyed. Requires forum:admin scope.
//	@Tags			Roles
//	@Produce		json
//	@Param			course_id	path		string								true	"Course id (path escaped)"
//	@Success		200			{object}	forumsdk.SeedStatusResponse			"Course seeded"
//	@Failure		400			{object}	forumsdk.ErrorResponse				"Blank course id"
//	@Failure		401			{object}	forumsdk.ErrorResponse				"Unauthorized - missing or invalid token"
//	@Failure		403			{object}	forumsdk.ErrorResponse				"Forbidden - missing required scope"
//	@Failure		500			{object}	forumsdk.ErrorResponse				"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/courses/{course_id}/forum/roles [put].
func (h *RolesHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courseID := r.PathValue("course_id")

	if err := h.Seeder.SeedPermissionsRoles(ctx, courseID); err != nil {
		writeServiceError(w, r, err, "Failed to seed forum roles")
		return
	}

	slogx.FromContext(ctx).Info("forum roles seeded",
		"course_id", courseID,
		"by", httpx.UserIDFromContext(ctx),
	)
	httpx.WriteJSON(w, http.StatusOK, forumsdk.SeedStatusResponse{
		CourseID: courseID,
		Seeded:   true,
	})
}

// HandleUnseed removes the forum roles of a course
//
//	@Summary		Unseed forum roles
//	@Description	Deletes the four forum roles of a course. Missing roles are ignored. Roles filed under a
//	@Description	differently cased course id are left in place and listed as skipped. Requires forum:admin scope.
//	@Tags			Roles
//	@Produce		json
//	@Param			course_id	path		string					true	"Course id (path escaped)"
//	@Success		200			{object}	forumsdk.UnseedResponse	"Removed and skipped roles"
//	@Failure		400			{object}	forumsdk.ErrorResponse	"Blank course id"
//	@Failure		401			{object}	forumsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403			{object}	forumsdk.ErrorResponse	"Forbidden - missing required scope"
//	@Failure		500			{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/courses/{course_id}/forum/roles [delete].
func (h *RolesHandler) HandleUnseed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courseID := r.PathValue("course_id")

	res, err := h.Seeder.UnseedPermissionsRoles(ctx, courseID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to unseed forum roles")
		return
	}

	slogx.FromContext(ctx).Info("forum roles unseeded",
		"course_id", courseID,
		"removed", len(res.Removed),
		"skipped", len(res.Skipped),
		"by", httpx.UserIDFromContext(ctx),
	)
	httpx.WriteJSON(w, http.StatusOK, forumsdk.UnseedResponse{
		CourseID: courseID,
		Removed:  res.Removed,
		Skipped:  res.Skipped,
	})
}

// HandleSeeded reports whether a course is seeded
//
//	@Summary		Check forum roles
//	@Description	Reports whether the Administrator, Moderator and Student roles of a course exist with their full permission sets.
//	@Description	Store failures read as not seeded. Requires forum:read or forum:admin scope.
//	@Tags			Roles
//	@Produce		json
//	@Param			course_id	path		string						true	"Course id (path escaped)"
//	@Success		200			{object}	forumsdk.SeedStatusResponse	"Seed status"
//	@Failure		401			{object}	forumsdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403			{object}	forumsdk.ErrorResponse		"Forbidden - missing required scope"
//	@Security		BearerAuth
//	@Router			/v1/courses/{course_id}/forum/roles/seeded [get].
func (h *RolesHandler) HandleSeeded(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("course_id")

	httpx.WriteJSON(w, http.StatusOK, forumsdk.SeedStatusResponse{
		CourseID: courseID,
		Seeded:   h.Seeder.ArePermissionsRolesSeeded(r.Context(), courseID),
	})
}

// HandleList lists the forum roles of a course
//
//	@Summary		List forum roles
//	@Description	Returns the forum roles of a course with their permissions. Requires forum:read or forum:admin scope.
//	@Tags			Roles
//	@Produce		json
//	@Param			course_id	path		string						true	"Course id (path escaped)"
//	@Success		200			{object}	forumsdk.ListRolesResponse	"Roles of the course"
//	@Failure		401			{object}	forumsdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403			{object}	forumsdk.ErrorResponse		"Forbidden - missing required scope"
//	@Failure		500			{object}	forumsdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/courses/{course_id}/forum/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("course_id")

	roles, err := h.Roles.ListCourseRoles(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to list forum roles")
		return
	}

	response := forumsdk.ListRolesResponse{
		CourseID: courseID,
		Roles:    make([]forumsdk.RoleInfo, len(roles)),
	}
	for i, role := range roles {
		response.Roles[i] = forumsdk.RoleInfo{
			ID:          role.ID,
			Name:        role.Name,
			CourseID:    role.CourseID,
			Permissions: role.Permissions,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandlePermission checks a single permission of a role
//
//	@Summary		Check role permission
//	@Description	Reports whether the named forum role of a course holds a permission. Requires forum:read or forum:admin scope.
//	@Tags			Roles
//	@Produce		json
//	@Param			course_id	path		string								true	"Course id (path escaped)"
//	@Param			role		path		string								true	"Role name, e.g. Moderator"
//	@Param			permission	path		string								true	"Permission, e.g. edit_content"
//	@Success		200			{object}	forumsdk.PermissionCheckResponse	"Permission check"
//	@Failure		401			{object}	forumsdk.ErrorResponse				"Unauthorized - missing or invalid token"
//	@Failure		403			{object}	forumsdk.ErrorResponse				"Forbidden - missing required scope"
//	@Failure		404			{object}	forumsdk.ErrorResponse				"Unknown role, or role not seeded for the course"
//	@Failure		500			{object}	forumsdk.ErrorResponse				"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/courses/{course_id}/forum/roles/{role}/permissions/{permission} [get].
func (h *RolesHandler) HandlePermission(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("course_id")
	role := r.PathValue("role")
	permission := r.PathValue("permission")

	granted, err := h.Roles.RoleHasPermission(r.Context(), courseID, role, permission)
	if err != nil {
		writeServiceError(w, r, err, "Failed to check permission")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, forumsdk.PermissionCheckResponse{
		CourseID:   courseID,
		Role:       role,
		Permission: permission,
		Granted:    granted,
	})
}

// writeServiceError maps service and store errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, desc string) {
	switch {
	case errors.Is(err, service.ErrInvalidCourseID):
		httpx.WriteError(w, http.StatusBadRequest, forumsdk.ErrorCodeInvalidRequest, "course_id must not be blank")
	case errors.Is(err, service.ErrUnknownRole):
		httpx.WriteError(w, http.StatusNotFound, forumsdk.ErrorCodeNotFound, "unknown forum role")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, forumsdk.ErrorCodeNotFound, "forum role not found for course")
	default:
		slogx.FromContext(r.Context()).Error(desc, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, forumsdk.ErrorCodeServerError, desc)
	}
}
