package forumsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the forum roles admin API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is sent as a bearer token on every request.
	Token string
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Token: token,
	}
}

// SeedRoles creates the forum roles of a course and grants their
// permissions. Seeding an already seeded course is a no-op.
func (c *Client) SeedRoles(ctx context.Context, courseID string) error {
	resp, err := c.doRequest(ctx, http.MethodPut, coursePath(courseID))
	if err != nil {
		return err
	}

	var status SeedStatusResponse
	return decodeJSON(resp, &status, http.StatusOK)
}

// UnseedRoles deletes the forum roles of a course. Roles filed under a
// differently cased course id are left alone and reported in Skipped.
func (c *Client) UnseedRoles(ctx context.Context, courseID string) (*UnseedResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, coursePath(courseID))
	if err != nil {
		return nil, err
	}

	var res UnseedResponse
	if err := decodeJSON(resp, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

// IsSeeded reports whether the course has its forum roles seeded.
func (c *Client) IsSeeded(ctx context.Context, courseID string) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, coursePath(courseID, "seeded"))
	if err != nil {
		return false, err
	}

	var status SeedStatusResponse
	if err := decodeJSON(resp, &status, http.StatusOK); err != nil {
		return false, err
	}
	return status.Seeded, nil
}

// ListRoles lists the forum roles of a course with their permissions.
func (c *Client) ListRoles(ctx context.Context, courseID string) (*ListRolesResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, coursePath(courseID))
	if err != nil {
		return nil, err
	}

	var list ListRolesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// HasPermission reports whether the named role of a course holds permission.
func (c *Client) HasPermission(ctx context.Context, courseID, role, permission string) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, coursePath(courseID, role, "permissions", permission))
	if err != nil {
		return false, err
	}

	var check PermissionCheckResponse
	if err := decodeJSON(resp, &check, http.StatusOK); err != nil {
		return false, err
	}
	return check.Granted, nil
}

// Health calls /readyz. A degraded service returns an *APIError with status 503.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
