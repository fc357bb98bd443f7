/*
Package forumsdk is a client for the forum roles admin API.

A Client carries the service base URL and a bearer token. The token must carry
the forum:admin scope for seeding and unseeding, and forum:read (or
forum:admin) for the read endpoints.

	client := forumsdk.NewClient("http://localhost:8080", token)

	if err := client.SeedRoles(ctx, "course-v1:edX+Demo+2014"); err != nil {
		return err
	}

	seeded, err := client.IsSeeded(ctx, "course-v1:edX+Demo+2014")

Errors returned by the API are *APIError values carrying the HTTP status and
the error code from the response body:

	var apiErr *forumsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// role or course not found
	}
*/
package forumsdk
