package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// exitNotSeeded lets scripts tell "not seeded" apart from a failed request.
const exitNotSeeded = 3

func check(c *cli.Context) error {
	courseID, err := courseArg(c)
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return err
	}

	seeded, err := client.IsSeeded(c.Context, courseID)
	if err != nil {
		return fmt.Errorf("check %q: %w", courseID, err)
	}

	if !seeded {
		return cli.Exit(fmt.Sprintf("Forum roles are not seeded for %q.", courseID), exitNotSeeded)
	}
	fmt.Fprintf(c.App.Writer, "Forum roles are seeded for %q.\n", courseID)
	return nil
}

func permission(c *cli.Context) error {
	if c.Args().Len() != 3 {
		return fmt.Errorf("permission requires three arguments: COURSE_ID ROLE PERMISSION")
	}
	courseID, role, perm := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	client, err := getClient(c)
	if err != nil {
		return err
	}

	granted, err := client.HasPermission(c.Context, courseID, role, perm)
	if err != nil {
		return fmt.Errorf("check permission: %w", err)
	}

	if granted {
		fmt.Fprintf(c.App.Writer, "%s holds %s in %q.\n", role, perm, courseID)
	} else {
		fmt.Fprintf(c.App.Writer, "%s does not hold %s in %q.\n", role, perm, courseID)
	}
	return nil
}

func health(c *cli.Context) error {
	client, err := getClient(c)
	if err != nil {
		return err
	}

	resp, err := client.Health(c.Context)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "%s (version %s, up %s)\n", resp.Status, resp.Version, resp.Uptime)
	return nil
}
