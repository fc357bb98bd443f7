package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func seed(c *cli.Context) error {
	courseID, err := courseArg(c)
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return err
	}

	if err := client.SeedRoles(c.Context, courseID); err != nil {
		return fmt.Errorf("seed %q: %w", courseID, err)
	}

	fmt.Fprintf(c.App.Writer, "Forum roles seeded for %q.\n", courseID)
	return nil
}

func unseed(c *cli.Context) error {
	courseID, err := courseArg(c)
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return err
	}

	res, err := client.UnseedRoles(c.Context, courseID)
	if err != nil {
		return fmt.Errorf("unseed %q: %w", courseID, err)
	}

	fmt.Fprintf(c.App.Writer, "Forum roles removed for %q: %d.\n", courseID, len(res.Removed))
	if len(res.Skipped) > 0 {
		fmt.Fprintf(c.App.Writer, "Skipped roles filed under a differently cased course id: %s\n",
			strings.Join(res.Skipped, ", "))
	}
	return nil
}
