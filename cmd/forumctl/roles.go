package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"
)

func rolesList(c *cli.Context) error {
	courseID, err := courseArg(c)
	if err != nil {
		return err
	}

	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return err
	}

	list, err := client.ListRoles(c.Context, courseID)
	if err != nil {
		return fmt.Errorf("list roles of %q: %w", courseID, err)
	}

	switch strings.ToLower(output) {
	case "table":
		if len(list.Roles) == 0 {
			fmt.Fprintln(c.App.Writer, "No forum roles found.")
			return nil
		}

		table := uitable.New()
		table.MaxColWidth = 80
		table.Wrap = true
		table.AddRow("NAME", "COURSE", "PERMISSIONS", "COUNT")
		for _, role := range list.Roles {
			table.AddRow(
				role.Name,
				role.CourseID,
				strings.Join(role.Permissions, ", "),
				len(role.Permissions),
			)
		}
		fmt.Fprintln(c.App.Writer, table)

	case "json":
		prettyJSON, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("format roles: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(prettyJSON))
	}

	return nil
}
