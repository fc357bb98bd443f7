package main

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/forumroles/pkg/forumsdk"
	"github.com/urfave/cli/v2"
)

func getClient(c *cli.Context) (*forumsdk.Client, error) {
	server := c.String(flagServer)
	if server == "" {
		return nil, errors.New("no server given, set --server or FORUMCTL_SERVER")
	}
	return forumsdk.NewClient(server, c.String(flagToken)), nil
}

// courseArg returns the single COURSE_ID argument of a command.
func courseArg(c *cli.Context) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("%s requires one argument: COURSE_ID", c.Command.Name)
	}
	return c.Args().First(), nil
}
