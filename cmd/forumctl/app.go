package main

import (
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "forumctl"
	app.Usage = "Seed and inspect the discussion forum roles of a course"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage:   "Base URL of the forum roles API",
			EnvVars: []string{"FORUMCTL_SERVER"},
			Value:   "http://localhost:8080",
		},
		&cli.StringFlag{
			Name:    flagToken,
			Aliases: []string{"t"},
			Usage:   "Bearer token carrying the forum:admin or forum:read scope",
			EnvVars: []string{"FORUMCTL_TOKEN"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:        "seed",
			Usage:       "Create the forum roles of a course and grant their permissions",
			Description: "Safe to run repeatedly. Roles filed under a differently cased course id are re-keyed.",
			ArgsUsage:   "COURSE_ID",
			Action:      seed,
		},
		{
			Name:      "unseed",
			Usage:     "Delete the forum roles of a course",
			ArgsUsage: "COURSE_ID",
			Action:    unseed,
		},
		{
			Name:        "check",
			Usage:       "Check whether a course has its forum roles seeded",
			Description: "Exits with status 3 when the course is not seeded.",
			ArgsUsage:   "COURSE_ID",
			Action:      check,
		},
		{
			Name:      "roles",
			Usage:     "List the forum roles of a course",
			ArgsUsage: "COURSE_ID",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: rolesList,
		},
		{
			Name:      "permission",
			Usage:     "Check whether a forum role of a course holds a permission",
			ArgsUsage: "COURSE_ID ROLE PERMISSION",
			Action:    permission,
		},
		{
			Name:   "health",
			Usage:  "Check the API is ready",
			Action: health,
		},
	}
	return app
}
