package main

import "github.com/urfave/cli/v2"

const (
	flagOutput = "output"
	flagServer = "server"
	flagToken  = "token"
)

var cliFlagOutput = &cli.StringFlag{
	Name:    flagOutput,
	Aliases: []string{"o"},
	Usage:   "Return output in another format. Supported formats: table, json",
	Value:   "table",
}
