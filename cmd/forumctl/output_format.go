package main

import (
	"fmt"
	"strings"
)

func validateOutputFormat(outputFormat string) error {
	switch strings.ToLower(outputFormat) {
	case "table":
	case "json":
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
	return nil
}
