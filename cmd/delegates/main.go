// Package main provides the delegates command-line tool: it classifies the
// delegate dataset and renders the aggregate report as markdown or JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
