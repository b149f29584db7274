// Package main provides the entry point for the debt-plan CLI.
package main

import (
	"fmt"
	"os"

	"fjacquet/debt-plan/cmd/compare"
	"fjacquet/debt-plan/cmd/plan"
	"fjacquet/debt-plan/cmd/root"
)

func main() {
	root.Init()
	plan.Init()

	root.Cmd.AddCommand(plan.Cmd)
	root.Cmd.AddCommand(compare.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
