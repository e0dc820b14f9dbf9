package main

import "fmt"

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	for _, r := range deps.Table {
		fmt.Fprintf(deps.Stdout, "%-33s  %s\n", r.DisplayName(), r.RangeLabel())
	}
	return nil
}
