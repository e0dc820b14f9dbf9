package main

import (
	"fmt"

	"github.com/catalogix/catidx"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := catidx.EntryFilter{}
	if c.Section != "" {
		filter.Section = &c.Section
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catidx.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'catidx build --db' to store a run.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%4d  %-33s  %s\n", e.Page, e.Section, e.Title)
	}

	return nil
}
