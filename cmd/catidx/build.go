package main

import (
	"fmt"

	"github.com/catalogix/catidx/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	progress := func(event build.ProgressEvent) {
		switch event.Type {
		case build.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d page files\n", event.Total)
		case build.ProgressDegraded:
			fmt.Fprintf(deps.Stderr, "  page %d degraded: %v\n", event.Page, event.Error)
		case build.ProgressFinished:
			// Summary printed after the index is written.
		}
	}

	result, err := deps.Builder.Build(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error building index: %v\n", err)
		return err
	}

	if err := deps.Writer.Save(deps.Ctx, result.Index); err != nil {
		_ = deps.Writer.Abort()
		fmt.Fprintf(deps.Stderr, "error writing index: %v\n", err)
		return err
	}
	if err := deps.Writer.Commit(); err != nil {
		_ = deps.Writer.Abort()
		fmt.Fprintf(deps.Stderr, "error committing index: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d pages (%s text, %d products, %d keywords)\n",
		result.Pages, build.FormatBytes(result.Bytes), result.Products, result.Keywords)
	if result.Degraded > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages had no usable text\n", result.Degraded)
	}

	return nil
}
