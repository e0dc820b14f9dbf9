package main

import (
	"context"
	"io"

	"github.com/catalogix/catidx"
	"github.com/catalogix/catidx/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Table   catidx.SectionTable
	Entries catidx.EntryService
	Builder *build.Builder
	Writer  catidx.IndexWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `help:"Enable debug logging"`

	Build    BuildCmd    `cmd:"" help:"Index a directory of OCR'd catalog pages"`
	List     ListCmd     `cmd:"" help:"List stored catalog entries"`
	Show     ShowCmd     `cmd:"" help:"Show one stored entry as JSON"`
	Sections SectionsCmd `cmd:"" help:"Print the catalog section table"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Dir         string `arg:"" help:"Directory containing ocr_trim_page_*.pdf files"`
	Out         string `default:"." help:"Parent directory for the output"`
	Name        string `default:"index" help:"Output directory name"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
	DB          bool   `help:"Also store entries in the database"`
	Extractor   string `default:"auto" enum:"auto,pdftotext,go" help:"Text extraction backend"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Section string `short:"s" help:"Filter by section display name"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Page int `arg:"" help:"Page number"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}
