package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/catalogix/catidx"
	"github.com/catalogix/catidx/build"
	"github.com/catalogix/catidx/fs"
	"github.com/catalogix/catidx/pdf"
	"github.com/catalogix/catidx/pdftotext"
	catslog "github.com/catalogix/catidx/slog"
	"github.com/catalogix/catidx/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the entry store.
	DB *sqlite.DB

	// Entry store for end-to-end testing.
	Entries catidx.EntryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Table:  catidx.DefaultSectionTable(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("catidx"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'catidx --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// kong reports the selected command with its positional placeholders,
	// e.g. "build <dir>"; only the leading word matters here.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Commands that read or write stored entries need the database.
	needsDB := cmd == "list" || cmd == "show" || (cmd == "build" && cli.Build.DB)
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CATIDX_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Entries = sqlite.NewEntryService(m.DB)
		deps.Entries = m.Entries
	}

	if cmd == "build" {
		extractor, err := selectExtractor(cli.Build.Extractor)
		if err != nil {
			return err
		}

		builder := &build.Builder{
			Pages:       fs.NewDirSource(cli.Build.Dir),
			Extractor:   catslog.NewLoggingExtractor(extractor, logger),
			Table:       deps.Table,
			Concurrency: cli.Build.Concurrency,
		}
		if cli.Build.DB {
			builder.Entries = deps.Entries
		}

		deps.Builder = builder
		deps.Writer = fs.NewWriter(cli.Build.Out, cli.Build.Name)
	}

	return kongCtx.Run(deps)
}

// selectExtractor picks the text extraction backend. The layout-preserving
// pdftotext tool is preferred when installed, since the heuristics were
// tuned on its output.
func selectExtractor(mode string) (catidx.TextExtractor, error) {
	switch mode {
	case "pdftotext":
		e := pdftotext.NewExtractor()
		if !e.Available() {
			return nil, fmt.Errorf("pdftotext not found on PATH")
		}
		return e, nil
	case "go":
		return pdf.NewExtractor(), nil
	default: // auto
		if e := pdftotext.NewExtractor(); e.Available() {
			return e, nil
		}
		return pdf.NewExtractor(), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("CATIDX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "catidx.db"
	}
	dir := filepath.Join(home, ".catidx")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "catidx.db")
}
