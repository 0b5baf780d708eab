package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/hfal/kursdoc"
	"github.com/hfal/kursdoc/gemini"
	kurslog "github.com/hfal/kursdoc/slog"
	"github.com/hfal/kursdoc/sqlite"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService kursdoc.DocumentService
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
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kursdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kursdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The crawl command is self-contained; only ingest and ask need the
	// database and the Gemini API.
	if cmd == "ingest" || cmd == "ask" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set KURSDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.DocumentService = sqlite.NewDocumentService(m.DB)
		deps.DB = m.DB
		deps.Documents = m.DocumentService

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Embedder = gemini.NewEmbedder(client, gemini.DefaultEmbedRPS)

		// Debug builds wrap the services with logging decorators.
		if os.Getenv("KURSDOC_DEBUG") != "" {
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			deps.Documents = kurslog.NewLoggingDocumentService(deps.Documents, logger)
			deps.Embedder = kurslog.NewLoggingEmbedder(deps.Embedder, logger)
		}

		deps.Asker = gemini.NewAsker(client, deps.Documents, deps.Embedder)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("KURSDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kursdoc.db"
	}
	dir := filepath.Join(home, ".kursdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "kursdoc.db")
}
