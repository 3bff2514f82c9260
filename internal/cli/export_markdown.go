package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jeonck/tutoria/internal/config"
	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/database/tutorials"
	"github.com/jeonck/tutoria/internal/markdown"
)

type ExportMarkdownCommand struct {
	OutputDir string
	DataDir   string
	Verbose   bool
}

func NewExportMarkdownCommand() *ExportMarkdownCommand {
	return &ExportMarkdownCommand{}
}

func (cmd *ExportMarkdownCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-markdown", flag.ExitOnError)

	fs.StringVar(&cmd.OutputDir, "out", config.DefaultExportDir, "Directory to write markdown files to")
	fs.StringVar(&cmd.DataDir, "data-dir", config.DefaultDataDir, "Data directory holding the database snapshot")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-markdown [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export every tutorial as a markdown file. Imported tutorials keep\ntheir original content, others get generated front matter.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export-markdown -out ./exports\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportMarkdownCommand) Run() error {
	store, err := database.Open(cmd.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	if err := database.EnsureSchema(store); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	all, err := tutorials.NewRepository(store).GetAll()
	if err != nil {
		return fmt.Errorf("failed to load tutorials: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("Nothing to export")
		return nil
	}

	if err := os.MkdirAll(cmd.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	exported := 0
	for i := range all {
		tutorial := &all[i]
		name := markdown.Filename(tutorial)
		path := filepath.Join(cmd.OutputDir, name)
		// Slugged filenames can collide; disambiguate with the id.
		if _, err := os.Stat(path); err == nil {
			path = filepath.Join(cmd.OutputDir, fmt.Sprintf("%d-%s", tutorial.ID, name))
		}

		if err := os.WriteFile(path, []byte(markdown.Render(tutorial)), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if cmd.Verbose {
			fmt.Printf("Exported %q to %s\n", tutorial.Title, path)
		}
		exported++
	}

	fmt.Printf("Exported %d tutorial(s) to %s\n", exported, cmd.OutputDir)
	return nil
}
