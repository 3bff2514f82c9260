package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeonck/tutoria/internal/config"
	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/database/tutorials"
	"github.com/jeonck/tutoria/internal/markdown"
)

type ImportMarkdownCommand struct {
	Path       string
	DataDir    string
	Shared     bool
	UploadedBy string
	Verbose    bool
}

func NewImportMarkdownCommand() *ImportMarkdownCommand {
	return &ImportMarkdownCommand{}
}

func (cmd *ImportMarkdownCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-markdown", flag.ExitOnError)

	fs.StringVar(&cmd.Path, "path", "", "Markdown file or directory to import (required)")
	fs.StringVar(&cmd.DataDir, "data-dir", config.DefaultDataDir, "Data directory holding the database snapshot")
	fs.BoolVar(&cmd.Shared, "shared", false, "Register imported files for re-download")
	fs.StringVar(&cmd.UploadedBy, "uploaded-by", "", "Uploader name recorded on shared files")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-markdown [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import markdown tutorial files into the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import-markdown -path ./notes/react-hooks.md\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import-markdown -path ./notes -shared -uploaded-by alice\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Path == "" {
		fs.Usage()
		return fmt.Errorf("path is required")
	}

	return nil
}

func (cmd *ImportMarkdownCommand) Run() error {
	info, err := os.Stat(cmd.Path)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", cmd.Path)
	}

	if cmd.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	var files []string
	if info.IsDir() {
		err := filepath.WalkDir(cmd.Path, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan directory: %w", err)
		}
	} else {
		files = []string{cmd.Path}
	}

	if len(files) == 0 {
		fmt.Printf("No markdown files found under %s\n", cmd.Path)
		return nil
	}

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

	repo := tutorials.NewRepository(store)

	imported, failed := 0, 0
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			failed++
			continue
		}
		if len(content) == 0 {
			log.Printf("Skipping %s: file is empty", path)
			failed++
			continue
		}

		tutorial := markdown.Parse(string(content), filepath.Base(path))
		if cmd.Shared {
			tutorial.IsSharedMarkdown = true
			tutorial.UploadedBy = cmd.UploadedBy
		}

		if err := repo.Create(tutorial); err != nil {
			log.Printf("Failed to import %s: %v", path, err)
			failed++
			continue
		}

		if cmd.Verbose {
			fmt.Printf("Imported %q from %s\n", tutorial.Title, path)
		}
		imported++
	}

	fmt.Printf("\n=== Import Results ===\n")
	fmt.Printf("Files imported: %d\n", imported)
	fmt.Printf("Files failed: %d\n", failed)

	return nil
}
