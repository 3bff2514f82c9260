package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jeonck/tutoria/internal/config"
	"github.com/jeonck/tutoria/internal/database"
)

type ResetCommand struct {
	DataDir string
	Force   bool
}

func NewResetCommand() *ResetCommand {
	return &ResetCommand{}
}

func (cmd *ResetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)

	fs.StringVar(&cmd.DataDir, "data-dir", config.DefaultDataDir, "Data directory holding the database snapshot")
	fs.BoolVar(&cmd.Force, "force", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete the database snapshot. The next start rebuilds it with the\nbundled catalog; all user data is lost.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ResetCommand) Run() error {
	store, err := database.Open(cmd.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	defer store.Close()

	if !cmd.Force {
		fmt.Printf("This deletes %s and all user data. Continue? [y/N]: ", store.SnapshotPath())
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := store.Reset(); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}

	fmt.Println("Database snapshot removed; the next start seeds a fresh catalog")
	return nil
}
