package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/loncotes/library/internal/config"
	"github.com/loncotes/library/internal/database"
	"github.com/loncotes/library/internal/seed"
)

// SeedCommand loads starter catalog data into the configured database.
type SeedCommand struct {
	FixturePath string
	Driver      string
	DSN         string
	DryRun      bool

	cfg *config.Config
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{cfg: config.NewConfig()}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.FixturePath, "file", "", "Path to a YAML fixture (defaults to the bundled starter catalog)")
	fs.StringVar(&cmd.Driver, "driver", cmd.cfg.Database.Driver, "Database driver: sqlite, postgres or mysql")
	fs.StringVar(&cmd.DSN, "dsn", cmd.cfg.Database.DSN, "Database connection string")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate the fixture without touching the database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load material types, genres, patrons, materials and checkouts into an\n")
		fmt.Fprintf(os.Stderr, "empty catalog. A catalog that already has material types is left alone.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -file catalog.yaml -driver postgres -dsn \"host=localhost dbname=library\"\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	data, err := cmd.loadFixture()
	if err != nil {
		return err
	}

	fmt.Printf("Fixture: %d material types, %d genres, %d patrons, %d materials, %d checkouts\n",
		len(data.MaterialTypes), len(data.Genres), len(data.Patrons), len(data.Materials), len(data.Checkouts))

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes made")
		return nil
	}

	dbCfg := cmd.cfg.Database
	dbCfg.Driver = cmd.Driver
	dbCfg.DSN = cmd.DSN

	db, err := database.NewDatabase(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	result, err := seed.Apply(context.Background(), db.DB, data)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if result.Skipped {
		fmt.Println("Catalog already has data, nothing seeded")
		return nil
	}
	fmt.Println("Seeding complete")
	return nil
}

func (cmd *SeedCommand) loadFixture() (*seed.Data, error) {
	if cmd.FixturePath == "" {
		return seed.Default()
	}
	data, err := seed.LoadFile(cmd.FixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture %s: %w", cmd.FixturePath, err)
	}
	return data, nil
}
