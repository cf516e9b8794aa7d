package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sakamichi-tools/penlight/internal/storage"
)

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	store, db, cfg, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	dbPath, err := cfg.DBPath()
	if err != nil {
		return err
	}
	return c.executeWithStore(store, dbPath)
}

func (c *StatusCommand) executeWithStore(store storage.Store, dbPath string) error {
	stats, err := store.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := struct {
			Version  string         `json:"version"`
			Database string         `json:"database"`
			Stats    *storage.Stats `json:"stats"`
		}{c.version, dbPath, stats}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("penlight %s\n", c.version)
	fmt.Printf("Database:  %s\n", dbPath)
	fmt.Printf("Notes:     %d\n", stats.Notes)
	fmt.Printf("Favorites: %d\n", stats.Favorites)
	fmt.Printf("Checklist: %d/%d done\n", stats.ChecklistDone, stats.ChecklistTotal)
	fmt.Printf("Theme:     %s\n", stats.Theme)
	return nil
}
