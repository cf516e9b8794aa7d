package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sakamichi-tools/penlight/internal/storage"
	"github.com/sakamichi-tools/penlight/internal/transfer"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	store, db, cfg, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	out := c.Out
	if out == "" {
		out = cfg.Export.Filename
	}
	return c.executeWithStore(store, out)
}

func (c *ExportCommand) executeWithStore(store storage.Store, out string) error {
	notes, err := store.ListNotes(context.Background())
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	if err := transfer.WriteFile(out, notes, time.Now()); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	fmt.Printf("Exported %d note(s) to %s.\n", len(notes), out)
	return nil
}

// Execute implements the go-flags Commander interface for ImportCommand.
func (c *ImportCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ImportCommand) executeWithStore(store storage.Store) error {
	notes, err := transfer.ReadFile(c.Args.Path, time.Now())
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	if !c.Yes && !confirm(fmt.Sprintf("Import %d note(s) from %s? They are appended to your existing notes.", len(notes), c.Args.Path)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := store.AppendNotes(context.Background(), notes); err != nil {
		return fmt.Errorf("import notes: %w", err)
	}

	fmt.Printf("Imported %d note(s).\n", len(notes))
	return nil
}
