package cli

import (
	"context"
	"fmt"

	"github.com/sakamichi-tools/penlight/internal/storage"
)

// Execute implements the go-flags Commander interface for WipeCommand.
func (c *WipeCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *WipeCommand) executeWithStore(store storage.Store) error {
	if !c.Force {
		fmt.Println("This deletes ALL stored data: notes, checklists, favorites, and theme.")
		if err := confirmTyped("WIPE"); err != nil {
			return err
		}
	}

	if err := store.Wipe(context.Background()); err != nil {
		return fmt.Errorf("wipe data: %w", err)
	}

	fmt.Println("All stored data has been deleted.")
	return nil
}
