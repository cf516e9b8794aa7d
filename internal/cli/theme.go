package cli

import (
	"context"
	"fmt"

	"github.com/sakamichi-tools/penlight/internal/storage"
)

// Execute implements the go-flags Commander interface for ThemeCommand.
func (c *ThemeCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ThemeCommand) executeWithStore(store storage.Store) error {
	ctx := context.Background()

	switch c.Args.Action {
	case "":
		theme, err := store.Theme(ctx)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		fmt.Println(theme)
		return nil

	case "light", "dark":
		if err := store.SetTheme(ctx, c.Args.Action); err != nil {
			return fmt.Errorf("set theme: %w", err)
		}
		fmt.Printf("Theme set to %s.\n", c.Args.Action)
		return nil

	case "toggle":
		theme, err := store.Theme(ctx)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		next := "dark"
		if theme == "dark" {
			next = "light"
		}
		if err := store.SetTheme(ctx, next); err != nil {
			return fmt.Errorf("set theme: %w", err)
		}
		fmt.Printf("Theme set to %s.\n", next)
		return nil

	default:
		return fmt.Errorf("unknown action %q (use light, dark, or toggle)", c.Args.Action)
	}
}
