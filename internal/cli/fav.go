package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sakamichi-tools/penlight/internal/pipeline"
	"github.com/sakamichi-tools/penlight/internal/roster"
	"github.com/sakamichi-tools/penlight/internal/storage"
)

// Execute implements the go-flags Commander interface for FavCommand.
func (c *FavCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *FavCommand) executeWithStore(store storage.Store) error {
	ctx := context.Background()

	if c.Clear {
		if !c.Force && !confirm("Remove every favorite?") {
			fmt.Println("Aborted.")
			return nil
		}
		if err := store.ClearFavorites(ctx); err != nil {
			return fmt.Errorf("clear favorites: %w", err)
		}
		fmt.Println("Cleared all favorites.")
		return nil
	}

	if key := c.Args.Key; key != "" {
		if _, ok := roster.ByFavKey()[key]; !ok {
			return fmt.Errorf("unknown member key %q (expected group|gen|name)", key)
		}
		on, err := store.ToggleFavorite(ctx, key)
		if err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		if on {
			fmt.Printf("★ Added %s to favorites.\n", key)
		} else {
			fmt.Printf("☆ Removed %s from favorites.\n", key)
		}
		return nil
	}

	return c.list(ctx, store)
}

// list prints favorites in recency order, dropping keys that no longer
// resolve to a roster member.
func (c *FavCommand) list(ctx context.Context, store storage.Store) error {
	favs, err := store.Favorites(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}

	index := roster.ByFavKey()
	var members []roster.Member
	for _, key := range favs {
		m, ok := index[key]
		if !ok {
			continue
		}
		if c.Group != pipeline.All && c.Group != "" && m.Group != c.Group {
			continue
		}
		members = append(members, m)
	}

	if c.globals != nil && c.globals.JSON {
		if members == nil {
			members = []roster.Member{}
		}
		out := struct {
			Count   int             `json:"count"`
			Members []roster.Member `json:"members"`
		}{len(members), members}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(members) == 0 {
		fmt.Println("No favorites yet. Toggle one with: penlight fav 'nogi|4期|遠藤さくら'")
		return nil
	}

	fmt.Printf("%d favorite(s)\n\n", len(members))
	for _, m := range members {
		name := m.Name
		if m.Aka != "" {
			name += "（" + m.Aka + "）"
		}
		fmt.Printf("★ %s / %s / %s\n", roster.GroupLabel(m.Group), m.Gen, name)
		fmt.Printf("   %s (%s) × %s (%s)\n", m.C1, roster.ColorHex(m.C1), m.C2, roster.ColorHex(m.C2))
	}

	return nil
}
