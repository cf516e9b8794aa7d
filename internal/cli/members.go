package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sakamichi-tools/penlight/internal/config"
	"github.com/sakamichi-tools/penlight/internal/pipeline"
	"github.com/sakamichi-tools/penlight/internal/roster"
	"github.com/sakamichi-tools/penlight/internal/share"
	"github.com/sakamichi-tools/penlight/internal/storage"
)

// Execute implements the go-flags Commander interface for MembersCommand.
func (c *MembersCommand) Execute(args []string) error {
	store, db, cfg, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store, cfg)
}

// executeWithStore runs the member listing against a provided store (for
// testing).
func (c *MembersCommand) executeWithStore(store storage.Store, cfg *config.Config) error {
	group := c.Group
	if group == "" {
		group = cfg.Filters.DefaultGroup
	}
	if !roster.ValidGroup(group) {
		return fmt.Errorf("unknown group %q (use nogi, sakura, hinata, or all)", group)
	}

	gen := c.Gen
	if gen == "" {
		gen = pipeline.All
	}
	if !roster.ValidGen(group, gen) {
		return fmt.Errorf("unknown generation %q for group %q", gen, group)
	}

	query := strings.Join(c.Args.Query, " ")
	state := share.State{Group: group, Gen: gen, Query: query}

	if c.Share || c.CopyShare {
		return c.printShareURL(cfg, state)
	}

	results := roster.Search(group, gen, query)

	ctx := context.Background()
	favs, err := store.Favorites(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	favSet := make(map[string]bool, len(favs))
	for _, k := range favs {
		favSet[k] = true
	}

	if c.Favs {
		kept := results[:0:0]
		for _, m := range results {
			if favSet[roster.FavKey(m)] {
				kept = append(kept, m)
			}
		}
		results = kept
	}

	if c.globals != nil && c.globals.JSON {
		return c.printJSON(state, results, favSet)
	}
	return c.printHuman(state, results, favSet)
}

func (c *MembersCommand) printShareURL(cfg *config.Config, state share.State) error {
	u, err := share.URL(cfg.Share.BaseURL, state)
	if err != nil {
		return err
	}

	fmt.Println(u)

	if c.CopyShare {
		if err := copyText(u); err != nil {
			fmt.Fprintln(os.Stderr, "Could not access the clipboard; copy the URL above manually.")
			return nil
		}
		fmt.Println("Copied the share URL to the clipboard.")
	}
	return nil
}

func (c *MembersCommand) printHuman(state share.State, results []roster.Member, favSet map[string]bool) error {
	memberWord := "members"
	if len(results) == 1 {
		memberWord = "member"
	}
	if state.Query != "" {
		fmt.Printf("%d %s for %q (group=%s, gen=%s)\n\n", len(results), memberWord, state.Query, state.Group, state.Gen)
	} else {
		fmt.Printf("%d %s (group=%s, gen=%s)\n\n", len(results), memberWord, state.Group, state.Gen)
	}

	for _, m := range results {
		star := "☆"
		if favSet[roster.FavKey(m)] {
			star = "★"
		}

		name := m.Name
		if m.Aka != "" {
			name += "（" + m.Aka + "）"
		}

		fmt.Printf("%s %s %s  %s\n", star, roster.GroupLabel(m.Group), m.Gen, name)
		fmt.Printf("   %s (%s) × %s (%s)\n", m.C1, roster.ColorHex(m.C1), m.C2, roster.ColorHex(m.C2))
	}

	return nil
}

type memberJSON struct {
	Group    string `json:"group"`
	Gen      string `json:"gen"`
	Name     string `json:"name"`
	Aka      string `json:"aka,omitempty"`
	Kana     string `json:"kana"`
	C1       string `json:"c1"`
	C1Hex    string `json:"c1_hex"`
	C2       string `json:"c2"`
	C2Hex    string `json:"c2_hex"`
	Favorite bool   `json:"favorite"`
}

type membersOutput struct {
	Count   int          `json:"count"`
	Group   string       `json:"group"`
	Gen     string       `json:"gen"`
	Query   string       `json:"query,omitempty"`
	Members []memberJSON `json:"members"`
}

func (c *MembersCommand) printJSON(state share.State, results []roster.Member, favSet map[string]bool) error {
	out := membersOutput{
		Count:   len(results),
		Group:   state.Group,
		Gen:     state.Gen,
		Query:   state.Query,
		Members: make([]memberJSON, len(results)),
	}

	for i, m := range results {
		out.Members[i] = memberJSON{
			Group:    m.Group,
			Gen:      m.Gen,
			Name:     m.Name,
			Aka:      m.Aka,
			Kana:     m.Kana,
			C1:       m.C1,
			C1Hex:    roster.ColorHex(m.C1),
			C2:       m.C2,
			C2Hex:    roster.ColorHex(m.C2),
			Favorite: favSet[roster.FavKey(m)],
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
