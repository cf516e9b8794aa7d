package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sakamichi-tools/penlight/internal/roster"
	"github.com/sakamichi-tools/penlight/internal/storage"
)

// itemAt resolves a 1-based item number from "checklist show" to the item.
func itemAt(items []storage.ChecklistItem, number int) (storage.ChecklistItem, error) {
	if number < 1 || number > len(items) {
		return storage.ChecklistItem{}, fmt.Errorf("item number %d is out of range (1-%d)", number, len(items))
	}
	return items[number-1], nil
}

func checklistFor(ctx context.Context, store storage.Store, group string) ([]storage.ChecklistItem, error) {
	if !validNoteGroup(group) {
		return nil, fmt.Errorf("unknown group %q (use nogi, sakura, hinata, or common)", group)
	}
	items, err := store.Checklist(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("load checklist: %w", err)
	}
	return items, nil
}

// ── checklist show ─────────────────────────────────────────────

// Execute implements the go-flags Commander interface for ChecklistShowCommand.
func (c *ChecklistShowCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ChecklistShowCommand) executeWithStore(store storage.Store) error {
	items, err := checklistFor(context.Background(), store, c.Group)
	if err != nil {
		return err
	}

	done := 0
	for _, item := range items {
		if item.Done {
			done++
		}
	}

	if c.globals != nil && c.globals.JSON {
		out := struct {
			Group string                  `json:"group"`
			Done  int                     `json:"done"`
			Total int                     `json:"total"`
			Items []storage.ChecklistItem `json:"items"`
		}{c.Group, done, len(items), items}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%s checklist: %d/%d done\n\n", roster.GroupLabel(c.Group), done, len(items))
	for i, item := range items {
		mark := "[ ]"
		if item.Done {
			mark = "[x]"
		}
		suffix := ""
		if !item.BuiltIn {
			suffix = "  (added)"
		}
		fmt.Printf("%2d. %s %s%s\n", i+1, mark, item.Text, suffix)
	}
	return nil
}

// ── checklist toggle ───────────────────────────────────────────

// Execute implements the go-flags Commander interface for ChecklistToggleCommand.
func (c *ChecklistToggleCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ChecklistToggleCommand) executeWithStore(store storage.Store) error {
	ctx := context.Background()
	items, err := checklistFor(ctx, store, c.Group)
	if err != nil {
		return err
	}

	item, err := itemAt(items, c.Args.Number)
	if err != nil {
		return err
	}

	done, err := store.ToggleItem(ctx, c.Group, item.ID)
	if err != nil {
		return fmt.Errorf("toggle item: %w", err)
	}

	if done {
		fmt.Printf("[x] %s\n", item.Text)
	} else {
		fmt.Printf("[ ] %s\n", item.Text)
	}
	return nil
}

// ── checklist add ──────────────────────────────────────────────

// Execute implements the go-flags Commander interface for ChecklistAddCommand.
func (c *ChecklistAddCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ChecklistAddCommand) executeWithStore(store storage.Store) error {
	text := strings.TrimSpace(strings.Join(c.Args.Text, " "))
	if text == "" {
		return fmt.Errorf("item text must not be empty")
	}
	if !validNoteGroup(c.Group) {
		return fmt.Errorf("unknown group %q (use nogi, sakura, hinata, or common)", c.Group)
	}

	item, err := store.AddItem(context.Background(), c.Group, text)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	fmt.Printf("Added %q to the %s checklist.\n", item.Text, roster.GroupLabel(c.Group))
	return nil
}

// ── checklist rm ───────────────────────────────────────────────

// Execute implements the go-flags Commander interface for ChecklistRmCommand.
func (c *ChecklistRmCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ChecklistRmCommand) executeWithStore(store storage.Store) error {
	ctx := context.Background()
	items, err := checklistFor(ctx, store, c.Group)
	if err != nil {
		return err
	}

	item, err := itemAt(items, c.Args.Number)
	if err != nil {
		return err
	}
	if item.BuiltIn {
		return fmt.Errorf("%q is a built-in item and cannot be removed (uncheck it instead)", item.Text)
	}

	if !c.Force && !confirm(fmt.Sprintf("Remove %q?", item.Text)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := store.RemoveItem(ctx, c.Group, item.ID); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	fmt.Printf("Removed %q.\n", item.Text)
	return nil
}

// ── checklist reset ────────────────────────────────────────────

// Execute implements the go-flags Commander interface for ChecklistResetCommand.
func (c *ChecklistResetCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ChecklistResetCommand) executeWithStore(store storage.Store) error {
	if !validNoteGroup(c.Group) {
		return fmt.Errorf("unknown group %q (use nogi, sakura, hinata, or common)", c.Group)
	}

	if !c.Force && !confirm("Reset the checklist to the template? User-added items are lost.") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := store.ResetChecklist(context.Background(), c.Group); err != nil {
		return fmt.Errorf("reset checklist: %w", err)
	}
	fmt.Printf("Reset the %s checklist to the template.\n", roster.GroupLabel(c.Group))
	return nil
}

// ── checklist uncheck ──────────────────────────────────────────

// Execute implements the go-flags Commander interface for ChecklistUncheckCommand.
func (c *ChecklistUncheckCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *ChecklistUncheckCommand) executeWithStore(store storage.Store) error {
	if !validNoteGroup(c.Group) {
		return fmt.Errorf("unknown group %q (use nogi, sakura, hinata, or common)", c.Group)
	}

	if err := store.UncheckAll(context.Background(), c.Group); err != nil {
		return fmt.Errorf("uncheck all: %w", err)
	}
	fmt.Printf("Unchecked every item on the %s checklist.\n", roster.GroupLabel(c.Group))
	return nil
}
