package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sakamichi-tools/penlight/internal/pipeline"
	"github.com/sakamichi-tools/penlight/internal/roster"
	"github.com/sakamichi-tools/penlight/internal/storage"
)

func validNoteGroup(group string) bool {
	for _, g := range roster.NoteGroups {
		if g == group {
			return true
		}
	}
	return false
}

func validNoteType(typ string) bool {
	for _, t := range roster.NoteTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// ── note add ───────────────────────────────────────────────────

// Execute implements the go-flags Commander interface for NoteAddCommand.
func (c *NoteAddCommand) Execute(args []string) error {
	store, db, cfg, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store, cfg.LooksSensitive)
}

func (c *NoteAddCommand) executeWithStore(store storage.Store, looksSensitive func(string) bool) error {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return fmt.Errorf("--text is required and must not be empty")
	}
	if !validNoteGroup(c.Group) {
		return fmt.Errorf("unknown group %q (use nogi, sakura, hinata, or common)", c.Group)
	}
	if !validNoteType(c.Type) {
		return fmt.Errorf("unknown type %q (use live, event, meet, stream, or other)", c.Type)
	}

	if looksSensitive != nil && looksSensitive(text) && !c.Force {
		return fmt.Errorf("the note text looks like it contains personal information; re-run with --force to save anyway")
	}

	date := c.Date
	if date == "" {
		date = nowDateISO()
	}

	note := &storage.Note{
		Group: c.Group,
		Date:  date,
		Venue: strings.TrimSpace(c.Venue),
		Type:  c.Type,
		Text:  text,
		Tags:  parseTags(c.Tags),
	}

	if err := store.AddNote(context.Background(), note); err != nil {
		return fmt.Errorf("save note: %w", err)
	}

	fmt.Printf("Saved note %s (stored on this device only).\n", note.ID)
	return nil
}

// ── note ls ────────────────────────────────────────────────────

// Execute implements the go-flags Commander interface for NoteLsCommand.
func (c *NoteLsCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *NoteLsCommand) executeWithStore(store storage.Store) error {
	notes, err := store.ListNotes(context.Background())
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	query := strings.Join(c.Args.Query, " ")

	rows := pipeline.Query(notes, pipeline.Options[storage.Note]{
		Filters: []pipeline.Filter[storage.Note]{
			{Field: func(n storage.Note) string { return n.Group }, Want: c.Group},
		},
		Query: query,
		Haystack: func(n storage.Note) string {
			parts := append([]string{n.Venue, n.Text}, n.Tags...)
			return strings.Join(parts, " ")
		},
		Less: func(a, b storage.Note) bool {
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.CreatedAt > b.CreatedAt
		},
	})

	if c.globals != nil && c.globals.JSON {
		if rows == nil {
			rows = []storage.Note{}
		}
		out := struct {
			Total int            `json:"total"`
			Count int            `json:"count"`
			Notes []storage.Note `json:"notes"`
		}{len(notes), len(rows), rows}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%d of %d note(s)\n", len(rows), len(notes))
	if len(rows) == 0 {
		return nil
	}
	fmt.Println()

	for _, n := range rows {
		meta := []string{roster.GroupLabel(n.Group), roster.TypeLabel(n.Type)}
		if n.Date != "" {
			meta = append(meta, n.Date)
		}
		if n.Venue != "" {
			meta = append(meta, n.Venue)
		}
		fmt.Printf("[%s] %s\n", n.ID, strings.Join(meta, " / "))
		fmt.Printf("   %s\n", n.Text)
		if len(n.Tags) > 0 {
			fmt.Printf("   # %s\n", strings.Join(n.Tags, " "))
		}
	}

	return nil
}

// ── note rm ────────────────────────────────────────────────────

// Execute implements the go-flags Commander interface for NoteRmCommand.
func (c *NoteRmCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *NoteRmCommand) executeWithStore(store storage.Store) error {
	if !c.Force && !confirm("Delete this note? This cannot be undone.") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := store.DeleteNote(context.Background(), c.Args.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted note %s.\n", c.Args.ID)
	return nil
}

// ── note copy ──────────────────────────────────────────────────

// Execute implements the go-flags Commander interface for NoteCopyCommand.
func (c *NoteCopyCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *NoteCopyCommand) executeWithStore(store storage.Store) error {
	notes, err := store.ListNotes(context.Background())
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	for _, n := range notes {
		if n.ID != c.Args.ID {
			continue
		}

		text := formatNote(n)
		if err := copyText(text); err != nil {
			// Clipboard access fails in headless sessions; print the text
			// so the user can copy it manually.
			fmt.Fprintln(os.Stderr, "Could not access the clipboard; copy the text below manually.")
			fmt.Println(text)
			return nil
		}
		fmt.Println("Copied the note to the clipboard.")
		return nil
	}

	return fmt.Errorf("note %s not found", c.Args.ID)
}

// formatNote renders a note as the share text copied to the clipboard.
func formatNote(n storage.Note) string {
	lines := []string{
		fmt.Sprintf("【%s / %s】", roster.GroupLabel(n.Group), roster.TypeLabel(n.Type)),
	}
	if n.Date != "" {
		lines = append(lines, "日付："+n.Date)
	}
	if n.Venue != "" {
		lines = append(lines, "会場："+n.Venue)
	}
	if len(n.Tags) > 0 {
		lines = append(lines, "タグ："+strings.Join(n.Tags, " "))
	}
	lines = append(lines, "", n.Text)
	return strings.Join(lines, "\n")
}

// ── note clear ─────────────────────────────────────────────────

// Execute implements the go-flags Commander interface for NoteClearCommand.
func (c *NoteClearCommand) Execute(args []string) error {
	store, db, _, err := openDefaultStore(c.globals)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWithStore(store)
}

func (c *NoteClearCommand) executeWithStore(store storage.Store) error {
	if !c.Force && !confirm("Delete ALL notes? This cannot be undone.") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := store.ClearNotes(context.Background()); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	fmt.Println("Deleted all notes.")
	return nil
}
