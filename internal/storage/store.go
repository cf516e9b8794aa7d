// Package storage persists the user's collections (notes, checklists,
// favorites, theme) in a local SQLite database. Every collection is stored
// as one JSON document and every operation is a full read-modify-write of
// that document; malformed stored JSON fails closed to the empty default
// instead of surfacing an error.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store defines the record-store operations used by the CLI.
type Store interface {
	ListNotes(ctx context.Context) ([]Note, error)
	AddNote(ctx context.Context, note *Note) error
	DeleteNote(ctx context.Context, id string) error
	ClearNotes(ctx context.Context) error
	AppendNotes(ctx context.Context, notes []Note) error

	Checklist(ctx context.Context, group string) ([]ChecklistItem, error)
	ToggleItem(ctx context.Context, group, id string) (bool, error)
	AddItem(ctx context.Context, group, text string) (*ChecklistItem, error)
	RemoveItem(ctx context.Context, group, id string) error
	ResetChecklist(ctx context.Context, group string) error
	UncheckAll(ctx context.Context, group string) error

	Favorites(ctx context.Context) ([]string, error)
	ToggleFavorite(ctx context.Context, key string) (bool, error)
	ClearFavorites(ctx context.Context) error

	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error

	Stats(ctx context.Context) (*Stats, error)
	Wipe(ctx context.Context) error
	Close() error
}

// DefaultTheme is returned when no theme has been stored yet.
const DefaultTheme = "dark"

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Prepared statements
	getValue *sql.Stmt
	setValue *sql.Stmt
}

// NewSQLiteStore creates a SQLiteStore from an already-opened and migrated
// database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.getValue, err = s.db.Prepare(`SELECT value FROM collections WHERE key = ?`)
	if err != nil {
		return err
	}

	s.setValue, err = s.db.Prepare(`
		INSERT INTO collections (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}

	return nil
}

// load reads one collection document into a fresh value of type T. A missing
// key or malformed stored JSON yields the fallback, never an error.
func load[T any](ctx context.Context, s *SQLiteStore, key string, fallback T) (T, error) {
	var raw string
	err := s.getValue.QueryRowContext(ctx, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("read collection %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		// Malformed stored data fails closed to the caller's default.
		return fallback, nil
	}
	return v, nil
}

// save writes one collection document whole.
func save(ctx context.Context, s *SQLiteStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	if _, err := s.setValue.ExecContext(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

// newID generates a unique token for notes and checklist items.
func newID() string {
	return uuid.NewString()
}

// nowMillis matches the createdAt unit used by stored notes.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// ── Notes ──────────────────────────────────────────────────────

// ListNotes returns a snapshot of all stored notes in insertion order.
func (s *SQLiteStore) ListNotes(ctx context.Context) ([]Note, error) {
	return load(ctx, s, KeyNotes, []Note{})
}

// AddNote appends a note. The note's ID and CreatedAt are populated when
// empty.
func (s *SQLiteStore) AddNote(ctx context.Context, note *Note) error {
	if note.ID == "" {
		note.ID = newID()
	}
	if note.CreatedAt == 0 {
		note.CreatedAt = nowMillis()
	}

	notes, err := s.ListNotes(ctx)
	if err != nil {
		return err
	}
	notes = append(notes, *note)
	return save(ctx, s, KeyNotes, notes)
}

// DeleteNote removes a note by ID.
func (s *SQLiteStore) DeleteNote(ctx context.Context, id string) error {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, n := range notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("note %s not found", id)
	}

	notes = append(notes[:idx], notes[idx+1:]...)
	return save(ctx, s, KeyNotes, notes)
}

// ClearNotes deletes all notes.
func (s *SQLiteStore) ClearNotes(ctx context.Context) error {
	return save(ctx, s, KeyNotes, []Note{})
}

// AppendNotes appends already-reconstructed notes (import). The existing
// collection is untouched when notes is empty.
func (s *SQLiteStore) AppendNotes(ctx context.Context, notes []Note) error {
	if len(notes) == 0 {
		return nil
	}
	cur, err := s.ListNotes(ctx)
	if err != nil {
		return err
	}
	cur = append(cur, notes...)
	return save(ctx, s, KeyNotes, cur)
}

// ── Checklist ──────────────────────────────────────────────────

func templateItems() []ChecklistItem {
	items := make([]ChecklistItem, len(ChecklistTemplate))
	for i, text := range ChecklistTemplate {
		items[i] = ChecklistItem{ID: newID(), Text: text, BuiltIn: true}
	}
	return items
}

func (s *SQLiteStore) loadChecklists(ctx context.Context) (map[string][]ChecklistItem, error) {
	return load(ctx, s, KeyChecklist, map[string][]ChecklistItem{})
}

// Checklist returns the group's items, lazily seeding (and persisting) the
// template on first access.
func (s *SQLiteStore) Checklist(ctx context.Context, group string) ([]ChecklistItem, error) {
	all, err := s.loadChecklists(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := all[group]; !ok {
		all[group] = templateItems()
		if err := save(ctx, s, KeyChecklist, all); err != nil {
			return nil, err
		}
	}
	return all[group], nil
}

// mutateChecklist runs fn over the group's items (seeding first if needed)
// and persists the result.
func (s *SQLiteStore) mutateChecklist(ctx context.Context, group string, fn func([]ChecklistItem) ([]ChecklistItem, error)) error {
	if _, err := s.Checklist(ctx, group); err != nil {
		return err
	}
	all, err := s.loadChecklists(ctx)
	if err != nil {
		return err
	}
	items, err := fn(all[group])
	if err != nil {
		return err
	}
	all[group] = items
	return save(ctx, s, KeyChecklist, all)
}

// ToggleItem flips an item's done flag and returns the new value.
func (s *SQLiteStore) ToggleItem(ctx context.Context, group, id string) (bool, error) {
	var done bool
	err := s.mutateChecklist(ctx, group, func(items []ChecklistItem) ([]ChecklistItem, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Done = !items[i].Done
				done = items[i].Done
				return items, nil
			}
		}
		return nil, fmt.Errorf("checklist item %s not found", id)
	})
	return done, err
}

// AddItem prepends a user item to the group's checklist.
func (s *SQLiteStore) AddItem(ctx context.Context, group, text string) (*ChecklistItem, error) {
	item := ChecklistItem{ID: newID(), Text: text}
	err := s.mutateChecklist(ctx, group, func(items []ChecklistItem) ([]ChecklistItem, error) {
		return append([]ChecklistItem{item}, items...), nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem removes a user-added item. Built-in items are protected.
func (s *SQLiteStore) RemoveItem(ctx context.Context, group, id string) error {
	return s.mutateChecklist(ctx, group, func(items []ChecklistItem) ([]ChecklistItem, error) {
		for i, item := range items {
			if item.ID != id {
				continue
			}
			if item.BuiltIn {
				return nil, fmt.Errorf("item %s is built-in and cannot be removed", id)
			}
			return append(items[:i], items[i+1:]...), nil
		}
		return nil, fmt.Errorf("checklist item %s not found", id)
	})
}

// ResetChecklist replaces the group's items with a fresh template.
func (s *SQLiteStore) ResetChecklist(ctx context.Context, group string) error {
	all, err := s.loadChecklists(ctx)
	if err != nil {
		return err
	}
	all[group] = templateItems()
	return save(ctx, s, KeyChecklist, all)
}

// UncheckAll clears the done flag on every item in the group.
func (s *SQLiteStore) UncheckAll(ctx context.Context, group string) error {
	return s.mutateChecklist(ctx, group, func(items []ChecklistItem) ([]ChecklistItem, error) {
		for i := range items {
			items[i].Done = false
		}
		return items, nil
	})
}

// ── Favorites ──────────────────────────────────────────────────

// Favorites returns the favorite keys, most recently added first.
func (s *SQLiteStore) Favorites(ctx context.Context) ([]string, error) {
	return load(ctx, s, KeyFavorites, []string{})
}

// ToggleFavorite adds key to the front when absent and removes it when
// present. Returns true when the key ended up favorited.
func (s *SQLiteStore) ToggleFavorite(ctx context.Context, key string) (bool, error) {
	favs, err := s.Favorites(ctx)
	if err != nil {
		return false, err
	}

	for i, k := range favs {
		if k == key {
			favs = append(favs[:i], favs[i+1:]...)
			return false, save(ctx, s, KeyFavorites, favs)
		}
	}

	favs = append([]string{key}, favs...)
	return true, save(ctx, s, KeyFavorites, favs)
}

// ClearFavorites removes every favorite.
func (s *SQLiteStore) ClearFavorites(ctx context.Context) error {
	return save(ctx, s, KeyFavorites, []string{})
}

// ── Theme ──────────────────────────────────────────────────────

// Theme returns the stored theme, or DefaultTheme when unset or invalid.
func (s *SQLiteStore) Theme(ctx context.Context) (string, error) {
	theme, err := load(ctx, s, KeyTheme, DefaultTheme)
	if err != nil {
		return "", err
	}
	if theme != "light" && theme != "dark" {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme stores the theme.
func (s *SQLiteStore) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("invalid theme %q (use light or dark)", theme)
	}
	return save(ctx, s, KeyTheme, theme)
}

// ── Stats / Wipe ───────────────────────────────────────────────

// Stats summarizes all stored collections.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	favs, err := s.Favorites(ctx)
	if err != nil {
		return nil, err
	}
	lists, err := s.loadChecklists(ctx)
	if err != nil {
		return nil, err
	}
	theme, err := s.Theme(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{Notes: len(notes), Favorites: len(favs), Theme: theme}
	for _, items := range lists {
		st.ChecklistTotal += len(items)
		for _, it := range items {
			if it.Done {
				st.ChecklistDone++
			}
		}
	}
	return st, nil
}

// Wipe deletes every collection. The schema stays in place.
func (s *SQLiteStore) Wipe(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM collections"); err != nil {
		return fmt.Errorf("wipe collections: %w", err)
	}
	return nil
}

// Close releases all prepared statements. The underlying *sql.DB is NOT
// closed; that is the caller's responsibility.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.getValue, s.setValue} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}
