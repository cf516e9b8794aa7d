// Package transfer reads and writes the notes backup file:
// {"version":1,"exportedAt":"…","notes":[…]}. Imported notes are rebuilt
// field by field rather than trusted verbatim.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/sakamichi-tools/penlight/internal/storage"
)

// Version is the backup file format version.
const Version = 1

// DefaultExportName is the default backup filename.
const DefaultExportName = "penlight_notes_export.json"

// maxVenueLen caps the venue field of imported notes.
const maxVenueLen = 80

// File is the backup file shape.
type File struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exportedAt"`
	Notes      []storage.Note `json:"notes"`
}

// Export encodes notes into backup file bytes.
func Export(notes []storage.Note, now time.Time) ([]byte, error) {
	if notes == nil {
		notes = []storage.Note{}
	}
	f := File{
		Version:    Version,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Notes:      notes,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// WriteFile writes the backup atomically so a failed export never leaves a
// truncated file behind.
func WriteFile(path string, notes []storage.Note, now time.Time) error {
	data, err := Export(notes, now)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write backup %s: %w", path, err)
	}
	return nil
}

// Parse validates backup bytes and rebuilds each note defensively: missing
// fields get defaults, venue is truncated, tags are coerced to strings.
// Non-object JSON or a missing notes array is an error; nothing is written.
func Parse(data []byte, now time.Time) ([]storage.Note, error) {
	var f struct {
		Notes []json.RawMessage `json:"notes"`
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid backup file: %w", err)
	}
	if f.Notes == nil {
		return nil, fmt.Errorf("invalid backup file: missing notes array")
	}

	notes := make([]storage.Note, 0, len(f.Notes))
	for _, raw := range f.Notes {
		notes = append(notes, rebuildNote(raw, now))
	}
	return notes, nil
}

// ReadFile parses a backup from disk.
func ReadFile(path string, now time.Time) ([]storage.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", path, err)
	}
	return Parse(data, now)
}

// rebuildNote reconstructs one note from untrusted JSON. A non-object entry
// degrades to an all-defaults note rather than failing the import.
func rebuildNote(raw json.RawMessage, now time.Time) storage.Note {
	var m map[string]any
	_ = json.Unmarshal(raw, &m)

	n := storage.Note{
		ID:        stringField(m, "id"),
		Group:     stringField(m, "group"),
		Date:      stringField(m, "date"),
		Venue:     truncate(stringField(m, "venue"), maxVenueLen),
		Type:      stringField(m, "type"),
		Text:      stringField(m, "text"),
		Tags:      tagsField(m),
		CreatedAt: int64Field(m, "createdAt"),
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Group == "" {
		n.Group = "common"
	}
	if n.Type == "" {
		n.Type = "other"
	}
	if n.CreatedAt == 0 {
		n.CreatedAt = now.UnixMilli()
	}
	return n
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func int64Field(m map[string]any, key string) int64 {
	if f, ok := m[key].(float64); ok {
		return int64(f)
	}
	return 0
}

func tagsField(m map[string]any) []string {
	list, ok := m["tags"].([]any)
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
			continue
		}
		tags = append(tags, fmt.Sprint(v))
	}
	return tags
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
