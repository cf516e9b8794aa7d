package transfer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakamichi-tools/penlight/internal/storage"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestExportShape(t *testing.T) {
	notes := []storage.Note{
		{ID: "a", Group: "nogi", Type: "live", Text: "テスト", CreatedAt: 123},
	}

	data, err := Export(notes, testNow)
	require.NoError(t, err)

	var f File
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, 1, f.Version)
	assert.Equal(t, "2026-08-30T12:00:00Z", f.ExportedAt)
	require.Len(t, f.Notes, 1)
	assert.Equal(t, notes[0], f.Notes[0])
}

func TestExportEmptyNotesIsArray(t *testing.T) {
	data, err := Export(nil, testNow)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"notes": []`)
}

func TestExportParseRoundtrip(t *testing.T) {
	notes := []storage.Note{
		{ID: "a", Group: "nogi", Date: "2026-08-01", Venue: "代々木", Type: "live", Text: "テスト", Tags: []string{"夏"}, CreatedAt: 5},
		{ID: "b", Group: "common", Type: "other", Text: "二件目", CreatedAt: 6},
	}

	data, err := Export(notes, testNow)
	require.NoError(t, err)

	got, err := Parse(data, testNow)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestParseRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not json",
		`"just a string"`,
		`[1,2,3]`,
		`{}`,
		`{"version":1}`,
		`{"notes":"nope"}`,
		`{"notes":123}`,
	}
	for _, input := range bad {
		_, err := Parse([]byte(input), testNow)
		assert.Error(t, err, "Parse(%q) should fail", input)
	}
}

func TestParseRebuildsDefensively(t *testing.T) {
	longVenue := strings.Repeat("あ", 120)
	input := `{"version":1,"notes":[
		{"text":"最低限"},
		{"id":"keep","group":"nogi","type":"live","text":"x","venue":"` + longVenue + `","tags":["a",1,true],"createdAt":42}
	]}`

	got, err := Parse([]byte(input), testNow)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Missing fields are defaulted.
	first := got[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "common", first.Group)
	assert.Equal(t, "other", first.Type)
	assert.Equal(t, "最低限", first.Text)
	assert.Equal(t, testNow.UnixMilli(), first.CreatedAt)

	// Venue truncated to 80 runes, tags coerced to strings.
	second := got[1]
	assert.Equal(t, "keep", second.ID)
	assert.Len(t, []rune(second.Venue), 80)
	assert.Equal(t, []string{"a", "1", "true"}, second.Tags)
	assert.Equal(t, int64(42), second.CreatedAt)
}

func TestParseNonObjectNoteDegradesToDefaults(t *testing.T) {
	got, err := Parse([]byte(`{"notes":["oops", 7]}`), testNow)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, n := range got {
		assert.NotEmpty(t, n.ID)
		assert.Equal(t, "common", n.Group)
		assert.Equal(t, "other", n.Type)
	}
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	notes := []storage.Note{{ID: "a", Group: "nogi", Type: "live", Text: "x", CreatedAt: 1}}

	require.NoError(t, WriteFile(path, notes, testNow))

	got, err := ReadFile(path, testNow)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"), testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
