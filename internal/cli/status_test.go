package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakamichi-tools/penlight/internal/storage"
)

func TestStatusCommand_HumanOutput(t *testing.T) {
	store, cleanup := testStore(t)
	defer cleanup()

	addTestNote(t, store, "nogi", "2026-08-30", "", "ステータス確認")
	_, err := store.ToggleFavorite(context.Background(), "nogi|4期|遠藤さくら")
	require.NoError(t, err)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "1.0.0"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, "/tmp/penlight.db"))
	})

	assert.Contains(t, out, "penlight 1.0.0")
	assert.Contains(t, out, "/tmp/penlight.db")
	assert.Contains(t, out, "Notes:     1")
	assert.Contains(t, out, "Favorites: 1")
	assert.Contains(t, out, "Theme:     dark")
}

func TestStatusCommand_JSONOutput(t *testing.T) {
	store, cleanup := testStore(t)
	defer cleanup()

	cmd := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "1.0.0"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, "/tmp/penlight.db"))
	})

	var decoded struct {
		Version  string         `json:"version"`
		Database string         `json:"database"`
		Stats    *storage.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.0.0", decoded.Version)
	assert.Equal(t, "/tmp/penlight.db", decoded.Database)
	require.NotNil(t, decoded.Stats)
	assert.Equal(t, "dark", decoded.Stats.Theme)
}
