package storage

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore creates a migrated in-memory store for testing.
func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	runner := NewMigrationRunner(db)
	require.NoError(t, runner.Run())

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

// --- Notes ---

func TestAddNote_ListNotes_Roundtrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	note := &Note{
		Group: "nogi",
		Date:  "2026-08-30",
		Venue: "東京ドーム",
		Type:  "live",
		Text:  "テスト",
		Tags:  []string{"全ツ", "夏"},
	}
	require.NoError(t, store.AddNote(ctx, note))

	assert.NotEmpty(t, note.ID, "note ID should be populated")
	assert.NotZero(t, note.CreatedAt, "createdAt should be set")

	// Simulated reload: a fresh read must return exactly the saved note.
	got, err := store.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *note, got[0])
}

func TestAddNote_GeneratesUniqueIDs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	n1 := &Note{Group: "nogi", Type: "live", Text: "a"}
	n2 := &Note{Group: "sakura", Type: "event", Text: "b"}
	require.NoError(t, store.AddNote(ctx, n1))
	require.NoError(t, store.AddNote(ctx, n2))

	assert.NotEqual(t, n1.ID, n2.ID)
}

func TestListNotes_EmptyStore(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestDeleteNote(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	n1 := &Note{Group: "nogi", Type: "live", Text: "keep"}
	n2 := &Note{Group: "nogi", Type: "live", Text: "drop"}
	require.NoError(t, store.AddNote(ctx, n1))
	require.NoError(t, store.AddNote(ctx, n2))

	require.NoError(t, store.DeleteNote(ctx, n2.ID))

	got, err := store.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].Text)
}

func TestDeleteNote_NotFound(t *testing.T) {
	store := openTestStore(t)
	err := store.DeleteNote(context.Background(), "missing")
	assert.Error(t, err)
}

func TestClearNotes(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddNote(ctx, &Note{Group: "nogi", Type: "live", Text: "x"}))
	require.NoError(t, store.ClearNotes(ctx))

	got, err := store.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppendNotes(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddNote(ctx, &Note{ID: "a", Group: "nogi", Type: "live", Text: "既存", CreatedAt: 1}))
	require.NoError(t, store.AppendNotes(ctx, []Note{
		{ID: "b", Group: "common", Type: "other", Text: "追加1", CreatedAt: 2},
		{ID: "c", Group: "common", Type: "other", Text: "追加2", CreatedAt: 3},
	}))

	got, err := store.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "既存", got[0].Text)
	assert.Equal(t, "追加2", got[2].Text)
}

func TestMalformedStoredNotes_FailClosed(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// Corrupt the stored document directly.
	_, err := store.db.Exec(
		`INSERT INTO collections (key, value) VALUES (?, ?)`, KeyNotes, "{not json",
	)
	require.NoError(t, err)

	got, err := store.ListNotes(ctx)
	require.NoError(t, err, "malformed stored data must not surface an error")
	assert.Empty(t, got)

	// Writing after a failed read replaces the corrupt document.
	require.NoError(t, store.AddNote(ctx, &Note{Group: "nogi", Type: "live", Text: "fresh"}))
	got, err = store.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// --- Checklist ---

func TestChecklist_SeedsTemplateOnFirstAccess(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	items, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	require.Len(t, items, len(ChecklistTemplate))

	for i, item := range items {
		assert.Equal(t, ChecklistTemplate[i], item.Text)
		assert.True(t, item.BuiltIn)
		assert.False(t, item.Done)
		assert.NotEmpty(t, item.ID)
	}

	// The seed is persisted: the second read returns identical IDs.
	again, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestChecklist_GroupsAreIndependent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	nogi, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	_, err = store.ToggleItem(ctx, "nogi", nogi[0].ID)
	require.NoError(t, err)

	sakura, err := store.Checklist(ctx, "sakura")
	require.NoError(t, err)
	assert.False(t, sakura[0].Done)
}

func TestToggleItem(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	items, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	id := items[0].ID

	done, err := store.ToggleItem(ctx, "nogi", id)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = store.ToggleItem(ctx, "nogi", id)
	require.NoError(t, err)
	assert.False(t, done)

	_, err = store.ToggleItem(ctx, "nogi", "missing")
	assert.Error(t, err)
}

func TestAddItem_PrependsUserItem(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	item, err := store.AddItem(ctx, "common", "うちわ")
	require.NoError(t, err)
	assert.False(t, item.BuiltIn)

	items, err := store.Checklist(ctx, "common")
	require.NoError(t, err)
	require.Len(t, items, len(ChecklistTemplate)+1)
	assert.Equal(t, "うちわ", items[0].Text)
}

func TestRemoveItem_BuiltInProtected(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	items, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)

	err = store.RemoveItem(ctx, "nogi", items[0].ID)
	assert.Error(t, err, "built-in items must not be removable")

	user, err := store.AddItem(ctx, "nogi", "レインコート")
	require.NoError(t, err)
	require.NoError(t, store.RemoveItem(ctx, "nogi", user.ID))

	after, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	assert.Len(t, after, len(ChecklistTemplate))
}

func TestResetChecklist(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "nogi", "追加の荷物")
	require.NoError(t, err)
	require.NoError(t, store.ResetChecklist(ctx, "nogi"))

	items, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	require.Len(t, items, len(ChecklistTemplate))
	for _, item := range items {
		assert.True(t, item.BuiltIn)
		assert.False(t, item.Done)
	}
}

func TestUncheckAll(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	items, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	for _, item := range items[:3] {
		_, err := store.ToggleItem(ctx, "nogi", item.ID)
		require.NoError(t, err)
	}

	require.NoError(t, store.UncheckAll(ctx, "nogi"))

	after, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	for _, item := range after {
		assert.False(t, item.Done)
	}
}

// --- Favorites ---

func TestToggleFavorite_AddsToFront(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	on, err := store.ToggleFavorite(ctx, "nogi|4期|遠藤さくら")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = store.ToggleFavorite(ctx, "sakura|2期|森田ひかる")
	require.NoError(t, err)
	assert.True(t, on)

	favs, err := store.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sakura|2期|森田ひかる", "nogi|4期|遠藤さくら"}, favs)
}

func TestToggleFavorite_TwiceIsNetNoop(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	key := "nogi|5期|井上和"
	_, err := store.ToggleFavorite(ctx, key)
	require.NoError(t, err)
	on, err := store.ToggleFavorite(ctx, key)
	require.NoError(t, err)
	assert.False(t, on)

	favs, err := store.Favorites(ctx)
	require.NoError(t, err)
	assert.NotContains(t, favs, key)
	assert.Empty(t, favs)
}

func TestClearFavorites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.ToggleFavorite(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, store.ClearFavorites(ctx))

	favs, err := store.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

// --- Theme ---

func TestTheme_DefaultAndSet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme)

	require.NoError(t, store.SetTheme(ctx, "light"))
	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	assert.Error(t, store.SetTheme(ctx, "neon"))
}

// --- Stats / Wipe ---

func TestStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddNote(ctx, &Note{Group: "nogi", Type: "live", Text: "x"}))
	_, err := store.ToggleFavorite(ctx, "k")
	require.NoError(t, err)
	items, err := store.Checklist(ctx, "nogi")
	require.NoError(t, err)
	_, err = store.ToggleItem(ctx, "nogi", items[0].ID)
	require.NoError(t, err)

	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Notes)
	assert.Equal(t, 1, st.Favorites)
	assert.Equal(t, 1, st.ChecklistDone)
	assert.Equal(t, len(ChecklistTemplate), st.ChecklistTotal)
}

func TestWipe(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddNote(ctx, &Note{Group: "nogi", Type: "live", Text: "x"}))
	_, err := store.ToggleFavorite(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, store.SetTheme(ctx, "light"))

	require.NoError(t, store.Wipe(ctx))

	notes, err := store.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	favs, err := store.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme)
}
