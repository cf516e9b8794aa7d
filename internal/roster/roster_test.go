package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLabel(t *testing.T) {
	assert.Equal(t, "乃木坂46", GroupLabel("nogi"))
	assert.Equal(t, "櫻坂46", GroupLabel("sakura"))
	assert.Equal(t, "日向坂46", GroupLabel("hinata"))
	assert.Equal(t, "共通", GroupLabel("common"))
	assert.Equal(t, "unknown", GroupLabel("unknown"))
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "ライブ", TypeLabel("live"))
	assert.Equal(t, "ミーグリ/握手", TypeLabel("meet"))
	assert.Equal(t, "mystery", TypeLabel("mystery"))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ffffff", ColorHex("白"))
	assert.Equal(t, "#ffffff", ColorHex("ホワイト"))
	assert.Equal(t, "#ef4444", ColorHex("赤"))
	// Unknown color names fall back to the neutral swatch.
	assert.Equal(t, "#94a3b8", ColorHex("未知の色"))
}

func TestValidGroup(t *testing.T) {
	assert.True(t, ValidGroup("all"))
	assert.True(t, ValidGroup("nogi"))
	assert.False(t, ValidGroup("common"))
	assert.False(t, ValidGroup("keyaki"))
}

func TestFavKey(t *testing.T) {
	m := Member{Group: "nogi", Gen: "4期", Name: "遠藤さくら"}
	assert.Equal(t, "nogi|4期|遠藤さくら", FavKey(m))
}

func TestFavKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range All() {
		key := FavKey(m)
		assert.False(t, seen[key], "duplicate favorite key %s", key)
		seen[key] = true
	}
}

func TestGens(t *testing.T) {
	assert.Equal(t, []string{"3期", "4期", "5期"}, Gens("nogi"))
	assert.Equal(t, []string{"2期", "3期"}, Gens("sakura"))
	assert.Equal(t, []string{"2期", "3期", "4期", "5期"}, Gens("all"))
}

func TestValidGen(t *testing.T) {
	assert.True(t, ValidGen("nogi", "all"))
	assert.True(t, ValidGen("nogi", "4期"))
	assert.False(t, ValidGen("sakura", "5期"))
}

func TestSearchGroupFilter(t *testing.T) {
	got := Search("sakura", "all", "")
	require.NotEmpty(t, got)
	for _, m := range got {
		assert.Equal(t, "sakura", m.Group)
	}
}

func TestSearchGenFilter(t *testing.T) {
	got := Search("nogi", "3期", "")
	require.Len(t, got, 4)
	for _, m := range got {
		assert.Equal(t, "3期", m.Gen)
	}
}

func TestSearchByKanaReading(t *testing.T) {
	got := Search("all", "all", "えんどうさくら")
	require.Len(t, got, 1)
	assert.Equal(t, "遠藤さくら", got[0].Name)
}

func TestSearchKatakanaQueryMatchesHiragana(t *testing.T) {
	got := Search("all", "all", "エンドウサクラ")
	require.Len(t, got, 1)
	assert.Equal(t, "遠藤さくら", got[0].Name)
}

func TestSearchByNickname(t *testing.T) {
	got := Search("all", "all", "かっきー")
	require.Len(t, got, 1)
	assert.Equal(t, "賀喜遥香", got[0].Name)
}

func TestSearchEmptyQueryReturnsWholeGroupSorted(t *testing.T) {
	got := Search("all", "all", "")
	assert.Len(t, got, len(All()))

	// Sorted by group first, generations ascending within a group.
	lastGroup := ""
	for _, m := range got {
		assert.GreaterOrEqual(t, m.Group, lastGroup)
		lastGroup = m.Group
	}
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search("all", "all", "存在しないメンバー"))
}
