package jptext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"  Hello  ", "hello"},
		{"ＡＢＣ１２３", "abc123"},
		{"ｔｅｓｔ", "test"},
		{"乃木坂４６", "乃木坂46"},
		{"MiXeD Ｃase", "mixed case"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"ＡＢＣ", "  Hello World  ", "カタカナ", "乃木坂４６", "", "ｱｲｳ"}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", s)
	}
}

func TestKataToHira(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"カタカナ", "かたかな"},
		{"サクラ", "さくら"},
		{"ひらがな", "ひらがな"},
		{"ミーグリ", "みーぐり"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KataToHira(tt.input), "KataToHira(%q)", tt.input)
	}
}

func TestKataToHiraIdempotent(t *testing.T) {
	for _, s := range []string{"カタカナ", "さくらサクラ", "テスト"} {
		once := KataToHira(s)
		assert.Equal(t, once, KataToHira(once))
	}
}

func TestFoldSearch(t *testing.T) {
	// Katakana query matches hiragana reading after folding.
	assert.Equal(t, FoldSearch("さくら"), FoldSearch("サクラ"))
	assert.Equal(t, "abc123", FoldSearch("　ＡＢＣ１２３　"))

	once := FoldSearch("テストＴＥＳＴ")
	assert.Equal(t, once, FoldSearch(once))
}

func TestNewCollatorOrdersJapanese(t *testing.T) {
	c := NewCollator()
	assert.Less(t, c.CompareString("2期", "3期"), 0)
	assert.Equal(t, 0, c.CompareString("4期", "4期"))
}
