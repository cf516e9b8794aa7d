// Package roster holds the static member tables and the label lookups
// around them. Every lookup is total: unknown keys fall back to a documented
// default instead of failing.
package roster

// Groups is the group filter enumeration, in display order.
var Groups = []string{"nogi", "sakura", "hinata"}

// NoteGroups extends Groups with the "common" bucket used by notes and
// checklists that are not tied to one group.
var NoteGroups = []string{"nogi", "sakura", "hinata", "common"}

var groupLabels = map[string]string{
	"nogi":   "乃木坂46",
	"sakura": "櫻坂46",
	"hinata": "日向坂46",
	"common": "共通",
}

// GroupLabel maps a group key to its display label. Unknown keys are
// returned unchanged.
func GroupLabel(key string) string {
	if l, ok := groupLabels[key]; ok {
		return l
	}
	return key
}

// ValidGroup reports whether key is a member group or the "all" sentinel.
func ValidGroup(key string) bool {
	if key == "all" {
		return true
	}
	_, ok := groupLabels[key]
	return ok && key != "common"
}

// NoteTypes is the note type enumeration, in display order.
var NoteTypes = []string{"live", "event", "meet", "stream", "other"}

var typeLabels = map[string]string{
	"live":   "ライブ",
	"event":  "イベント",
	"meet":   "ミーグリ/握手",
	"stream": "配信",
	"other":  "その他",
}

// TypeLabel maps a note type key to its display label. Unknown keys are
// returned unchanged.
func TypeLabel(key string) string {
	if l, ok := typeLabels[key]; ok {
		return l
	}
	return key
}

// defaultHex is the swatch used for color names without a mapping.
const defaultHex = "#94a3b8"

var colorHex = map[string]string{
	"ホワイト": "#ffffff", "白": "#ffffff",
	"ブルー": "#2563eb", "青": "#2563eb",
	"水色": "#38bdf8", "パステルブルー": "#7dd3fc",
	"エメラルドグリーン": "#10b981",
	"グリーン":      "#22c55e", "緑": "#22c55e",
	"ライトグリーン": "#84cc16", "黄緑": "#84cc16",
	"パールグリーン": "#34d399",
	"イエロー":    "#fbbf24", "黄色": "#fbbf24",
	"オレンジ": "#fb923c",
	"ピンク":  "#f472b6", "サクラピンク": "#fb7185", "パッションピンク": "#ec4899",
	"レッド": "#ef4444", "赤": "#ef4444",
	"パープル": "#a855f7", "紫": "#a855f7",
	"バイオレット": "#7c3aed",
	"ターコイズ":  "#14b8a6",
	"黒": "#111827", "消灯": "#111827", "虹色": "#111827",
}

// ColorHex maps an official color name to an approximate hex value,
// defaulting to a neutral gray for unlisted names.
func ColorHex(name string) string {
	if hex, ok := colorHex[name]; ok {
		return hex
	}
	return defaultHex
}
