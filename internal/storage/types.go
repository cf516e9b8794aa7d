package storage

// Collection keys. Each key maps to one JSON document in the collections
// table and is always read and written whole.
const (
	KeyTheme     = "theme"
	KeyNotes     = "notes"
	KeyChecklist = "checklist"
	KeyFavorites = "favorites"
)

// Note is one saved live/event note. Notes are immutable once saved;
// edits are delete + recreate.
type Note struct {
	ID        string   `json:"id"`
	Group     string   `json:"group"`
	Date      string   `json:"date,omitempty"`
	Venue     string   `json:"venue,omitempty"`
	Type      string   `json:"type"`
	Text      string   `json:"text"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt int64    `json:"createdAt"` // unix milliseconds
}

// ChecklistItem is one row of a per-group packing checklist. Built-in items
// come from the template and can only have Done toggled; user-added items
// may also be removed.
type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	BuiltIn bool   `json:"builtIn"`
}

// ChecklistTemplate seeds a group's checklist on first access.
var ChecklistTemplate = []string{
	"チケット（電子/紙）",
	"身分証（必須）",
	"公式ペンライト",
	"予備電池/モバイルバッテリー",
	"財布/交通IC/現金少し",
	"飲み物",
	"タオル",
	"防寒/暑さ対策",
	"雨具",
	"双眼鏡（必要なら）",
	"グッズ用袋/ジップ袋",
	"待ち時間対策（軽食/充電）",
}

// Stats summarizes the stored collections.
type Stats struct {
	Notes          int    `json:"notes"`
	Favorites      int    `json:"favorites"`
	ChecklistDone  int    `json:"checklist_done"`
	ChecklistTotal int    `json:"checklist_total"`
	Theme          string `json:"theme"`
}
