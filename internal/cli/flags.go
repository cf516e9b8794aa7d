package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config string `long:"config" description:"Path to config file" default:""`
	JSON   bool   `long:"json" description:"Output in JSON format"`
}

// MembersCommand — browse member penlight colors with filters and search.
type MembersCommand struct {
	Group     string `long:"group" short:"g" description:"Group filter: nogi | sakura | hinata | all (default from config)"`
	Gen       string `long:"gen" description:"Generation filter (e.g., 4期)" default:"all"`
	Favs      bool   `long:"favs" description:"Only favorited members"`
	Share     bool   `long:"share" description:"Print the shareable URL for the current filters"`
	CopyShare bool   `long:"copy-share" description:"Copy the shareable URL to the clipboard"`

	Args struct {
		Query []string `positional-arg-name:"QUERY" description:"Free-text search (name, reading, nickname)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// FavCommand — list favorites, or toggle one by key.
type FavCommand struct {
	Group string `long:"group" short:"g" description:"Group filter for the listing" default:"all"`
	Clear bool   `long:"clear" description:"Remove every favorite"`
	Force bool   `long:"force" description:"Skip the confirmation prompt for --clear"`

	Args struct {
		Key string `positional-arg-name:"KEY" description:"Favorite key (group|gen|name) to toggle"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// NoteCommand groups the note subcommands.
type NoteCommand struct {
	Add   NoteAddCommand   `no-flag:"true"`
	Ls    NoteLsCommand    `no-flag:"true"`
	Rm    NoteRmCommand    `no-flag:"true"`
	Copy  NoteCopyCommand  `no-flag:"true"`
	Clear NoteClearCommand `no-flag:"true"`

	globals *GlobalFlags
}

// NoteAddCommand — save a new note.
type NoteAddCommand struct {
	Group string `long:"group" short:"g" description:"Group: nogi | sakura | hinata | common" default:"common"`
	Date  string `long:"date" description:"Date (YYYY-MM-DD, default today)"`
	Venue string `long:"venue" description:"Venue"`
	Type  string `long:"type" description:"Type: live | event | meet | stream | other" default:"other"`
	Text  string `long:"text" description:"Note text (required)"`
	Tags  string `long:"tags" description:"Space-separated tags"`
	Force bool   `long:"force" description:"Save even when the text looks like personal information"`

	globals *GlobalFlags
}

// NoteLsCommand — list notes with filter and search.
type NoteLsCommand struct {
	Group string `long:"group" short:"g" description:"Group filter" default:"all"`

	Args struct {
		Query []string `positional-arg-name:"QUERY" description:"Free-text search (venue, text, tags)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// NoteRmCommand — delete one note.
type NoteRmCommand struct {
	Force bool `long:"force" description:"Skip the confirmation prompt"`

	Args struct {
		ID string `positional-arg-name:"ID" required:"yes" description:"Note ID"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// NoteCopyCommand — copy a formatted note to the clipboard.
type NoteCopyCommand struct {
	Args struct {
		ID string `positional-arg-name:"ID" required:"yes" description:"Note ID"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// NoteClearCommand — delete all notes.
type NoteClearCommand struct {
	Force bool `long:"force" description:"Skip the confirmation prompt"`

	globals *GlobalFlags
}

// ChecklistCommand groups the checklist subcommands.
type ChecklistCommand struct {
	Show    ChecklistShowCommand    `no-flag:"true"`
	Toggle  ChecklistToggleCommand  `no-flag:"true"`
	Add     ChecklistAddCommand     `no-flag:"true"`
	Rm      ChecklistRmCommand      `no-flag:"true"`
	Reset   ChecklistResetCommand   `no-flag:"true"`
	Uncheck ChecklistUncheckCommand `no-flag:"true"`

	globals *GlobalFlags
}

// checklistGroup is embedded by every checklist subcommand.
type checklistGroup struct {
	Group string `long:"group" short:"g" description:"Checklist group: nogi | sakura | hinata | common" default:"common"`
}

// ChecklistShowCommand — show the group's checklist with progress.
type ChecklistShowCommand struct {
	checklistGroup
	globals *GlobalFlags
}

// ChecklistToggleCommand — toggle one item by number.
type ChecklistToggleCommand struct {
	checklistGroup
	Args struct {
		Number int `positional-arg-name:"N" required:"yes" description:"Item number from 'checklist show'"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// ChecklistAddCommand — add a user item to the top of the list.
type ChecklistAddCommand struct {
	checklistGroup
	Args struct {
		Text []string `positional-arg-name:"TEXT" required:"yes" description:"Item text"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// ChecklistRmCommand — remove a user-added item by number.
type ChecklistRmCommand struct {
	checklistGroup
	Force bool `long:"force" description:"Skip the confirmation prompt"`

	Args struct {
		Number int `positional-arg-name:"N" required:"yes" description:"Item number from 'checklist show'"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// ChecklistResetCommand — replace the checklist with a fresh template.
type ChecklistResetCommand struct {
	checklistGroup
	Force bool `long:"force" description:"Skip the confirmation prompt"`

	globals *GlobalFlags
}

// ChecklistUncheckCommand — clear the done flag on every item.
type ChecklistUncheckCommand struct {
	checklistGroup
	globals *GlobalFlags
}

// ExportCommand — write all notes to a JSON backup file.
type ExportCommand struct {
	Out string `long:"out" short:"o" description:"Output path (default from config)"`

	globals *GlobalFlags
}

// ImportCommand — append notes from a JSON backup file.
type ImportCommand struct {
	Yes bool `long:"yes" description:"Skip the confirmation prompt"`

	Args struct {
		Path string `positional-arg-name:"FILE" required:"yes" description:"Backup file to import"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// ThemeCommand — show, set, or toggle the stored theme.
type ThemeCommand struct {
	Args struct {
		Action string `positional-arg-name:"ACTION" description:"light | dark | toggle (omit to show)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// StatusCommand — show database location and collection statistics.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// WipeCommand — delete ALL stored data with safety confirmation.
type WipeCommand struct {
	Force bool `long:"force" description:"Skip the safety confirmation prompt"`

	globals *GlobalFlags
}
