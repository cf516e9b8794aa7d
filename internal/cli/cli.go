// Package cli implements the penlight command line: member penlight color
// lookup, favorites, live notes, packing checklists, and notes backup,
// all stored in a local SQLite database.
package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Members   *MembersCommand
	Fav       *FavCommand
	Note      *NoteCommand
	Checklist *ChecklistCommand
	Export    *ExportCommand
	Import    *ImportCommand
	Theme     *ThemeCommand
	Status    *StatusCommand
	Wipe      *WipeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "penlight"
	parser.LongDescription = "Sakamichi fan companion: member penlight colors, favorites, live notes, and packing checklists kept on this device."

	cmds := &commands{
		Members:   &MembersCommand{globals: &globals},
		Fav:       &FavCommand{globals: &globals},
		Note:      &NoteCommand{globals: &globals},
		Checklist: &ChecklistCommand{globals: &globals},
		Export:    &ExportCommand{globals: &globals},
		Import:    &ImportCommand{globals: &globals},
		Theme:     &ThemeCommand{globals: &globals},
		Status:    &StatusCommand{globals: &globals, version: version},
		Wipe:      &WipeCommand{globals: &globals},
	}

	cmds.Note.Add.globals = &globals
	cmds.Note.Ls.globals = &globals
	cmds.Note.Rm.globals = &globals
	cmds.Note.Copy.globals = &globals
	cmds.Note.Clear.globals = &globals

	cmds.Checklist.Show.globals = &globals
	cmds.Checklist.Toggle.globals = &globals
	cmds.Checklist.Add.globals = &globals
	cmds.Checklist.Rm.globals = &globals
	cmds.Checklist.Reset.globals = &globals
	cmds.Checklist.Uncheck.globals = &globals

	parser.AddCommand("members", "Browse member penlight colors", "Browse member penlight colors with group/generation filters and free-text search.", cmds.Members)
	parser.AddCommand("fav", "List or toggle favorite members", "List favorite members, or toggle one by its key (group|gen|name).", cmds.Fav)

	note, _ := parser.AddCommand("note", "Manage live/event notes", "Manage live/event notes stored on this device.", cmds.Note)
	if note != nil {
		note.AddCommand("add", "Save a new note", "Save a new note. The note text is required.", &cmds.Note.Add)
		note.AddCommand("ls", "List notes", "List notes with optional group filter and free-text search.", &cmds.Note.Ls)
		note.AddCommand("rm", "Delete a note", "Delete one note by ID.", &cmds.Note.Rm)
		note.AddCommand("copy", "Copy a note to the clipboard", "Copy a formatted note to the clipboard, printing it as fallback.", &cmds.Note.Copy)
		note.AddCommand("clear", "Delete ALL notes", "Delete all notes. Destructive operation.", &cmds.Note.Clear)
	}

	check, _ := parser.AddCommand("checklist", "Manage packing checklists", "Manage per-group packing checklists seeded from the built-in template.", cmds.Checklist)
	if check != nil {
		check.AddCommand("show", "Show the checklist", "Show the group's checklist with progress.", &cmds.Checklist.Show)
		check.AddCommand("toggle", "Toggle an item", "Toggle an item's done state by its number.", &cmds.Checklist.Toggle)
		check.AddCommand("add", "Add an item", "Add a user item to the top of the checklist.", &cmds.Checklist.Add)
		check.AddCommand("rm", "Remove a user item", "Remove a user-added item by its number. Built-in items are protected.", &cmds.Checklist.Rm)
		check.AddCommand("reset", "Reset to the template", "Replace the checklist with a fresh template. User items are lost.", &cmds.Checklist.Reset)
		check.AddCommand("uncheck", "Uncheck every item", "Clear the done flag on every item.", &cmds.Checklist.Uncheck)
	}

	parser.AddCommand("export", "Export notes to a JSON backup", "Export all notes to a JSON backup file.", cmds.Export)
	parser.AddCommand("import", "Import notes from a JSON backup", "Append notes from a JSON backup file after confirmation.", cmds.Import)
	parser.AddCommand("theme", "Show or change the theme", "Show the stored theme, set it, or toggle between light and dark.", cmds.Theme)
	parser.AddCommand("status", "Show stored-data statistics", "Show database location and collection statistics.", cmds.Status)
	parser.AddCommand("wipe", "Delete ALL stored data", "Delete ALL stored data (notes, checklists, favorites, theme). Destructive operation with safety prompt.", cmds.Wipe)

	return parser, &globals, cmds
}

// Run is the main entry point for the penlight CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("penlight %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
