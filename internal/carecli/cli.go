// Package carecli implements the careguide command line: keyword-based
// caregiving advice, per-condition guidance lookup, and the accompaniment
// assessment checklist. All guidance is pre-authored and general; it is not
// medical advice.
package carecli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Guide     *GuideCommand
	Condition *ConditionCommand
	Assess    *AssessCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "careguide"
	parser.LongDescription = "Caregiving companion: keyword-based advice, condition guidance, and an accompaniment assessment. General information only, not medical advice."

	cmds := &commands{
		Guide:     &GuideCommand{globals: &globals},
		Condition: &ConditionCommand{globals: &globals},
		Assess:    &AssessCommand{globals: &globals},
	}

	parser.AddCommand("guide", "Look up advice for keywords", "Categorize free-text keywords describing behavior and show the matching advice blocks.", cmds.Guide)
	parser.AddCommand("condition", "Show guidance for a condition", "Show pre-authored guidance for a condition key, or list the available keys.", cmds.Condition)
	parser.AddCommand("assess", "Run the accompaniment assessment", "Show the accompaniment checklist, or score checked items with --check.", cmds.Assess)

	return parser, &globals, cmds
}

// Run is the main entry point for the careguide CLI using os.Args.
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
			fmt.Printf("careguide %s\n", version)
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
