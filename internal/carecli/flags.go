package carecli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	JSON bool `long:"json" description:"Output in JSON format"`
}

// GuideCommand — categorize keywords and show matching advice blocks.
type GuideCommand struct {
	Context string `long:"context" description:"Context label echoed with the advice (e.g., 外出先で)"`

	Args struct {
		Keywords []string `positional-arg-name:"KEYWORD" description:"Behavior keywords to look up (one block each)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// ConditionCommand — show pre-authored guidance for a condition key.
type ConditionCommand struct {
	Args struct {
		Key string `positional-arg-name:"KEY" description:"Condition key (omit to list available keys)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
}

// AssessCommand — show or score the accompaniment checklist.
type AssessCommand struct {
	Check string `long:"check" description:"Comma-separated item numbers that apply (e.g., 1,3,8)"`

	globals *GlobalFlags
}
