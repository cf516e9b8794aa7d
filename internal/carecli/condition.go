package carecli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sakamichi-tools/penlight/internal/guide"
)

// Execute implements the go-flags Commander interface for ConditionCommand.
func (c *ConditionCommand) Execute(args []string) error {
	key := strings.TrimSpace(c.Args.Key)

	if key == "" {
		return c.printKeys("症状・疾患を選ぶと対応方法が表示されます。")
	}

	cond, ok := guide.ConditionGuide(key)
	if !ok {
		// Unknown keys are an empty state, not an error.
		return c.printKeys(fmt.Sprintf("「%s」に該当する情報がありません。", key))
	}

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cond)
	}

	fmt.Println(cond.Label)
	printSection("基本対応", cond.Basic)
	printSection("注意すべきリスク", cond.Risks)
	printSection("特別な対応", cond.Special)
	return nil
}

func (c *ConditionCommand) printKeys(message string) error {
	keys := guide.ConditionKeys()

	if c.globals != nil && c.globals.JSON {
		out := struct {
			Message string   `json:"message"`
			Keys    []string `json:"keys"`
		}{message, keys}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(message)
	fmt.Println()
	fmt.Println("Available keys:")
	for _, key := range keys {
		cond, _ := guide.ConditionGuide(key)
		fmt.Printf("  %-10s %s\n", key, cond.Label)
	}
	return nil
}

func printSection(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("■ " + title)
	for _, line := range lines {
		fmt.Println("・" + line)
	}
}
