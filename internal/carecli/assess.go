package carecli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sakamichi-tools/penlight/internal/guide"
)

var severityMarks = map[guide.Severity]string{
	guide.SeverityDanger:  "危険",
	guide.SeveritySupport: "支援",
	guide.SeverityMedical: "医療",
}

// Execute implements the go-flags Commander interface for AssessCommand.
func (c *AssessCommand) Execute(args []string) error {
	if strings.TrimSpace(c.Check) == "" {
		return c.printItems()
	}

	checked, err := parseChecked(c.Check, len(guide.AssessmentItems))
	if err != nil {
		return err
	}

	var selected []guide.Severity
	for _, n := range checked {
		selected = append(selected, guide.AssessmentItems[n-1].Severity)
	}

	tier := guide.Score(selected)
	block := guide.TierText[tier]

	if c.globals != nil && c.globals.JSON {
		out := struct {
			Checked []int       `json:"checked"`
			Tier    guide.Tier  `json:"tier"`
			Result  guide.Block `json:"result"`
		}{checked, tier, block}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%d item(s) checked\n\n", len(checked))
	fmt.Println(block.Title)
	for _, line := range block.Advice {
		fmt.Println("・" + line)
	}
	return nil
}

func (c *AssessCommand) printItems() error {
	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(guide.AssessmentItems)
	}

	fmt.Println("当てはまる項目の番号を --check で指定してください（例: --check 1,3,8）。")
	fmt.Println()
	for i, item := range guide.AssessmentItems {
		fmt.Printf("%2d. [%s] %s\n", i+1, severityMarks[item.Severity], item.Text)
	}
	return nil
}

// parseChecked parses "1,3,8" into sorted-unique 1-based item numbers.
func parseChecked(s string, max int) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid item number %q", part)
		}
		if n < 1 || n > max {
			return nil, fmt.Errorf("item number %d is out of range (1-%d)", n, max)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--check must list at least one item number")
	}
	return out, nil
}
