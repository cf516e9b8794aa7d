package carecli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sakamichi-tools/penlight/internal/guide"
)

// Execute implements the go-flags Commander interface for GuideCommand.
func (c *GuideCommand) Execute(args []string) error {
	return c.run(guide.NewRepository())
}

// run categorizes each keyword, records it in the session repository, and
// prints one advice block per entry.
func (c *GuideCommand) run(repo *guide.Repository) error {
	if len(c.Args.Keywords) == 0 {
		return c.printBlocks([]guide.Block{guide.Assemble(guide.TagEmpty, "", "")})
	}

	for _, raw := range c.Args.Keywords {
		repo.Add(guide.Entry{Keyword: raw})
	}

	var out []guide.Block
	for _, e := range repo.List() {
		out = append(out, guide.Assemble(e.Tag, e.Keyword, c.Context))
	}
	return c.printBlocks(out)
}

func (c *GuideCommand) printBlocks(blocks []guide.Block) error {
	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(blocks)
	}

	for i, b := range blocks {
		if i > 0 {
			fmt.Println()
		}
		if b.Keyword != "" {
			head := "「" + b.Keyword + "」"
			if b.Context != "" {
				head += "（" + b.Context + "）"
			}
			fmt.Println(head)
		}
		fmt.Println(b.Title)
		for _, line := range b.Advice {
			fmt.Println("・" + line)
		}
	}

	if len(blocks) > 0 && blocks[0].Keyword != "" {
		fmt.Println()
		fmt.Println("一般的な情報です。個別の判断は専門職・主治医にご相談ください。")
	}
	return nil
}
