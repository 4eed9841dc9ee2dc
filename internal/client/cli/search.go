package cli

import (
	"context"
	"os"
	"strings"

	"github.com/mkornilov/tastebook/internal/client/api"
)

// Search runs the interactive suggestion loop: every typed line refines the
// query, superseding the previous one, and the latest suggestions are
// printed as they arrive. An empty line leaves the loop.
func (a *App) Search(ctx context.Context) error {
	condition, err := GetSimpleText(a.reader, "Search 'ingredient' or 'hashtag'?", os.Stdout)
	if err != nil {
		return err
	}
	if condition != api.ConditionIngredient {
		condition = api.ConditionHashtag
	}

	d := a.searcher(condition, func(lines []string) {
		if len(lines) == 0 {
			printlnFn("(no matches)")
			return
		}
		for _, l := range lines {
			printlnFn(" ", l)
		}
	})
	defer d.Stop()

	printlnFn("Type to search; empty line to leave")
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return nil
		}
		d.Query(ctx, line)
	}
}
