package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/paperforge/internal/check"
	"git.home.luguber.info/inful/paperforge/internal/paper"
)

// CheckCmd implements the 'check' command: sanity checks against the source
// documents themselves.
type CheckCmd struct {
	DocsDir          string `name:"docs-dir" short:"d" default:"./docs" help:"Directory containing paperwork documents"`
	StrictStamps     bool   `name:"strict-stamps" help:"Fail when paperwork lacks a stamp section"`
	FailOnDuplicates bool   `name:"fail-on-duplicates" help:"Treat duplicate body content as an error instead of a warning"`
}

func (c *CheckCmd) Run(_ *Global) error {
	documents, err := paper.NewDiscovery(c.DocsDir).Discover()
	if err != nil {
		return err
	}

	result := check.Documents(documents, check.Options{
		StrictStamps:     c.StrictStamps,
		FailOnDuplicates: c.FailOnDuplicates,
	})

	for _, issue := range result.Issues {
		if issue.Severity == check.SeverityError {
			fmt.Fprintf(os.Stderr, "error: %s\n", issue.Message)
		} else {
			fmt.Printf("warning: %s\n", issue.Message)
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("%w in %s", ErrChecksFailed, c.DocsDir)
	}
	return nil
}
