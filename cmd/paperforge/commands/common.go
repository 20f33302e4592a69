package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/paperforge/internal/category"
	perrors "git.home.luguber.info/inful/paperforge/internal/paper/errors"
	"git.home.luguber.info/inful/paperforge/internal/pipeline"
	"git.home.luguber.info/inful/paperforge/internal/verify"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render RenderCmd `cmd:"" help:"Render the localization catalog and document metadata index"`
	Lathe  LatheCmd  `cmd:"" help:"Render entity prototypes, lathe recipes and category definitions"`
	Verify VerifyCmd `cmd:"" help:"Verify that generated artifacts stay internally consistent"`
	Check  CheckCmd  `cmd:"" help:"Run sanity checks against paperwork documents"`
	Watch  WatchCmd  `cmd:"" help:"Regenerate all artifacts whenever the docs tree changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

var (
	// ErrVerificationFailed marks a verify run that produced findings.
	ErrVerificationFailed = errors.New("bundle verification failed")
	// ErrChecksFailed marks a check run that produced error-level issues.
	ErrChecksFailed = errors.New("document checks failed")
	// ErrInvalidFlag marks a flag value the command could not parse.
	ErrInvalidFlag = errors.New("invalid flag value")
)

// ExitCodeFor maps an error to the process exit code: 2 for structural parse
// or configuration errors, 1 for verification or check failures and anything
// else, 0 for success.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, perrors.ErrDocumentFormat),
		errors.Is(err, perrors.ErrDocumentIO),
		errors.Is(err, category.ErrInvalidOverrides),
		errors.Is(err, verify.ErrMalformedArtifact),
		errors.Is(err, ErrInvalidFlag):
		return 2
	default:
		return 1
	}
}

func printRunStatus(result *pipeline.Result) {
	if len(result.Written) == 0 {
		fmt.Printf("Outputs already up to date for %d document(s).\n", result.Documents)
		return
	}
	fmt.Printf("Updated %s from %d document(s).\n",
		strings.Join(result.Written, ", "), result.Documents)
}
