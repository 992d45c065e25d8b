package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// UIMode is the resolved front end choice.
type UIMode struct {
	Interactive bool
	Warning     string
}

// isTerminal reports whether a reader or writer is a TTY.
var isTerminal = defaultIsTerminal

// ResolveUIMode picks the full-screen UI or the line REPL. mode is auto, tui or
// plain; auto uses the full-screen UI only when both ends are terminals.
func ResolveUIMode(mode string, stdin io.Reader, stdout io.Writer) (UIMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}

	tty := isTerminal(stdin) && isTerminal(stdout)
	switch normalized {
	case "auto":
		return UIMode{Interactive: tty}, nil
	case "tui":
		if tty {
			return UIMode{Interactive: true}, nil
		}
		return UIMode{
			Interactive: false,
			Warning:     "Full-screen UI requested but the terminal is not interactive; falling back to plain prompts.",
		}, nil
	case "plain":
		return UIMode{Interactive: false}, nil
	default:
		return UIMode{}, fmt.Errorf("invalid ui mode %q (expected auto|tui|plain)", mode)
	}
}

func defaultIsTerminal(stream any) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
