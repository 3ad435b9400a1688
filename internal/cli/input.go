package cli

import (
	"io"
	"os"

	"paritygen/internal/errors"
	"paritygen/internal/util"

	"golang.org/x/term"
)

// isTerminal reports whether r is an interactive terminal. Readers that are
// not files (pipes in tests, buffers) never are.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInputBytes returns the bytes named by hex tokens on the command line,
// falling back to whitespace-separated tokens on stdin when stdin is piped.
func readInputBytes(args []string, stdin io.Reader) ([]byte, error) {
	tokens := args
	if len(tokens) == 0 {
		if isTerminal(stdin) {
			return nil, errors.ErrNoInput
		}
		var err error
		tokens, err = util.ReadHexTokens(stdin)
		if err != nil {
			return nil, err
		}
		if len(tokens) == 0 {
			return nil, errors.ErrNoInput
		}
	}
	return util.ParseHexTokens(tokens)
}
