package command

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompt reads one line from the command's input. The prompt is only shown
// and masking only applies when the input is a terminal.
func prompt(cmd *cobra.Command, prompt string, mask bool) ([]byte, error) {
	in := cmd.InOrStdin()

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if _, err := io.WriteString(cmd.ErrOrStderr(), prompt); err != nil {
			return nil, err
		}
		if mask {
			passwd, err := term.ReadPassword(int(file.Fd()))
			_, _ = io.WriteString(cmd.ErrOrStderr(), "\n")

			return passwd, err
		}
	}

	return readLine(in)
}

// readLine reads up to the next newline one byte at a time, so nothing past
// the line is consumed from a shared stdin.
func readLine(in io.Reader) ([]byte, error) {
	var buf [1]byte
	var ret []byte

	for {
		n, err := in.Read(buf[:])
		if n > 0 {
			switch buf[0] {
			case '\n':
				return ret, nil
			case '\r':
				// CRLF input
			default:
				ret = append(ret, buf[0])
			}

			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(ret) > 0 {
				return ret, nil
			}

			return ret, err
		}
	}
}
