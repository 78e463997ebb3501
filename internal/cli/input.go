package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// Control characters that end multi-line input when they arrive as a line of
// their own: EOT (Ctrl+D) and SUB (Ctrl+Z).
const (
	eot = "\x04"
	sub = "\x1a"
)

// ReadLine prints prompt to w without a newline and reads one line from
// reader. Surrounding whitespace is trimmed. If EOF occurs after some input
// was read, the partial line is returned; EOF with nothing read yields
// common.ErrInputClosed.
func ReadLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return strings.TrimSpace(line), nil
			}
			return "", common.ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadUntilEOF reads text until end of input or until a line consisting only
// of an EOT or SUB character. The text is returned untrimmed, without the
// terminating line. A terminal delivers Ctrl+D as a transient EOF, so reader
// stays usable afterwards.
func ReadUntilEOF(reader *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if isEndMarker(line) {
			break
		}
		b.WriteString(line)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}
	return b.String(), nil
}

func isEndMarker(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	return line == eot || line == sub
}
