package install

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/package-layer/internal/messages"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// ConfirmFunc adapts a function into a Confirmer.
type ConfirmFunc func(message string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(message string) (bool, error) {
	return f(message)
}

// LineConfirmer prompts on Out and reads one answer line from In.
// YES and Y are accepted case-insensitively; any other answer declines.
type LineConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineConfirmer builds a LineConfirmer over the given streams.
// The input reader is shared across prompts so buffered answers survive
// consecutive gates.
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{reader: bufio.NewReader(in), out: out}
}

// Confirm implements Confirmer. A blank line is written after the answer
// so subsequent output starts on a fresh paragraph.
func (c *LineConfirmer) Confirm(message string) (bool, error) {
	if _, err := fmt.Fprintf(c.out, messages.PromptFmt, message); err != nil {
		return false, err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if _, err := fmt.Fprintln(c.out); err != nil {
		return false, err
	}
	answer := strings.ToUpper(strings.TrimSpace(line))
	return answer == "YES" || answer == "Y", nil
}
