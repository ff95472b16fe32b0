package out

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	timerout "dwt/internal/modules/timer/port/out"
)

// StdinPrompt asks a y/N question on the controlling terminal. Anything but
// an explicit yes declines.
type StdinPrompt struct {
	in  io.Reader
	out io.Writer
}

func NewStdinPrompt(in io.Reader, out io.Writer) timerout.ConfirmPrompt {
	return &StdinPrompt{in: in, out: out}
}

func (p *StdinPrompt) Confirm(question string) bool {
	_, _ = fmt.Fprintf(p.out, "%s (y/N): ", question)
	reader := bufio.NewReader(p.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
