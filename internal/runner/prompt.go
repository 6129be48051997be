package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FullNamePrompt is shown before reading the operator's name.
const FullNamePrompt = "Please enter your full name: "

// PromptFullName writes the prompt to w and reads one line from r. Any text,
// including an empty line or input ending without a newline, is accepted.
func PromptFullName(r io.Reader, w io.Writer) (string, error) {
	if _, err := io.WriteString(w, FullNamePrompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read full name: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
