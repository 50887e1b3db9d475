package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yourusername/ringarena/pkg/arena"
)

// RunScript executes setup commands line by line. Blank lines and lines
// starting with '#' are skipped. Execution stops at the first rejected
// command, reporting its line number; mutations applied by earlier lines
// are kept. It returns the output of the last producing command.
func RunScript(a *arena.SolvableArena, r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	out := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := Exec(a, line)
		if err != nil {
			return out, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if res != "" {
			out = res
		}
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("reading script: %w", err)
	}
	return out, nil
}

// LoadScript runs the setup commands in the named file.
func LoadScript(a *arena.SolvableArena, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return RunScript(a, f)
}
