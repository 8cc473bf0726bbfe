// Package jsfmt formats embedded JavaScript through an external
// formatter subprocess. It implements format.CodeFilter.
package jsfmt

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"
)

// DefaultCommand is the formatter used when none is configured.
const DefaultCommand = "clang-format"

var defaultArgs = []string{"-assume-filename", "code.js"}

// gate keeps subprocess runs strictly sequential: one external
// formatter at a time even when several files format in parallel.
var gate = semaphore.NewWeighted(1)

// Command invokes an external formatter as a stdin/stdout filter.
type Command struct {
	Name string
	Args []string
}

// New builds a Command from a command line such as
// "clang-format -assume-filename code.js". Empty input selects the
// default formatter.
func New(commandLine string) Command {
	parts := strings.Fields(commandLine)
	if len(parts) == 0 {
		return Command{Name: DefaultCommand, Args: defaultArgs}
	}
	return Command{Name: parts[0], Args: parts[1:]}
}

// FormatCode pipes code through the subprocess and returns its stdout.
// Spawn failure, non-zero exit and non-UTF-8 output are all fatal.
func (c Command) FormatCode(ctx context.Context, code string) (string, error) {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return "", fmt.Errorf("code formatter %q not found in PATH", c.Name)
	}
	if err := gate.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer gate.Release(1)

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Stdin = strings.NewReader(code)
	var stdout bytes.Buffer
	var stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("%s: %w", c.Name, err)
		}
		return "", fmt.Errorf("%s: %s", c.Name, msg)
	}
	if !utf8.Valid(stdout.Bytes()) {
		return "", fmt.Errorf("%s produced non-UTF-8 output", c.Name)
	}
	return stdout.String(), nil
}
