package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadTargets reads root URLs from the file at path.
func LoadTargets(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided target file is intentional
	if err != nil {
		return nil, fmt.Errorf("open target file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	targets, err := ParseTargets(f)
	if err != nil {
		return nil, fmt.Errorf("read target file %s: %w", path, err)
	}
	return targets, nil
}

// ParseTargets returns one root URL per line of r. Surrounding whitespace is
// trimmed; blank lines and lines starting with "#" are ignored.
func ParseTargets(r io.Reader) ([]string, error) {
	var targets []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}
