package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const maxEntries = 500

// Log is a bounded on-disk record of command invocations. Entries are
// plain text lines, oldest first, trimmed to maxEntries on write.
type Log struct {
	mu      sync.Mutex
	path    string
	entries []string
}

// OpenLog loads the usage log from dataDir. A missing file yields an
// empty log, not an error.
func OpenLog(dataDir string) (*Log, error) {
	path := filepath.Join(dataDir, "usage.txt")
	entries, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Log{path: path}, nil
		}
		return nil, err
	}
	return &Log{path: path, entries: entries}, nil
}

// Record appends one command invocation and persists the log.
func (l *Log) Record(sender, command string) error {
	timestamp := time.Now().UTC().Format("Mon Jan 02, 2006 at 15:04:05 GMT")
	entry := fmt.Sprintf("%s: %s -> %s", timestamp, sender, command)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
	return writeLines(l.path, l.entries)
}

// Entries returns a copy of the recorded lines, oldest first.
func (l *Log) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func writeLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}
