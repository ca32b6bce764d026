package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUsageRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ircbot-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	usage, err := OpenLog(tmpDir)
	if err != nil {
		t.Fatalf("OpenLog failed: %v", err)
	}

	if err := usage.Record("alice!a@host", "!hello"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := usage.Record("bob!b@host", "!guess 50"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// Reopen and check the entries survived
	reopened, err := OpenLog(tmpDir)
	if err != nil {
		t.Fatalf("OpenLog failed: %v", err)
	}

	entries := reopened.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if !strings.Contains(entries[0], "alice!a@host -> !hello") {
		t.Errorf("First entry malformed: %q", entries[0])
	}
	if !strings.Contains(entries[1], "bob!b@host -> !guess 50") {
		t.Errorf("Second entry malformed: %q", entries[1])
	}
}

func TestOpenLogMissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ircbot-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	usage, err := OpenLog(tmpDir)
	if err != nil {
		t.Fatalf("OpenLog should not fail for a missing file: %v", err)
	}

	if len(usage.Entries()) != 0 {
		t.Errorf("Expected empty log, got %d entries", len(usage.Entries()))
	}
}

func TestRecordTrimsToMaxEntries(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ircbot-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	usage := &Log{path: filepath.Join(tmpDir, "usage.txt")}
	usage.entries = make([]string, maxEntries)
	for i := range usage.entries {
		usage.entries[i] = "old entry"
	}

	if err := usage.Record("carol!c@host", "!info"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries := usage.Entries()
	if len(entries) != maxEntries {
		t.Errorf("Expected %d entries (max), got %d", maxEntries, len(entries))
	}
	if !strings.Contains(entries[len(entries)-1], "carol!c@host -> !info") {
		t.Errorf("Newest entry should be last, got %q", entries[len(entries)-1])
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ircbot-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	usage := &Log{path: filepath.Join(tmpDir, "usage.txt")}
	if err := usage.Record("alice!a@host", "!hello"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries := usage.Entries()
	entries[0] = "mutated"

	if usage.Entries()[0] == "mutated" {
		t.Error("Entries should return a copy, not the backing slice")
	}
}
