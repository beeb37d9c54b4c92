package engine

import (
	"fmt"
	"testing"
)

func TestMessageLogKeepsMostRecent(t *testing.T) {
	log := NewMessageLog()
	for i := 0; i < 20; i++ {
		log.Addf("m%d", i)
	}

	if log.Len() != MaxLogEntries {
		t.Fatalf("Len() = %d, want %d", log.Len(), MaxLogEntries)
	}

	entries := log.Entries()
	for i, entry := range entries {
		want := fmt.Sprintf("m%d", 12+i)
		if entry != want {
			t.Errorf("Entries()[%d] = %q, want %q", i, entry, want)
		}
	}
	if log.Last() != "m19" {
		t.Errorf("Last() = %q, want %q", log.Last(), "m19")
	}
}

func TestMessageLogUnderCapacity(t *testing.T) {
	log := NewMessageLog()
	if log.Last() != "" {
		t.Errorf("Last() on empty log = %q, want empty", log.Last())
	}

	log.Add("first")
	log.Add("second")

	entries := log.Entries()
	if len(entries) != 2 || entries[0] != "first" || entries[1] != "second" {
		t.Errorf("Entries() = %v, want [first second]", entries)
	}
}

func TestMessageLogEntriesIsCopy(t *testing.T) {
	log := NewMessageLog()
	log.Add("first")

	entries := log.Entries()
	entries[0] = "changed"

	if log.Last() != "first" {
		t.Error("mutating Entries() result changed the log")
	}
}
