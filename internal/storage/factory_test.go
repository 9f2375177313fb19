//go:build !sqlite

package storage

import "testing"

func TestNewStoreDefaultsToMemory(t *testing.T) {
	for _, kind := range []string{"", "memory", DefaultStoreKind()} {
		store, err := NewStore(kind, "")
		if err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		if _, ok := store.(*MemoryStore); !ok {
			t.Fatalf("kind %q built %T, want *MemoryStore", kind, store)
		}
	}
}

func TestNewStoreRejectsUnknownKind(t *testing.T) {
	if _, err := NewStore("postgres", ""); err == nil {
		t.Fatal("unknown backend must fail")
	}
}

func TestNewStoreSQLiteUnavailableWithoutTag(t *testing.T) {
	if _, err := NewStore("sqlite", "test.db"); err == nil {
		t.Fatal("sqlite backend must require the sqlite build tag")
	}
}

func TestCloseIfSupportedToleratesPlainStores(t *testing.T) {
	if err := CloseIfSupported(NewMemoryStore()); err != nil {
		t.Fatalf("close memory store: %v", err)
	}
}
