package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	store := New(t.TempDir(), "/uploads")

	url, err := store.Save("company-logo", "acme.PNG", strings.NewReader("fake-bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/company-logo/") {
		t.Fatalf("unexpected url %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("expected lowercased extension, got %q", url)
	}

	onDisk := filepath.Join(store.Root(), strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "fake-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestSaveRejectsTraversalFolders(t *testing.T) {
	store := New(t.TempDir(), "/uploads")

	for _, folder := range []string{"", "..", "a/b", `a\b`, "../../etc"} {
		if _, err := store.Save(folder, "x.pdf", strings.NewReader("x")); err == nil {
			t.Fatalf("expected rejection for folder %q", folder)
		}
	}
}
