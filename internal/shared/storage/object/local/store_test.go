package local

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	payload := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}

	size, mime, err := store.Save(context.Background(), "abc.png", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(payload)) {
		t.Fatalf("size = %d, want %d", size, len(payload))
	}
	if mime != "image/png" {
		t.Fatalf("mime = %q, want image/png", mime)
	}

	f, err := store.Open(context.Background(), "abc.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("stored bytes differ from payload")
	}
}

func TestSaveRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())

	if _, _, err := store.Save(context.Background(), "../escape.png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for traversal key")
	}
	if _, _, err := store.Save(context.Background(), "/abs.png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for absolute key")
	}
}

func TestFindByPrefix(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	if _, _, err := store.Save(ctx, "upload-1.png", strings.NewReader("a")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, _, err := store.Save(ctx, "upload-2.jpg", strings.NewReader("b")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	key, err := store.FindByPrefix(ctx, "upload-2")
	if err != nil {
		t.Fatalf("FindByPrefix: %v", err)
	}
	if key != "upload-2.jpg" {
		t.Fatalf("key = %q", key)
	}

	if _, err := store.FindByPrefix(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := store.FindByPrefix(ctx, "../etc"); err == nil {
		t.Fatal("expected error for traversal prefix")
	}
}
