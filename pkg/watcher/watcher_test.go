package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, []byte("solid empty\nendsolid empty\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	triggered := make(chan struct{}, 1)
	fw, err := New(path, 10*time.Millisecond, func() {
		select {
		case triggered <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()
	fw.Start()

	if err := os.WriteFile(path, []byte("solid changed\nendsolid changed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-triggered:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not triggered after file write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	triggered := make(chan struct{}, 1)
	fw, err := New(path, 10*time.Millisecond, func() {
		triggered <- struct{}{}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()
	fw.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.stl"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-triggered:
		t.Fatal("callback triggered for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}
