package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "eyeball.yaml")
	if err := os.WriteFile(target, []byte("kind: eyeball\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if BaseName(name) != "eyeball.yaml" {
			t.Fatalf("unexpected event for %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no watcher event")
	}
}

func TestWatcherSkipsMissingDirs(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "absent"), dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := NewWatcher(filepath.Join(dir, "absent")); err == nil {
		t.Fatalf("expected an error when nothing can be watched")
	}
}

func TestWatcherClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Close()
	w.Close()

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected Events to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Events never closed")
	}
}

func TestWatcherReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := newWatcher(200*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "eyeball.yaml")
	writes := []string{"kind: eye", "kind: eyeball\n", "kind: eyeball\nhealth: 30\n"}
	for _, body := range writes {
		if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case name := <-w.Events:
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != writes[len(writes)-1] {
			t.Fatalf("reported before the final write: %q", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no watcher event")
	}

	select {
	case name, ok := <-w.Events:
		if ok {
			t.Fatalf("expected one event for the burst, got another for %s", name)
		}
	case <-time.After(400 * time.Millisecond):
	}
}
