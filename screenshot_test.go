package lovetree

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-grow", "after-grow"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	d := newSmallDirector(t)
	d.Screenshot("a")
	d.Screenshot("b")
	if len(d.screenshotQueue) != 2 || d.screenshotQueue[0] != "a" || d.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", d.screenshotQueue)
	}
}

func TestFlushScreenshots(t *testing.T) {
	d := newSmallDirector(t)
	d.Update(d.Tree().Config().Timing.Tick)
	d.Screenshot("seed")

	paths := d.FlushScreenshots()
	if len(paths) != 1 {
		t.Fatalf("paths = %v, want 1", paths)
	}
	if filepath.Base(paths[0]) != "20240214_093000_seed.png" {
		t.Errorf("name = %q", filepath.Base(paths[0]))
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("width = %d, want 200", img.Bounds().Dx())
	}
	if len(d.screenshotQueue) != 0 {
		t.Error("queue should be drained")
	}
	if d.FlushScreenshots() != nil {
		t.Error("empty flush should return nil")
	}
}
