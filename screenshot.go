package lovetree

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Screenshot queues a labeled capture of the composite frame. Queued
// captures are written by FlushScreenshots.
func (d *Director) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// FlushScreenshots writes one PNG per queued label into the screenshot
// directory with a timestamped name, and returns the written paths. Failed
// writes are logged and skipped.
func (d *Director) FlushScreenshots() []string {
	if len(d.screenshotQueue) == 0 {
		return nil
	}
	defer func() { d.screenshotQueue = d.screenshotQueue[:0] }()

	if err := os.MkdirAll(d.screenshotDir, 0o755); err != nil {
		d.log.Error("screenshot", "dir", d.screenshotDir, "err", err)
		return nil
	}

	img := d.Composite()
	stamp := d.now().Format("20060102_150405")

	var paths []string
	for _, label := range d.screenshotQueue {
		path := filepath.Join(d.screenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := WritePNG(path, img); err != nil {
			d.log.Error("screenshot", "err", err)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// WritePNG encodes an image to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
