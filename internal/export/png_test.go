package export

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/flipgrid/internal/segment"
)

func TestSnapshotWritesPNG(t *testing.T) {
	seg, err := segment.New("snap", segment.Pattern(0, 120, 90), 3, 2, 20, 4)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "board.png")

	if err := Snapshot(seg, 4, "test board", path); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if format != "png" {
		t.Errorf("snapshot format = %s, want png", format)
	}

	extent := seg.Extent()
	if cfg.Width != extent.X+2*margin {
		t.Errorf("snapshot width = %d, want %d", cfg.Width, extent.X+2*margin)
	}
	if cfg.Height != extent.Y+2*margin+captionPad {
		t.Errorf("snapshot height = %d, want %d", cfg.Height, extent.Y+2*margin+captionPad)
	}
}

func TestSnapshotWithoutCaption(t *testing.T) {
	seg, err := segment.New("snap", segment.Pattern(1, 60, 60), 2, 2, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bare.png")
	if err := Snapshot(seg, 0, "", path); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	extent := seg.Extent()
	if cfg.Height != extent.Y+2*margin {
		t.Errorf("captionless height = %d, want %d", cfg.Height, extent.Y+2*margin)
	}
}
