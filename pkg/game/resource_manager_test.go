package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage 写入一个 w×h 的纯色 PNG
func createTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoadImageCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.png")
	createTestImage(t, path, 10, 12)

	rm := NewResourceManager(nil)
	img, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 12 {
		t.Errorf("image size: got %dx%d, want 10x12", b.Dx(), b.Dy())
	}

	again, err := rm.LoadImage(path)
	if err != nil || again != img {
		t.Error("second LoadImage() should return the cached image")
	}
	if rm.GetImage(path) != img {
		t.Error("GetImage() should return the cached image")
	}
}

func TestLoadImageErrors(t *testing.T) {
	rm := NewResourceManager(nil)
	if _, err := rm.LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file should return an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := rm.LoadImage(bad); err == nil {
		t.Error("invalid image data should return an error")
	}
}

func TestLoadImageOrPlaceholder(t *testing.T) {
	rm := NewResourceManager(nil)
	img := rm.LoadImageOrPlaceholder(filepath.Join(t.TempDir(), "missing.png"), 64, 32)
	if img == nil {
		t.Fatal("expected a placeholder image")
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("placeholder size: got %dx%d, want 64x32", b.Dx(), b.Dy())
	}
}

func TestPlaceholderCache(t *testing.T) {
	rm := NewResourceManager(nil)

	a := rm.Placeholder(16, 16, PlaceholderColor)
	b := rm.Placeholder(16, 16, PlaceholderColor)
	if a != b {
		t.Error("same size and colour should share one image")
	}
	if c := rm.Placeholder(16, 16, color.RGBA{A: 255}); c == a {
		t.Error("different colour should create a new image")
	}

	tiny := rm.Placeholder(0, -3, PlaceholderColor)
	if bounds := tiny.Bounds(); bounds.Dx() != 1 || bounds.Dy() != 1 {
		t.Errorf("tiny placeholder: got %dx%d, want 1x1", bounds.Dx(), bounds.Dy())
	}
}

func TestLoadFolder(t *testing.T) {
	dir := t.TempDir()
	createTestImage(t, filepath.Join(dir, "1.png"), 4, 4)
	createTestImage(t, filepath.Join(dir, "0.png"), 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	rm := NewResourceManager(nil)
	frames := rm.LoadFolder(dir)
	if len(frames) != 2 {
		t.Fatalf("frames: got %d, want 2", len(frames))
	}
	if frames[0].Bounds().Dx() != 2 || frames[1].Bounds().Dx() != 4 {
		t.Error("frames should be sorted by file name")
	}

	dict := rm.LoadFolderDict(dir)
	if len(dict) != 2 || dict["0"] == nil || dict["1"] == nil {
		t.Errorf("LoadFolderDict() keys: got %v", dict)
	}
}

func TestLoadFolderMissing(t *testing.T) {
	rm := NewResourceManager(nil)
	frames := rm.LoadFolder(filepath.Join(t.TempDir(), "nope"))
	if frames == nil || len(frames) != 0 {
		t.Errorf("missing folder should yield an empty slice, got %v", frames)
	}
}

func TestLoadSoundEffectWithoutAudio(t *testing.T) {
	rm := NewResourceManager(nil)
	if _, err := rm.LoadSoundEffect("axe.mp3"); err == nil {
		t.Error("loading audio without a context should fail")
	}
	if rm.GetAudioPlayer("axe.mp3") != nil {
		t.Error("failed load should not be cached")
	}
}
