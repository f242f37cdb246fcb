package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/farmstead/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images and audio assets,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Files are looked up in the embedded data first (when initialized) and then
// on disk. Missing graphics degrade to generated placeholder images so the
// simulation keeps running without the art pack.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
type ResourceManager struct {
	imageCache       map[string]*ebiten.Image   // path -> Image
	folderCache      map[string][]*ebiten.Image // dir -> sorted frames
	placeholderCache map[placeholderKey]*ebiten.Image
	audioCache       map[string]*audio.Player // path -> Player
	audioContext     *audio.Context           // may be nil (audio disabled)
}

type placeholderKey struct {
	w, h int
	c    color.RGBA
}

// PlaceholderColor is used for graphics that could not be loaded.
var PlaceholderColor = color.RGBA{R: 200, G: 0, B: 200, A: 255}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context, or nil to disable audio loading.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:       make(map[string]*ebiten.Image),
		folderCache:      make(map[string][]*ebiten.Image),
		placeholderCache: make(map[placeholderKey]*ebiten.Image),
		audioCache:       make(map[string]*audio.Player),
		audioContext:     audioContext,
	}
}

// readResource reads a file from the embedded data or the local filesystem.
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
//
// Returns:
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadImageOrPlaceholder loads an image and falls back to a w×h placeholder.
// The failure is logged, never returned.
func (rm *ResourceManager) LoadImageOrPlaceholder(path string, w, h float64) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
		return rm.Placeholder(w, h, PlaceholderColor)
	}
	return img
}

// Placeholder returns a cached solid-colour image of the given size.
// Sizes below one pixel are rounded up to 1×1.
func (rm *ResourceManager) Placeholder(w, h float64, c color.RGBA) *ebiten.Image {
	key := placeholderKey{w: max(int(w), 1), h: max(int(h), 1), c: c}
	if img, ok := rm.placeholderCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(key.w, key.h)
	img.Fill(c)
	rm.placeholderCache[key] = img
	return img
}

// LoadFolder loads every image in a directory, sorted by file name.
// Used for animation frames; a missing directory yields an empty slice.
func (rm *ResourceManager) LoadFolder(dir string) []*ebiten.Image {
	if frames, ok := rm.folderCache[dir]; ok {
		return frames
	}

	names, err := listImages(dir)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to list %s: %v", dir, err)
	}

	frames := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := rm.LoadImage(filepath.Join(dir, name))
		if err != nil {
			log.Printf("[ResourceManager] Warning: %v", err)
			continue
		}
		frames = append(frames, img)
	}

	rm.folderCache[dir] = frames
	return frames
}

// LoadFolderDict loads every image in a directory keyed by file name without extension.
func (rm *ResourceManager) LoadFolderDict(dir string) map[string]*ebiten.Image {
	names, err := listImages(dir)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to list %s: %v", dir, err)
	}

	out := make(map[string]*ebiten.Image, len(names))
	for _, name := range names {
		img, err := rm.LoadImage(filepath.Join(dir, name))
		if err != nil {
			log.Printf("[ResourceManager] Warning: %v", err)
			continue
		}
		out[strings.TrimSuffix(name, filepath.Ext(name))] = img
	}
	return out
}

// listImages returns the sorted image file names in dir.
func listImages(dir string) ([]string, error) {
	var entries []fs.DirEntry
	var err error
	if embedded.IsInitialized() && embedded.Exists(dir) {
		entries, err = embedded.ReadDir(dir)
	} else {
		entries, err = os.ReadDir(dir)
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// decodeAudio decodes MP3 or OGG data selected by file extension.
func decodeAudio(path string, data []byte) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// LoadAudio loads a looping audio track (background music) and caches its player.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio is disabled, cannot load %s", path)
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache, or nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}
