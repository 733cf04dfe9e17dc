// Package levels provides level loading for isodice.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"

	"github.com/vovakirdan/isodice/internal/games/isodice/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels/formats"
)

// ErrLevelNotFound is returned for a level index outside the manifest.
var ErrLevelNotFound = errors.New("level not found")

//go:embed campaign
var campaign embed.FS

// Level is a decoded level ready to build a world from.
type Level struct {
	Index  int
	Name   string
	Image  string
	Layout core.Layout
	Raster core.Raster
	Texts  []formats.Text
}

// Loader reads levels from a manifest and the PNG rasters next to it.
type Loader struct {
	fsys    fs.FS
	entries []formats.Entry
}

// NewLoader reads and validates the manifest at the root of fsys.
func NewLoader(fsys fs.FS) (*Loader, error) {
	data, err := fs.ReadFile(fsys, formats.ManifestName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", formats.ManifestName, err)
	}

	entries, err := formats.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", formats.ManifestName, err)
	}

	return &Loader{fsys: fsys, entries: entries}, nil
}

// Dir creates a loader over a level directory on disk.
func Dir(path string) (*Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening level directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening level directory: %s is not a directory", path)
	}
	return NewLoader(os.DirFS(path))
}

// Default creates a loader over the built-in campaign.
func Default() (*Loader, error) {
	sub, err := fs.Sub(campaign, "campaign")
	if err != nil {
		return nil, fmt.Errorf("opening built-in campaign: %w", err)
	}
	return NewLoader(sub)
}

// Manifest returns the manifest entries in play order.
func (l *Loader) Manifest() []formats.Entry {
	return l.entries
}

// Count returns the number of levels.
func (l *Loader) Count() int {
	return len(l.entries)
}

// Load decodes the level at index.
func (l *Loader) Load(index int) (Level, error) {
	if index < 0 || index >= len(l.entries) {
		return Level{}, fmt.Errorf("%w: index %d of %d", ErrLevelNotFound, index, len(l.entries))
	}
	e := l.entries[index]

	layout, err := core.LayoutFromList(e.DieLayout)
	if err != nil {
		return Level{}, fmt.Errorf("level %d (%s): %w", index, e.Name, err)
	}

	f, err := l.fsys.Open(e.Image)
	if err != nil {
		return Level{}, fmt.Errorf("level %d (%s): %w: %w", index, e.Name, core.ErrLevelLoad, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return Level{}, fmt.Errorf("level %d (%s): %w: decoding %s: %w", index, e.Name, core.ErrLevelLoad, e.Image, err)
	}

	raster, err := core.DecodeRaster(img)
	if err != nil {
		return Level{}, fmt.Errorf("level %d (%s): %w", index, e.Name, err)
	}

	return Level{
		Index:  index,
		Name:   e.Name,
		Image:  e.Image,
		Layout: layout,
		Raster: raster,
		Texts:  e.Texts,
	}, nil
}

// Check loads every level and joins the failures.
func (l *Loader) Check() error {
	var errs []error
	for i := range l.entries {
		if _, err := l.Load(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
