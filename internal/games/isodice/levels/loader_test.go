package levels_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/isodice/internal/games/isodice/core"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels"
	"github.com/vovakirdan/isodice/internal/games/isodice/levels/formats"
)

// encodeLevel renders a one-row level image from tile colors.
func encodeLevel(t *testing.T, colors ...color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		img.SetNRGBA(x, 0, c)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

const twoLevels = `[
  {"name": "One", "image": "a.png", "die_layout": [0, 5, 2, 3, 1, 4]},
  {"name": "Two", "image": "b.png", "die_layout": [5, 0, 1, 4, 2, 3],
   "texts": [{"text": "HI", "pos": [1, 2], "delay": 2, "follow_camera": true}]}
]`

func TestDefaultCampaign(t *testing.T) {
	loader, err := levels.Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if loader.Count() < 3 {
		t.Fatalf("expected at least 3 built-in levels, got %d", loader.Count())
	}
	if err := loader.Check(); err != nil {
		t.Fatalf("built-in campaign has broken levels: %v", err)
	}

	lvl, err := loader.Load(0)
	if err != nil {
		t.Fatalf("Load(0) failed: %v", err)
	}
	if lvl.Name != "First Steps" {
		t.Errorf("expected name 'First Steps', got %q", lvl.Name)
	}
	if got := lvl.Layout.List(); len(got) != 6 {
		t.Errorf("layout list has %d entries", len(got))
	}
	if len(lvl.Texts) == 0 {
		t.Error("expected tutorial texts on the first level")
	}
}

func TestLoaderFromMapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"levels.json": {Data: []byte(twoLevels)},
		"a.png":       {Data: encodeLevel(t, core.ColorStart, core.ColorFloor, core.ColorGoal)},
		"b.png":       {Data: encodeLevel(t, core.ColorStart, core.ColorTimed, core.ColorGoal)},
	}

	loader, err := levels.NewLoader(fsys)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	if loader.Count() != 2 {
		t.Fatalf("expected 2 levels, got %d", loader.Count())
	}

	lvl, err := loader.Load(1)
	if err != nil {
		t.Fatalf("Load(1) failed: %v", err)
	}
	if lvl.Index != 1 || lvl.Name != "Two" {
		t.Errorf("got level %d %q, want 1 \"Two\"", lvl.Index, lvl.Name)
	}
	if want := core.NewLayout(5, 0, 4, 1, 2, 3); lvl.Layout != want {
		t.Errorf("layout = %v, want %v", lvl.Layout, want)
	}
	if lvl.Raster.Width != 3 || len(lvl.Raster.Tiles) != 3 {
		t.Errorf("raster %dx%d with %d tiles, want 3 wide with 3 tiles",
			lvl.Raster.Width, lvl.Raster.Height, len(lvl.Raster.Tiles))
	}
	if lvl.Raster.Tiles[1].Type != core.TileTimed {
		t.Errorf("tile 1 = %v, want timed", lvl.Raster.Tiles[1].Type)
	}
	if len(lvl.Texts) != 1 || !lvl.Texts[0].Typed() || !lvl.Texts[0].FollowCamera {
		t.Errorf("texts = %+v, want one typed screen text", lvl.Texts)
	}
}

func TestLoaderErrors(t *testing.T) {
	good := encodeLevel(t, core.ColorStart, core.ColorGoal)

	tests := []struct {
		name  string
		files fstest.MapFS
		index int
		want  error
	}{
		{
			name: "index out of range",
			files: fstest.MapFS{
				"levels.json": {Data: []byte(`[{"name": "x", "image": "a.png", "die_layout": [0,1,2,3,4,5]}]`)},
				"a.png":       {Data: good},
			},
			index: 3,
			want:  levels.ErrLevelNotFound,
		},
		{
			name: "missing image",
			files: fstest.MapFS{
				"levels.json": {Data: []byte(`[{"name": "x", "image": "gone.png", "die_layout": [0,1,2,3,4,5]}]`)},
			},
			want: core.ErrLevelLoad,
		},
		{
			name: "not a png",
			files: fstest.MapFS{
				"levels.json": {Data: []byte(`[{"name": "x", "image": "a.png", "die_layout": [0,1,2,3,4,5]}]`)},
				"a.png":       {Data: []byte("garbage")},
			},
			want: core.ErrLevelLoad,
		},
		{
			name: "no start tile",
			files: fstest.MapFS{
				"levels.json": {Data: []byte(`[{"name": "x", "image": "a.png", "die_layout": [0,1,2,3,4,5]}]`)},
				"a.png":       {Data: encodeLevel(t, core.ColorFloor, core.ColorGoal)},
			},
			want: core.ErrLevelLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, err := levels.NewLoader(tt.files)
			if err != nil {
				t.Fatalf("NewLoader failed: %v", err)
			}
			_, err = loader.Load(tt.index)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
			if loader.Check() == nil && tt.index == 0 {
				t.Error("Check passed on a broken level")
			}
		})
	}
}

func TestNewLoaderRejectsBadManifest(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"empty list", `[]`},
		{"short layout", `[{"name": "x", "image": "a.png", "die_layout": [0,1,2,3,4]}]`},
		{"face out of range", `[{"name": "x", "image": "a.png", "die_layout": [0,1,2,3,4,9]}]`},
		{"missing image", `[{"name": "x", "die_layout": [0,1,2,3,4,5]}]`},
		{"unknown field", `[{"name": "x", "image": "a.png", "die_layout": [0,1,2,3,4,5], "music": "x"}]`},
		{"bad text", `[{"name": "x", "image": "a.png", "die_layout": [0,1,2,3,4,5], "texts": [{"text": "x"}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := levels.NewLoader(fstest.MapFS{"levels.json": {Data: []byte(tt.data)}})
			if !errors.Is(err, formats.ErrInvalidManifest) {
				t.Errorf("NewLoader error = %v, want ErrInvalidManifest", err)
			}
		})
	}
}

func TestNewLoaderMissingManifest(t *testing.T) {
	if _, err := levels.NewLoader(fstest.MapFS{}); err == nil {
		t.Error("expected error without a manifest")
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	manifest := `[{"name": "Disk", "image": "lvl.png", "die_layout": [0, 5, 2, 3, 1, 4]}]`
	if err := os.WriteFile(filepath.Join(dir, "levels.json"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	data := encodeLevel(t, core.ColorStart, core.ColorFloor, core.ColorGoal)
	if err := os.WriteFile(filepath.Join(dir, "lvl.png"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := levels.Dir(dir)
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	lvl, err := loader.Load(0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lvl.Name != "Disk" {
		t.Errorf("expected name 'Disk', got %q", lvl.Name)
	}
	if lvl.Raster.DieSpawn() != core.V(1, 0, 1) {
		t.Errorf("die spawn = %v, want (1,0,1)", lvl.Raster.DieSpawn())
	}

	if _, err := levels.Dir(filepath.Join(dir, "lvl.png")); err == nil {
		t.Error("expected error for a file path")
	}
	if _, err := levels.Dir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
