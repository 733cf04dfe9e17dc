// Package formats provides the level manifest format for isodice.
package formats

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ManifestName is the manifest file name inside a level directory.
const ManifestName = "levels.json"

// ErrInvalidManifest is returned when a manifest fails schema validation.
var ErrInvalidManifest = errors.New("invalid level manifest")

//go:embed manifest.schema.json
var manifestSchema []byte

const schemaURL = "manifest.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Entry is one level record of the manifest.
type Entry struct {
	Name      string `json:"name"`
	Image     string `json:"image"`      // PNG path relative to the manifest
	DieLayout []int  `json:"die_layout"` // top, bottom, right, left, front, back
	Texts     []Text `json:"texts,omitempty"`
}

// Text is a level caption. With a delay it is revealed one character every
// Delay ticks; without one it shows in full at load.
type Text struct {
	Text  string     `json:"text"`
	Pos   [2]float64 `json:"pos"`
	Delay int        `json:"delay,omitempty"`
	// FollowCamera pins the text to the screen. Otherwise Pos is a projected
	// world offset and the text scrolls with the level.
	FollowCamera bool `json:"follow_camera,omitempty"`
}

// Typed reports whether the text is revealed progressively.
func (t Text) Typed() bool {
	return t.Delay > 0
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(manifestSchema)); err != nil {
			schemaErr = fmt.Errorf("adding manifest schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// ParseManifest validates manifest JSON against the schema and decodes it.
func ParseManifest(data []byte) ([]Entry, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %w", ErrInvalidManifest, err)
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decoding entries: %w", ErrInvalidManifest, err)
	}
	return entries, nil
}
