package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/scorecard/pkg/game"
)

// ReadJSON decodes a game document from r.
//
// ReadJSON returns an error if the JSON is malformed or a timestamp is not
// RFC 3339. It does not validate the game structure; see [game.Game.Validate].
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*game.Game, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return d.Game()
}

// ImportJSON reads the game document at path.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*game.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
