package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game"
	scio "github.com/matzehuels/scorecard/pkg/io"
	"github.com/matzehuels/scorecard/pkg/observability"
)

// FileRepository reads game documents from a directory. Each game is stored
// as <id>.json.
type FileRepository struct {
	dir string
}

// NewFileRepository returns a repository rooted at dir. The directory must
// exist.
func NewFileRepository(dir string) (*FileRepository, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "game directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s is not a directory", dir)
	}
	return &FileRepository{dir: dir}, nil
}

// Dir returns the repository directory.
func (r *FileRepository) Dir() string { return r.dir }

// Path returns the file a game is stored in.
func (r *FileRepository) Path(key Key) string {
	return filepath.Join(r.dir, key.ID()+".json")
}

// Get loads the game document for key.
func (r *FileRepository) Get(ctx context.Context, key Key) (g *game.Game, err error) {
	start := time.Now()
	defer func() {
		observability.Repository().OnFetch(ctx, "file", key.ID(), time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := r.Path(key)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, notFound(key)
	}
	return scio.ImportJSON(path)
}

// Put writes g as the document for key, replacing any previous one.
func (r *FileRepository) Put(ctx context.Context, key Key, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp := r.Path(key) + ".tmp"
	if err := scio.ExportJSON(tmp, g); err != nil {
		return err
	}
	return os.Rename(tmp, r.Path(key))
}

// List returns the keys of the documents stored for date. Files whose
// names are not game IDs are skipped.
func (r *FileRepository) List(ctx context.Context, date string) ([]Key, error) {
	if _, err := errors.ValidateDate(date); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := strings.ReplaceAll(date, "-", "_") + "_"
	matches, err := filepath.Glob(filepath.Join(r.dir, prefix+"*.json"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list %s", r.dir)
	}
	sort.Strings(matches)

	var keys []Key
	for _, m := range matches {
		key, err := ParseID(strings.TrimSuffix(filepath.Base(m), ".json"))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}
