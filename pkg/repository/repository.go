// Package repository looks up recorded games.
//
// A game is addressed by a [Key]: the date, the two team codes and the game
// number of the day. Keys have a canonical string form returned by
// [Key.ID], which is also the file name, document ID and cache key suffix
// used by every backend:
//
//	2021_07_04_chcmlb_stlmlb_1
//
// # Backends
//
//   - [FileRepository]: a directory of <id>.json game documents
//   - [MongoRepository]: a MongoDB collection of game documents
//   - [CachedRepository]: any repository behind a [cache.Cache]
package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game"
)

// leagueSuffix is appended to team codes in game IDs.
const leagueSuffix = "mlb"

// Key identifies one game.
type Key struct {
	Date       string // YYYY-MM-DD
	Away       string // upper-case team code
	Home       string // upper-case team code
	GameNumber int    // 1, or 2 for the second game of a doubleheader
}

// ParseKey validates its arguments and returns the normalized key.
func ParseKey(date, away, home string, gameNumber int) (Key, error) {
	if _, err := errors.ValidateDate(date); err != nil {
		return Key{}, err
	}
	a, err := errors.ValidateTeamCode(away)
	if err != nil {
		return Key{}, err
	}
	h, err := errors.ValidateTeamCode(home)
	if err != nil {
		return Key{}, err
	}
	if a == h {
		return Key{}, errors.New(errors.ErrCodeInvalidTeam, "away and home team are both %s", a)
	}
	if err := errors.ValidateGameNumber(gameNumber); err != nil {
		return Key{}, err
	}
	return Key{Date: date, Away: a, Home: h, GameNumber: gameNumber}, nil
}

// ID returns the canonical game identifier.
func (k Key) ID() string {
	return fmt.Sprintf("%s_%s%s_%s%s_%d",
		strings.ReplaceAll(k.Date, "-", "_"),
		strings.ToLower(k.Away), leagueSuffix,
		strings.ToLower(k.Home), leagueSuffix,
		k.GameNumber)
}

// String implements fmt.Stringer.
func (k Key) String() string {
	s := fmt.Sprintf("%s %s @ %s", k.Date, k.Away, k.Home)
	if k.GameNumber > 1 {
		s += " (game " + strconv.Itoa(k.GameNumber) + ")"
	}
	return s
}

// ParseID is the inverse of [Key.ID].
func ParseID(id string) (Key, error) {
	parts := strings.Split(id, "_")
	if len(parts) != 6 {
		return Key{}, errors.New(errors.ErrCodeInvalidInput, "malformed game id %q", id)
	}
	away, okA := strings.CutSuffix(parts[3], leagueSuffix)
	home, okH := strings.CutSuffix(parts[4], leagueSuffix)
	if !okA || !okH {
		return Key{}, errors.New(errors.ErrCodeInvalidInput, "malformed game id %q", id)
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil {
		return Key{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed game id %q", id)
	}
	return ParseKey(strings.Join(parts[:3], "-"), away, home, n)
}

// GameRepository looks up games.
type GameRepository interface {
	// Get returns the game for key. A missing game is reported with
	// [errors.ErrCodeGameNotFound].
	Get(ctx context.Context, key Key) (*game.Game, error)

	// List returns the keys of all games on date, sorted by ID.
	List(ctx context.Context, date string) ([]Key, error)
}

// Close releases the connections held by repo, if any.
func Close(ctx context.Context, repo GameRepository) error {
	if c, ok := repo.(interface{ Close(context.Context) error }); ok {
		return c.Close(ctx)
	}
	return nil
}

func notFound(key Key) error {
	return errors.New(errors.ErrCodeGameNotFound, "no game %s", key)
}
