package cache

// Keyer builds cache keys.
type Keyer interface {
	// GameKey is the key of a fetched game document.
	GameKey(gameID string) string

	// ArtifactKey is the key of a rendered document of a game.
	ArtifactKey(gameID string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	GameHash string  `json:"game_hash,omitempty"` // content hash of the game document
	Renderer string  `json:"renderer,omitempty"`  // hash of the renderer settings
	Format   string  `json:"format"`
	Scale    float64 `json:"scale,omitempty"`
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard key layout.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GameKey returns "game:<id>". Game IDs are already canonical.
func (DefaultKeyer) GameKey(gameID string) string {
	return "game:" + gameID
}

// ArtifactKey hashes the game ID with every option.
func (DefaultKeyer) ArtifactKey(gameID string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gameID, opts)
}
