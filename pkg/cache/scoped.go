package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one backend without colliding:
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GameKey generates a prefixed game key.
func (k *ScopedKeyer) GameKey(gameID string) string {
	return k.prefix + k.inner.GameKey(gameID)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(gameID string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(gameID, opts)
}
