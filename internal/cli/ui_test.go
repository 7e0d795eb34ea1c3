package cli

import (
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRenderStats(t *testing.T) {
	fresh := renderStats([]string{"svg", "pdf"}, 4096, false)
	if !strings.Contains(fresh, "svg, pdf") || !strings.Contains(fresh, "4.0 KB") {
		t.Errorf("renderStats = %q", fresh)
	}
	cached := renderStats([]string{"svg"}, 10, true)
	if !strings.Contains(cached, iconCached) {
		t.Errorf("cached stats should carry the cache icon: %q", cached)
	}
}
