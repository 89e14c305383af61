package lock_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/labi-le/xbind/internal/lock"
)

func TestPath(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{":0", "xbind_0.lck"},
		{"host:1.0", "xbindhost_1_0.lck"},
		{"/tmp/launch-1/org.x:0", "xbind_tmp_launch-1_org_x_0.lck"},
	}
	for _, tt := range tests {
		if got := filepath.Base(lock.Path(tt.display)); got != tt.want {
			t.Errorf("Path(%q) = %q, want %q", tt.display, got, tt.want)
		}
	}
}

func TestAcquireRelease(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	display := ":" + strings.ReplaceAll(t.Name(), "/", "_")

	unlock, err := lock.Acquire(display)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}

	if err := unlock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	again, err := lock.Acquire(display)
	if err != nil {
		t.Fatalf("Acquire after unlock: %v", err)
	}
	_ = again()
}
