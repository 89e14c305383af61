package ctxlog_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/xbind/pkg/ctxlog"
	"github.com/rs/zerolog"
)

func TestComponentAndOp(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.Op(ctxlog.Component(zerolog.New(&buf), "monitor"), "monitor.Watch")
	logger.Info().Msg("hello")

	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	want := map[string]string{
		"level":     "info",
		"component": "monitor",
		"op":        "monitor.Watch",
		"message":   "hello",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
