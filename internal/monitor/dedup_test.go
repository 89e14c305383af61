package monitor

import "testing"

func TestDeduplicator(t *testing.T) {
	var d Deduplicator
	steps := []struct {
		data  string
		reset bool
		fresh bool
	}{
		{data: "a", fresh: true},
		{data: "a", fresh: false},
		{data: "b", fresh: true},
		{data: "b", reset: true, fresh: true},
		{data: "b", fresh: false},
	}
	for i, s := range steps {
		if s.reset {
			d.Reset()
		}
		if _, fresh := d.Check([]byte(s.data)); fresh != s.fresh {
			t.Errorf("step %d: Check(%q) fresh = %v, want %v", i, s.data, fresh, s.fresh)
		}
	}
}
