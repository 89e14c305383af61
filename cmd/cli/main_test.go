package main

import (
	"slices"
	"testing"

	"github.com/labi-le/xbind/internal/config"
	"github.com/labi-le/xbind/pkg/xdef"
)

func changed(names ...string) func(string) bool {
	return func(name string) bool { return slices.Contains(names, name) }
}

func TestReloadedMask(t *testing.T) {
	file := config.Config{Backend: config.BackendXGB, Mask: []string{"Exposure"}}

	tests := []struct {
		name string
		act  action
		want xdef.EventMask
	}{
		{
			name: "file mask without flags",
			act:  action{set: changed()},
			want: xdef.ExposureMask,
		},
		{
			name: "mask flag wins over file",
			act: action{
				overrides: config.Config{Mask: []string{"KeyPress"}},
				set:       changed("mask"),
			},
			want: xdef.KeyPressMask,
		},
		{
			name: "unset mask flag is ignored",
			act: action{
				overrides: config.Config{Mask: []string{"KeyPress"}, Display: ":3"},
				set:       changed("display"),
			},
			want: xdef.ExposureMask,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reloadedMask(file, tt.act)
			if err != nil {
				t.Fatalf("reloadedMask: %v", err)
			}
			if got != tt.want {
				t.Errorf("mask = %v, want %v", got, tt.want)
			}
		})
	}
}
