//go:build !((linux || freebsd) && (amd64 || arm64))

package xlib

import (
	"github.com/labi-le/xbind/pkg/keysym"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
)

type Conn struct{}

func Open(string, zerolog.Logger) (*Conn, error) { return nil, ErrUnavailable }

func (*Conn) Root() xdef.Window { return xdef.None }

func (*Conn) InternNames([]string) ([]xdef.Atom, error) { return nil, ErrUnavailable }

func (*Conn) SelectInput(xdef.Window, xdef.EventMask) error { return ErrUnavailable }

func (*Conn) ReadEvent() ([]byte, error) { return nil, ErrUnavailable }

func (*Conn) Keysym(xdef.KeyCode, xdef.ModMask) (keysym.Sym, error) { return 0, ErrUnavailable }

func (*Conn) SendEvent(xdef.Window, bool, xdef.EventMask, xevent.Event) error {
	return ErrUnavailable
}

func (*Conn) Close() error { return nil }
