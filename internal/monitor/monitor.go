// Package monitor is the event loop that owns a display connection: it reads
// raw XEvent buffers, decodes them and hands them out as updates.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync/atomic"

	"github.com/labi-le/xbind/pkg/ctxlog"
	"github.com/labi-le/xbind/pkg/keysym"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
)

var ErrDisconnected = errors.New("display connection lost")

// Source yields native event buffers. Close must unblock a pending ReadEvent.
type Source interface {
	ReadEvent() ([]byte, error)
	Close() error
}

type Update struct {
	Event  xevent.Event
	Raw    []byte
	Hash   uint64
	Keysym keysym.Sym

	names xevent.AtomNamer
}

func (u Update) MarshalZerologObject(e *zerolog.Event) {
	xevent.Object(u.Event, u.names).MarshalZerologObject(e)
	e.Uint64("hash", u.Hash)
	if u.Keysym == keysym.NoSymbol {
		return
	}
	e.Stringer("keysym", u.Keysym)
	if r, ok := keysym.Lookup(u.Keysym); ok {
		e.Str("char", string(r))
	}
}

// String is the one-line form of the event.
func (u Update) String() string {
	return xevent.Format(u.Event, u.names)
}

type Stats struct {
	Events     uint64
	Bytes      uint64
	Duplicates uint64
	Filtered   uint64
	Malformed  uint64
}

func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("events", s.Events).
		Uint64("bytes", s.Bytes).
		Uint64("duplicates", s.Duplicates).
		Uint64("filtered", s.Filtered).
		Uint64("malformed", s.Malformed)
}

type Monitor struct {
	src    Source
	opts   Options
	logger zerolog.Logger
	dedup  Deduplicator

	events     atomic.Uint64
	bytes      atomic.Uint64
	duplicates atomic.Uint64
	filtered   atomic.Uint64
	malformed  atomic.Uint64
}

func New(src Source, opts ...Option) *Monitor {
	o := NewOptions(opts...)
	return &Monitor{
		src:    src,
		opts:   o,
		logger: ctxlog.Component(o.Logger, "monitor"),
	}
}

// Watch reads events until ctx is done or the source fails, and closes upd
// on return. Cancelling ctx closes the source.
func (m *Monitor) Watch(ctx context.Context, upd chan<- Update) error {
	defer close(upd)

	log := ctxlog.Op(m.logger, "monitor.Watch")
	stop := context.AfterFunc(ctx, func() {
		if err := m.src.Close(); err != nil {
			log.Warn().Err(err).Msg("close source")
		}
	})
	defer stop()

	for {
		buf, err := m.src.ReadEvent()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return ErrDisconnected
			}
			return fmt.Errorf("read event: %w", err)
		}

		u, ok := m.process(log, buf)
		if !ok {
			continue
		}

		select {
		case upd <- u:
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Monitor) process(log zerolog.Logger, buf []byte) (Update, bool) {
	ev, err := m.opts.Codec.Decode(buf)
	if err != nil {
		m.malformed.Add(1)
		log.Warn().Err(err).Int("length", len(buf)).Msg("decode event")
		return Update{}, false
	}
	raw := buf[:m.opts.Codec.EventSize()]

	if len(m.opts.Types) > 0 && !slices.Contains(m.opts.Types, ev.Any().Type) {
		m.filtered.Add(1)
		return Update{}, false
	}

	hash, fresh := m.dedup.Check(m.hashView(ev, raw))
	if m.opts.Dedup && !fresh {
		m.duplicates.Add(1)
		log.Trace().Uint64("hash", hash).Msg("skip duplicate")
		return Update{}, false
	}

	m.events.Add(1)
	m.bytes.Add(uint64(len(raw)))

	u := Update{
		Event: ev,
		Raw:   raw,
		Hash:  hash,
		names: m.opts.Names,
	}
	if key, ok := ev.(*xevent.KeyEvent); ok && m.opts.Keys != nil {
		sym, err := m.opts.Keys.Keysym(xdef.KeyCode(key.Keycode), key.State)
		if err != nil {
			log.Debug().Err(err).Uint32("keycode", key.Keycode).Msg("keysym lookup")
		}
		u.Keysym = sym
	}
	return u, true
}

// hashView is the buffer with the serial cleared, so repeats of one event
// that differ only in request sequence hash the same.
func (m *Monitor) hashView(ev xevent.Event, raw []byte) []byte {
	layout, _ := m.opts.Codec.Layout(ev.Any().Type)
	f, ok := layout.Field("serial")
	if !ok {
		return raw
	}
	view := slices.Clone(raw)
	clear(view[f.Offset : f.Offset+f.Width])
	return view
}

// Forget drops the duplicate filter's memory, so the next event is reported
// even if it repeats the last one. Call it when the selected input changes.
func (m *Monitor) Forget() {
	m.dedup.Reset()
}

func (m *Monitor) Stats() Stats {
	return Stats{
		Events:     m.events.Load(),
		Bytes:      m.bytes.Load(),
		Duplicates: m.duplicates.Load(),
		Filtered:   m.filtered.Load(),
		Malformed:  m.malformed.Load(),
	}
}
