package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nightlyone/lockfile"
	"github.com/rs/zerolog"
)

var (
	ErrCannotLock     = errors.New("cannot get locked process")
	ErrAlreadyRunning = errors.New("a monitor is already running on this display")
)

// Path is the lock file for display. An empty display stands for $DISPLAY.
func Path(display string) string {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', ':', '.':
			return '_'
		}
		return r
	}, display)
	return filepath.Join(os.TempDir(), "xbind"+name+".lck")
}

// Acquire takes the per-display lock and returns its release function.
func Acquire(display string) (func() error, error) {
	lock, err := lockfile.New(Path(display))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCannotLock, err)
	}

	if lockErr := lock.TryLock(); lockErr != nil {
		owner, err := lock.GetOwner()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCannotLock, lockErr)
		}
		return nil, fmt.Errorf("%w: pid %d", ErrAlreadyRunning, owner.Pid)
	}

	return lock.Unlock, nil
}

// Must is Acquire for main: it exits on failure and logs a failed release.
func Must(display string, logger zerolog.Logger) func() {
	unlock, err := Acquire(display)
	if err != nil {
		logger.Fatal().Err(err).Str("lock", Path(display)).Msg("failed to lock display")
	}

	return func() {
		if err := unlock(); err != nil {
			logger.Warn().Err(err).Msg("cannot unlock display")
		}
	}
}
