package lock

import (
	"os"
	"path/filepath"

	"github.com/nightlyone/lockfile"
	"github.com/rs/zerolog"
)

const file = "clipsync.lck"

// Must makes sure only one sync runs per machine: two of them would keep
// answering each other's writes.
func Must(logger zerolog.Logger) func() {
	lock, err := lockfile.New(filepath.Join(os.TempDir(), file))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create lock file")
	}

	if lockErr := lock.TryLock(); lockErr != nil {
		owner, err := lock.GetOwner()
		if err != nil {
			logger.Fatal().Err(err).AnErr("lock", lockErr).Msg("cannot get locked process")
		}
		logger.Fatal().Int("pid", owner.Pid).Msg("clipsync is already running")
	}

	return func() {
		Unlock(lock, logger)
	}
}

func Unlock(lock lockfile.Lockfile, l zerolog.Logger) {
	if err := lock.Unlock(); err != nil {
		l.Error().Err(err).Msg("cannot unlock process")
	}
}
