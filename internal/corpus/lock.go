package corpus

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"corhoh/internal/failure"
)

// LockPath returns the advisory lock file guarding output.
func LockPath(output string) string {
	return filepath.Join(filepath.Dir(output), "."+filepath.Base(output)+".lock")
}

// outputLock holds the flock for one build. The lock file is left on disk so
// every build contends on the same inode.
type outputLock struct {
	lock *flock.Flock
}

func acquireOutputLock(output string) (*outputLock, error) {
	path := LockPath(output)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, "corpus", "lock output", path, err)
	}
	if !ok {
		return nil, failure.Wrap(failure.ErrValidation, "corpus", "lock output",
			fmt.Sprintf("another build is writing %s", output), nil)
	}
	return &outputLock{lock: lock}, nil
}

func (l *outputLock) release() {
	if l == nil || l.lock == nil {
		return
	}
	_ = l.lock.Unlock()
}
