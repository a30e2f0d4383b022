package assets

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/automoto/folio/viewport"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 100 * time.Millisecond

// ProfileWatcher reloads a profiles file whenever it changes on disk and
// hands each successfully parsed set to the frame loop over Updates.
type ProfileWatcher struct {
	Updates chan viewport.ProfileSet

	path    string
	watcher *fsnotify.Watcher
	log     *zap.Logger
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchProfiles watches the directory holding path, since editors often
// replace files rather than write them in place.
func WatchProfiles(path string, log *zap.Logger) (*ProfileWatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	pw := &ProfileWatcher{
		Updates: make(chan viewport.ProfileSet, 1),
		path:    abs,
		watcher: w,
		log:     log,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go pw.run()
	return pw, nil
}

// Close stops the watcher and waits for its goroutine to exit. Updates is
// closed afterwards.
func (pw *ProfileWatcher) Close() error {
	var err error
	pw.once.Do(func() {
		close(pw.closeCh)
		err = pw.watcher.Close()
		<-pw.done
	})
	return err
}

func (pw *ProfileWatcher) run() {
	defer close(pw.done)
	defer close(pw.Updates)

	// Reload on the trailing edge so a truncate followed by a write is read
	// once, after the write.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != pw.path {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			pw.reload()
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			pw.log.Warn("profile watcher error", zap.Error(err))
		case <-pw.closeCh:
			return
		}
	}
}

func (pw *ProfileWatcher) reload() {
	set, err := LoadProfilesFile(pw.path)
	if err != nil {
		pw.log.Warn("ignoring profile change", zap.String("path", pw.path), zap.Error(err))
		return
	}
	pw.log.Info("profiles reloaded", zap.String("path", pw.path))

	// Only the newest set matters; drop a stale one the loop hasn't read.
	select {
	case <-pw.Updates:
	default:
	}
	select {
	case pw.Updates <- set:
	case <-pw.closeCh:
	}
}
