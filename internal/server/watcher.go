package server

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader watches the serving root and broadcasts reload events to
// connected SSE clients. A watcher that fails to come up is a warning, not
// an error: the server keeps serving, just without live reload.
type Reloader struct {
	root     string
	debounce time.Duration

	watcher    *fsnotify.Watcher
	reloadChan chan struct{}
	done       chan struct{}
	wg         sync.WaitGroup

	clientMu sync.Mutex
	clients  map[chan struct{}]struct{}

	stateMu   sync.Mutex
	lastState string
}

func newReloader(root string, debounce time.Duration) *Reloader {
	return &Reloader{
		root:       root,
		debounce:   debounce,
		reloadChan: make(chan struct{}, 1),
		done:       make(chan struct{}),
		clients:    make(map[chan struct{}]struct{}),
	}
}

// Start brings up the fsnotify watcher and the broadcast loop.
func (r *Reloader) Start() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("Failed to create file watcher, live reload disabled", "error", err)
		return
	}
	r.watcher = w

	if err := r.addRecursive(r.root); err != nil {
		slog.Warn("Failed to watch directory", "dir", r.root, "error", err)
	}

	if state, err := treeState(r.root); err == nil {
		r.lastState = state
	}

	r.wg.Add(2)
	go r.watchLoop()
	go r.broadcastLoop()
}

// Stop tears down the watcher and unblocks all connected clients.
func (r *Reloader) Stop() {
	if r.watcher != nil {
		if err := r.watcher.Close(); err != nil {
			slog.Warn("Failed to close file watcher", "error", err)
		}
	}
	close(r.done)
	r.wg.Wait()
}

// addRecursive registers dir and every subdirectory with the watcher,
// skipping hidden directories like .git.
func (r *Reloader) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if name := filepath.Base(path); name[0] == '.' && path != dir && path != "." {
			return filepath.SkipDir
		}
		return r.watcher.Add(path)
	})
}

func (r *Reloader) watchLoop() {
	defer r.wg.Done()

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Chmod != 0 {
				continue
			}
			// New directories need watches of their own.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = r.addRecursive(event.Name)
				}
			}

			// Debounce rapid event bursts, e.g. during a rebuild.
			if debounceTimer != nil {
				debounceTimer.Reset(r.debounce)
			} else {
				debounceTimer = time.AfterFunc(r.debounce, r.fire)
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

// fire runs after the debounce window. Events that left the tree exactly as
// it was (editor temp files, touches) are dropped by comparing fingerprints.
func (r *Reloader) fire() {
	state, err := treeState(r.root)

	r.stateMu.Lock()
	if err == nil && state == r.lastState {
		r.stateMu.Unlock()
		return
	}
	r.lastState = state
	r.stateMu.Unlock()

	select {
	case r.reloadChan <- struct{}{}:
	default:
	}
}

func (r *Reloader) broadcastLoop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.done:
			return
		case <-r.reloadChan:
			r.clientMu.Lock()
			for clientChan := range r.clients {
				select {
				case clientChan <- struct{}{}:
				default:
				}
			}
			r.clientMu.Unlock()
		}
	}
}
