// Package web serves decoded animations over HTTP, as animated GIFs,
// single-frame PNGs and an HTML index with inline thumbnails.
package web

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-sza/sza"
)

// Store holds animations decoded from a directory of .sza archives,
// keyed by file name without the extension.
//
// A Store is read-only after LoadDir returns; the animations inside are
// immutable, so handlers read them without locking.
type Store struct {
	anims map[string]*sza.Animation
}

// LoadDir decodes every .sza and .zip archive in dir. Archives are
// independent of each other, so they are decoded concurrently; the first
// failure aborts the load.
func LoadDir(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "go-sza/web.LoadDir(%q)", dir)
	}

	var (
		g     errgroup.Group
		mu    sync.Mutex
		anims = map[string]*sza.Animation{}
	)
	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if entry.IsDir() || (ext != ".sza" && ext != ".zip") {
			continue
		}
		g.Go(func() error {
			a, err := sza.DecodeFile(filepath.Join(dir, name))
			if err != nil {
				return errors.Wrapf(err, "loading %s", name)
			}
			key := strings.TrimSuffix(name, ext)
			mu.Lock()
			anims[key] = a
			mu.Unlock()
			glog.Infof("loaded animation %q: %dx%d, %d frames", key, a.Width(), a.Height(), a.FrameCount())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Store{anims: anims}, nil
}

// Animation returns the named animation, if loaded.
func (s *Store) Animation(name string) (*sza.Animation, bool) {
	a, ok := s.anims[name]
	return a, ok
}

// Names returns the loaded animation names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.anims))
	for name := range s.anims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
