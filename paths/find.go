// Package paths locates and opens animation archives by short name.
//
// Archives are searched for in a handful of well-known directories, so
// commands can refer to "unit-attack.sza" without caring where the
// datafiles actually live.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// getPossiblePathDirs lists the directories searched by Find, in order of
// preference.
func getPossiblePathDirs() []string {
	dirs := []string{
		"datafiles",
		".",
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "src", "badc0de.net", "pkg", "go-sza", "datafiles"))
	}
	dirs = append(dirs, os.Args[0]+".runfiles/go_sza/datafiles")
	return dirs
}

func getPossiblePaths(fileName string) []string {
	var paths []string
	for _, dir := range getPossiblePathDirs() {
		paths = append(paths, filepath.Join(dir, fileName))
	}
	return paths
}

// Find locates the passed archive shortname and returns an absolute or
// relative path to find the archive at.
//
// For example, for "unit-attack.sza" it may return
// "datafiles/unit-attack.sza". If the archive cannot be found, an empty
// string is returned.
func Find(fileName string) string {
	for _, path := range getPossiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed archive in the same locations that Find would
// look in, and opens it. If Find returns an empty string, an error is
// returned.
func Open(fileName string) (io.ReadCloser, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(os.ErrNotExist, "go-sza/paths.Open(%q): not found in any known directory", fileName)
	}
	return os.Open(path)
}

// NoFindOpen opens the passed path directly, skipping the directory
// search.
func NoFindOpen(fileName string) (io.ReadCloser, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "go-sza/paths.NoFindOpen(%q)", fileName)
	}
	return f, nil
}
