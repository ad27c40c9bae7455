// Package configfinder locates the tempdial config file by walking up from a
// starting directory.
package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/infra/config"
	"github.com/aalvaropc/tempdial/internal/ports"
)

const opFind = "configfinder.find"

// Finder searches each directory for one of Names, nearest directory first.
// The walk stops at StopAt (if set) or at the filesystem root.
type Finder struct {
	Names  []string
	StopAt string
}

func NewFinder() *Finder {
	f := &Finder{Names: config.FileNames}
	if home, err := os.UserHomeDir(); err == nil {
		f.StopAt = filepath.Clean(home)
	}
	return f
}

var _ ports.ConfigLocator = (*Finder)(nil)

// FindRoot returns the directory holding the nearest config file.
func (f *Finder) FindRoot(startDir string) (string, error) {
	p, err := f.FindFile(startDir)
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// FindFile returns the path of the nearest config file. Within one directory
// Names are tried in order.
func (f *Finder) FindFile(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{Op: opFind, Kind: domain.KindInvalidConfig, Err: errors.New("startDir is empty")}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: opFind, Kind: domain.KindExecution, Path: startDir, Err: err}
	}

	// A config file passed directly is accepted as is.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		if f.accepts(filepath.Base(abs)) {
			return abs, nil
		}
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		for _, name := range f.Names {
			p := filepath.Join(cur, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur || (f.StopAt != "" && cur == f.StopAt) {
			return "", &domain.OpError{Op: opFind, Kind: domain.KindNotFound, Path: abs, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}

func (f *Finder) accepts(name string) bool {
	for _, n := range f.Names {
		if n == name {
			return true
		}
	}
	return false
}
