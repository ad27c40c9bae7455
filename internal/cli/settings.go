package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/infra/config"
	"github.com/aalvaropc/tempdial/internal/infra/configfinder"
	"github.com/aalvaropc/tempdial/internal/ports"
)

type settings struct {
	root  string
	path  string
	found bool
	cfg   domain.Config
}

// loadSettings resolves the config root and reads tempdial.yaml from it.
// A missing file is not an error: the defaults apply.
func loadSettings(configFlag string) (*settings, error) {
	root, err := resolveConfigRoot(configFlag, configfinder.NewFinder())
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	found := true
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		found = false
	}

	return &settings{
		root:  root,
		path:  config.Locate(root),
		found: found,
		cfg:   cfg,
	}, nil
}

// resolveConfigRoot prefers the --config flag, then the nearest directory
// above the working directory holding tempdial.yaml, then the working
// directory itself.
func resolveConfigRoot(configFlag string, locator ports.ConfigLocator) (string, error) {
	c := strings.TrimSpace(configFlag)
	if c != "" {
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", fmt.Errorf("invalid config path: %w", err)
		}
		if config.IsFileName(filepath.Base(abs)) {
			abs = filepath.Dir(abs)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, nil
		}
		return "", err
	}
	return root, nil
}
