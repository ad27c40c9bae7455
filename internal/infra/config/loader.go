package config

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/tempdial/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written by init and looked up first.
const FileName = "tempdial.yaml"

// FileNames lists the accepted config file names in lookup order.
var FileNames = []string{FileName, "tempdial.yml"}

// Locate returns the config file under root, preferring FileName. When none
// exists it returns root/FileName.
func Locate(root string) string {
	for _, name := range FileNames {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return filepath.Join(root, FileName)
}

// IsFileName reports whether name is one of the accepted config file names.
func IsFileName(name string) bool {
	for _, n := range FileNames {
		if n == name {
			return true
		}
	}
	return false
}

// Load reads the config file under root and applies it on top of defaults.
// A missing file yields the defaults together with a not_found error.
func Load(root string) (domain.Config, error) {
	return LoadFile(Locate(root))
}

func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse decodes raw YAML; path is only used for error context.
func Parse(path string, b []byte) (domain.Config, error) {
	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return MapConfig(path, dto)
}

// Marshal renders cfg in the same shape Load accepts.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(ToYAML(cfg))
}
