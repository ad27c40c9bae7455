// Package configinit scaffolds a tempdial.yaml and ignores the local log directory.
package configinit

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/tempdial/internal/domain"
	"github.com/aalvaropc/tempdial/internal/infra/config"
	"github.com/aalvaropc/tempdial/internal/ports"
)

//go:embed templates/tempdial.yaml
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes tempdial.yaml under root. An existing file is kept unless force is set.
func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	logs := filepath.Join(root, ".tempdial", "logs")
	if err := os.MkdirAll(logs, 0o755); err != nil {
		return &domain.OpError{Op: "configinit.mkdir", Kind: domain.KindExecution, Path: logs, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "configinit.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, config.FileName)
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}

	b, err := templatesFS.ReadFile("templates/tempdial.yaml")
	if err != nil {
		return &domain.OpError{Op: "configinit.template", Kind: domain.KindExecution, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return &domain.OpError{Op: "configinit.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

func ensureGitignore(root string) error {
	const header = "# tempdial"
	entries := []string{
		".tempdial/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
