package gen

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// writeFile persists one rendered unit below the target directory. Units
// with a ".go" suffix get the goimports pass when the config asks for it;
// other target languages are written verbatim.
func (g *Generator) writeFile(u Unit, text string) error {
	full := filepath.Join(g.cfg.Target, u.File)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return NewGenerationError(u.Name, u.File, "create directory", err)
	}

	data := []byte(text)
	if g.cfg.FormatGo && strings.HasSuffix(u.File, ".go") {
		formatted, err := imports.Process(full, data, nil)
		if err != nil {
			// Keep the unformatted text around for debugging; we are
			// already in an error state, so the write is best effort.
			_ = os.WriteFile(full+".error", data, 0o644)
			return NewGenerationError(u.Name, u.File, "format", err)
		}
		data = formatted
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return NewGenerationError(u.Name, u.File, "write", err)
	}
	return nil
}
