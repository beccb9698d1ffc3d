// Package initdetect detects which package ecosystems a repository uses,
// so `vet init` can suggest a starter `.vet.toml` tuned to the project.
package initdetect

import (
	"os"
	"path/filepath"
)

// marker pairs an ecosystem tag with the file at its root that indicates
// its presence.
type marker struct {
	ecosystem string
	file      string
}

var markers = []marker{
	{"node", "package.json"},
	{"python", "pyproject.toml"},
	{"go", "go.mod"},
	{"rust", "Cargo.toml"},
	{"ruby", "Gemfile"},
	{"java", "pom.xml"},
}

// DetectEcosystems returns the ecosystem tags whose marker file exists
// directly under root, in the fixed order node, python, go, rust, ruby,
// java.
func DetectEcosystems(root string) []string {
	var found []string
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(root, m.file)); err == nil {
			found = append(found, m.ecosystem)
		}
	}
	return found
}
