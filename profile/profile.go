// Package profile loads the optional per-source TOML sidecar file that
// carries default pipeline flags, so a project doesn't have to repeat CLI
// flags on every invocation.
package profile

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/conifer0us/cnf49-compiler/common"
	"github.com/conifer0us/cnf49-compiler/report"
)

// Profile holds the default pipeline flags loaded from a sidecar file.
type Profile struct {
	NoSSA     bool `toml:"no_ssa"`
	NoPinhole bool `toml:"no_pinhole"`
	PrintAST  bool `toml:"print_ast"`
}

// sidecarPath computes the profile path that pairs with a source file:
// `foo.cnf` pairs with `foo.profile.toml`.
func sidecarPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	base := strings.TrimSuffix(sourcePath, ext)
	return base + common.ProfileFileSuffix
}

// Load reads the profile sidecar for sourcePath if one exists. A missing
// sidecar is not an error: Load returns the all-false default. A sidecar
// that exists but fails to parse is fatal, since the user placed it there
// on purpose.
func Load(sourcePath string) *Profile {
	path := sidecarPath(sourcePath)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}
		}

		report.ReportFatal("unable to open profile file at `%s`: %s", path, err.Error())
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		report.ReportFatal("error reading profile file at `%s`: %s", path, err.Error())
	}

	prof := &Profile{}
	if err := toml.Unmarshal(buf, prof); err != nil {
		report.ReportFatal("error parsing profile file at `%s`: %s", path, err.Error())
	}

	return prof
}
