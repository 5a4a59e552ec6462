package buildtime

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

func init() {
	version = strings.TrimSpace(version)
}

// version string this taskhive has been built with.
func VERSION() string {
	return version
}
