package source

import (
	"context"
	"errors"
	"io/fs"
	"strings"
)

// ErrNotFound is returned when a registry file does not exist in the source.
var ErrNotFound = errors.New("registry file not found")

// Source reads registry files by slash-separated name relative to the registry root.
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// ValidName reports whether name is a clean relative path that cannot leave the root.
func ValidName(name string) bool {
	return fs.ValidPath(name) && name != "." && !strings.ContainsAny(name, "\\\x00")
}
