package shell

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/vmb/internal/core/domain"
)

type builtin func(cmd domain.Command) error

// lookupBuiltin returns the in-process implementation of cmd, if there is one.
// Only the exact flag forms issued by the build flows are recognized.
func lookupBuiltin(cmd domain.Command) (builtin, bool) {
	if len(cmd.Args) < 2 {
		return nil, false
	}

	switch {
	case cmd.Name == "rm" && cmd.Args[0] == "-f":
		return removeFiles, true
	case cmd.Name == "rm" && cmd.Args[0] == "-rf":
		return removeTrees, true
	case cmd.Name == "mkdir" && cmd.Args[0] == "-p":
		return makeDirs, true
	default:
		return nil, false
	}
}

func operands(cmd domain.Command) []string {
	paths := make([]string, 0, len(cmd.Args)-1)
	for _, p := range cmd.Args[1:] {
		if !filepath.IsAbs(p) && cmd.Dir != "" {
			p = filepath.Join(cmd.Dir, p)
		}
		paths = append(paths, p)
	}
	return paths
}

func removeFiles(cmd domain.Command) error {
	for _, p := range operands(cmd) {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func removeTrees(cmd domain.Command) error {
	for _, p := range operands(cmd) {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return nil
}

func makeDirs(cmd domain.Command) error {
	for _, p := range operands(cmd) {
		if err := os.MkdirAll(p, 0o750); err != nil {
			return err
		}
	}
	return nil
}
