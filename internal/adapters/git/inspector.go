// Package git collects version control metadata by shelling out to git.
package git

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// internalSuffix is dropped from module keys.
const internalSuffix = "-internal"

// Inspector implements ports.ModuleInspector.
type Inspector struct {
	executor ports.Executor
	now      func() time.Time
}

// NewInspector creates an Inspector running git through executor.
func NewInspector(executor ports.Executor) *Inspector {
	return &Inspector{
		executor: executor,
		now:      time.Now,
	}
}

// Inspect returns metadata for root and all of its submodules, recursively.
func (i *Inspector) Inspect(ctx context.Context, root string) (domain.ModuleSet, error) {
	out, err := i.git(ctx, root, "submodule", "--quiet", "foreach", "--recursive", "echo `pwd`")
	if err != nil {
		return nil, i.fail(err, root)
	}

	paths := []string{root}
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}

	infos := make([]domain.ModuleInfo, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for idx, path := range paths {
		g.Go(func() error {
			info, err := i.moduleInfo(gctx, path)
			if err != nil {
				return err
			}
			infos[idx] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := make(domain.ModuleSet, len(infos))
	for _, info := range infos {
		set[strings.ReplaceAll(info.Name, internalSuffix, "")] = info
	}
	return set, nil
}

func (i *Inspector) moduleInfo(ctx context.Context, path string) (domain.ModuleInfo, error) {
	branch, err := i.git(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return domain.ModuleInfo{}, i.fail(err, path)
	}
	commit, err := i.git(ctx, path, "rev-parse", "HEAD")
	if err != nil {
		return domain.ModuleInfo{}, i.fail(err, path)
	}
	date, err := i.git(ctx, path, "show", "-s", "--format=%ci", commit)
	if err != nil {
		return domain.ModuleInfo{}, i.fail(err, path)
	}

	if _, err := i.git(ctx, path, "update-index", "--ignore-submodules", "--refresh"); err != nil {
		commit += domain.DirtySuffix
	}

	return domain.ModuleInfo{
		Name:   filepath.Base(path),
		Path:   path,
		Branch: branch,
		Commit: commit,
		Date:   date,
		Now:    i.now().String(),
	}, nil
}

// git runs one git command in dir and returns its trimmed stdout.
func (i *Inspector) git(ctx context.Context, dir string, args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := domain.NewCommand(dir, append([]string{"git"}, args...)...)
	if err := i.executor.Execute(ctx, cmd, &stdout, io.Discard); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (*Inspector) fail(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrModuleInfoFailed.Error()), "path", path)
}
