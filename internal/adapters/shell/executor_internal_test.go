package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vmb/internal/core/domain"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		sysEnv    []string
		overrides []string
		expected  []string
	}{
		{
			name:     "system only",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			expected: []string{"USER=test", "PATH=/bin"},
		},
		{
			name:      "override replaces in place",
			sysEnv:    []string{"USER=test", "PATH=/bin"},
			overrides: []string{"PATH=/opt/bin"},
			expected:  []string{"USER=test", "PATH=/opt/bin"},
		},
		{
			name:      "override appends",
			sysEnv:    []string{"USER=test"},
			overrides: []string{"INSTALL_NAME_DIR=/env/lib"},
			expected:  []string{"USER=test", "INSTALL_NAME_DIR=/env/lib"},
		},
		{
			name:     "malformed entries dropped",
			sysEnv:   []string{"USER=test", "garbage"},
			expected: []string{"USER=test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.overrides))
		})
	}
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "cmake")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), []byte("x"), 0o600))

	got, err := lookPath("cmake", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = lookPath("data", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("cmake", nil)
	require.Error(t, err)
}

func TestLookupBuiltin(t *testing.T) {
	tests := []struct {
		argv []string
		want bool
	}{
		{[]string{"rm", "-f", "a"}, true},
		{[]string{"rm", "-rf", "a"}, true},
		{[]string{"mkdir", "-p", "a"}, true},
		{[]string{"rm", "a"}, false},
		{[]string{"rm", "-f"}, false},
		{[]string{"mkdir", "a"}, false},
		{[]string{"cmake", "-p", "a"}, false},
	}

	for _, tt := range tests {
		_, ok := lookupBuiltin(domain.NewCommand("", tt.argv...))
		assert.Equal(t, tt.want, ok, "%v", tt.argv)
	}
}

func TestOperands_RelativeToDir(t *testing.T) {
	cmd := domain.NewCommand("/work", "rm", "-f", "a.py", "/abs/b.py")
	assert.Equal(t, []string{"/work/a.py", "/abs/b.py"}, operands(cmd))
}
