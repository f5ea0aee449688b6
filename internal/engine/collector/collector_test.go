package collector_test

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vmb/internal/adapters/shell"
	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/core/ports/mocks"
	"go.trai.ch/vmb/internal/engine/collector"
	"go.uber.org/mock/gomock"
)

const widgetTests = `import unittest


class Base(unittest.TestCase):
    def test_common(self):
        pass


class Widget(Base):
    def test_a(self):
        pass


class Multi(
        unittest.TestCase):
    def test_b(self):
        pass
`

const projectBase = `import unittest


class ProjectCase(unittest.TestCase):
    def helper(self):
        return 1
`

const deepTests = `from pkg.base import ProjectCase


class Deep(ProjectCase):
    def test_deep(self):
        self.assertEqual(1, self.helper())
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func projectWithTests(t *testing.T) string {
	t.Helper()
	project := t.TempDir()
	testDir := filepath.Join(project, collector.TestDir)
	writeFile(t, filepath.Join(testDir, "widget_test.py"), widgetTests)
	writeFile(t, filepath.Join(testDir, "README.md"), "not python")
	writeFile(t, filepath.Join(testDir, "pkg", "__init__.py"), "")
	writeFile(t, filepath.Join(testDir, "pkg", "base.py"), projectBase)
	writeFile(t, filepath.Join(testDir, "pkg", "deep_test.py"), deepTests)
	return project
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return logger
}

func TestModules(t *testing.T) {
	project := projectWithTests(t)

	modules, err := collector.Modules(filepath.Join(project, collector.TestDir))
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg.base", "pkg.deep_test", "widget_test"}, modules)
}

func TestModules_MissingDir(t *testing.T) {
	modules, err := collector.Modules(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "a.b.c_test", collector.ModuleName(filepath.Join("a", "b", "c_test.py")))
	assert.Equal(t, "top", collector.ModuleName("top.py"))
}

func TestNormalizePattern(t *testing.T) {
	assert.Equal(t, ".", collector.NormalizePattern(""))
	assert.Equal(t, "widget_test", collector.NormalizePattern("widget_test.py"))
	assert.Equal(t, "Widget", collector.NormalizePattern("Widget"))
}

func TestCollector_Collect(t *testing.T) {
	project := projectWithTests(t)
	testDir := filepath.Join(project, collector.TestDir)
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug("widget_test.Widget.test_a pattern:widget_test match:true")
	logger.EXPECT().Debug("pkg.deep_test.Deep.test_deep pattern:widget_test match:false")

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, stdout, _ io.Writer) error {
			assert.Equal(t, "/env/bin/python", cmd.Name)
			assert.Equal(t, project, cmd.Dir)
			assert.Equal(t, "-c", cmd.Args[0])
			assert.Equal(t, []string{"list", testDir, "widget_test", "pkg.base", "pkg.deep_test", "widget_test"}, cmd.Args[2:])
			_, _ = io.WriteString(stdout, `{"tests": [`+
				`{"id": "widget_test.Widget.test_a", "module": "widget_test", "match": true}, `+
				`{"id": "pkg.deep_test.Deep.test_deep", "module": "pkg.deep_test", "match": false}]}`+"\n")
			return nil
		})

	c := collector.New(executor, logger)
	matched, err := c.Collect(t.Context(), "/env/bin/python", project, "widget_test.py")
	require.NoError(t, err)
	assert.Equal(t, []domain.TestCase{{ID: "widget_test.Widget.test_a", Module: "widget_test"}}, matched)
}

func TestCollector_Collect_NoModules(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := collector.New(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl))

	matched, err := c.Collect(t.Context(), "python", t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestCollector_Collect_PatternError(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, _ = io.WriteString(stdout, `{"tests": [], "pattern_error": "missing ), unterminated subpattern at position 0"}`+"\n")
			return nil
		})

	c := collector.New(executor, mocks.NewMockLogger(ctrl))
	_, err := c.Collect(t.Context(), "python", projectWithTests(t), "(")
	require.ErrorIs(t, err, domain.ErrInvalidTestPattern)
}

func TestCollector_Collect_ImportFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, _, stderr io.Writer) error {
			_, _ = io.WriteString(stderr, "Traceback\nModuleNotFoundError: No module named 'missing'\n")
			return assert.AnError
		})

	c := collector.New(executor, mocks.NewMockLogger(ctrl))
	_, err := c.Collect(t.Context(), "python", projectWithTests(t), "")
	require.ErrorIs(t, err, domain.ErrTestDiscoveryFailed)
}

func TestCollector_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	c := collector.New(executor, mocks.NewMockLogger(ctrl))
	cases := []domain.TestCase{{ID: "a_test.A.test_one"}, {ID: "a_test.A.test_two"}}

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, stdout, _ io.Writer) error {
			assert.Equal(t, "/env/bin/python", cmd.Name)
			assert.Equal(t, "/p", cmd.Dir)
			assert.Equal(t, "-c", cmd.Args[0])
			assert.Equal(t, []string{"run", filepath.Join("/p", collector.TestDir), "a_test.A.test_one", "a_test.A.test_two"}, cmd.Args[2:])
			_, _ = io.WriteString(stdout, "noise\n")
			_, _ = io.WriteString(stdout, `{"tests_run": 2, "failures": 1, "errors": 0, "skipped": 0}`+"\n")
			return nil
		})

	result, err := c.Run(t.Context(), "/env/bin/python", "/p", cases, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, domain.TestResult{Ran: true, TestsRun: 2, Failures: 1}, result)
	assert.False(t, result.WasSuccessful())
}

func TestCollector_Run_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := collector.New(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl))

	result, err := c.Run(t.Context(), "python", "/p", nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.True(t, result.WasSuccessful())
	assert.Zero(t, result.TestsRun)
}

func TestCollector_Run_NoSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	c := collector.New(executor, mocks.NewMockLogger(ctrl))
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := c.Run(t.Context(), "python", "/p", []domain.TestCase{{ID: "x.Y.test"}}, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrTestRunFailed)
}

func TestCollector_Run_InterpreterFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	c := collector.New(executor, mocks.NewMockLogger(ctrl))
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := c.Run(t.Context(), "python", "/p", []domain.TestCase{{ID: "x.Y.test"}}, io.Discard, io.Discard)
	require.ErrorIs(t, err, assert.AnError)
}

func TestCollector_Python(t *testing.T) {
	interpreter, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not installed")
	}

	ctrl := gomock.NewController(t)
	logger := quietLogger(ctrl)
	c := collector.New(shell.NewExecutor(logger), logger)
	project := projectWithTests(t)

	t.Run("inherited and multi-line classes", func(t *testing.T) {
		cases, err := c.Collect(t.Context(), interpreter, project, "")
		require.NoError(t, err)

		ids := make([]string, 0, len(cases))
		for _, tc := range cases {
			ids = append(ids, tc.ID)
		}
		assert.Equal(t, []string{
			"pkg.deep_test.Deep.test_deep",
			"widget_test.Base.test_common",
			"widget_test.Multi.test_b",
			"widget_test.Widget.test_a",
			"widget_test.Widget.test_common",
		}, ids)
	})

	t.Run("python pattern syntax", func(t *testing.T) {
		cases, err := c.Collect(t.Context(), interpreter, project, `^(?!.*Base)widget_test\.`)
		require.NoError(t, err)
		assert.Len(t, cases, 3)

		_, err = c.Collect(t.Context(), interpreter, project, "(")
		require.ErrorIs(t, err, domain.ErrInvalidTestPattern)
	})

	t.Run("run", func(t *testing.T) {
		cases, err := c.Collect(t.Context(), interpreter, project, "Widget")
		require.NoError(t, err)

		result, err := c.Run(t.Context(), interpreter, project, cases, io.Discard, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, domain.TestResult{Ran: true, TestsRun: 2}, result)
	})
}
