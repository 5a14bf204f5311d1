package skeleton

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/expressgen/internal/output"
	"github.com/opmodel/expressgen/internal/testutil"
)

// recordingFS records every call and fails the first call whose path ends
// with failOn.
type recordingFS struct {
	calls   []string
	failOn  string
	failErr error
}

func (r *recordingFS) Mkdir(path string, _ fs.FileMode) error {
	return r.record("mkdir", path)
}

func (r *recordingFS) WriteNewFile(path string, _ []byte, _ fs.FileMode) error {
	return r.record("write", path)
}

func (r *recordingFS) record(op, path string) error {
	r.calls = append(r.calls, op+" "+filepath.ToSlash(path))
	if r.failOn != "" && strings.HasSuffix(filepath.ToSlash(path), r.failOn) {
		return r.failErr
	}
	return nil
}

// captureLog redirects the package logger for the duration of a test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Timestamps: output.BoolPtr(false)})
	output.Logger().SetOutput(&buf)
	t.Cleanup(func() {
		output.Logger().SetOutput(os.Stderr)
	})
	return &buf
}

func TestCreate_FreshTarget(t *testing.T) {
	captureLog(t)
	base := t.TempDir()

	result, err := Create(base, "myapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "myapp"), result.Project.RootPath)

	tree := testutil.Snapshot(t, result.Project.RootPath)
	var paths []string
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	assert.Equal(t, []string{
		"./",
		"app.js",
		"package.json",
		"public/",
		"public/images/",
		"public/scripts/",
		"public/styles/",
		"routes/",
		"routes/index.js",
		"views/",
		"views/error.pug",
		"views/index.pug",
	}, paths)

	assert.Equal(t, []string{"app.js", "package.json", "routes/index.js", "views/index.pug", "views/error.pug"}, result.Files())
	assert.Equal(t, []string{"routes", "views", "public", "public/images", "public/scripts", "public/styles"}, result.Directories())

	m, err := ParseManifest([]byte(tree["package.json"]))
	require.NoError(t, err)
	assert.Equal(t, "myapp", m.Name)
	assert.Equal(t, "module", m.Type)
	assert.Equal(t, map[string]string{"start": "node app.js"}, m.Scripts)
	assert.Equal(t, Dependencies(), m.Dependencies)

	for _, entry := range []string{"public/images/", "public/scripts/", "public/styles/"} {
		entries, err := os.ReadDir(filepath.Join(result.Project.RootPath, entry))
		require.NoError(t, err)
		assert.Empty(t, entries, "%s should be empty", entry)
	}
}

func TestCreate_WritesRenderedContent(t *testing.T) {
	captureLog(t)
	base := t.TempDir()

	result, err := Create(base, "myapp")
	require.NoError(t, err)

	for _, f := range DefaultPlan().Files {
		want, err := Render(f.Template, RenderContext{ProjectName: "myapp"})
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(result.Project.RootPath, filepath.FromSlash(f.Path)))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), f.Path)
	}
}

func TestCreate_ConstantContentAcrossNames(t *testing.T) {
	captureLog(t)
	base := t.TempDir()

	a, err := Create(base, "alpha")
	require.NoError(t, err)
	b, err := Create(base, "beta")
	require.NoError(t, err)

	treeA := testutil.Snapshot(t, a.Project.RootPath)
	treeB := testutil.Snapshot(t, b.Project.RootPath)
	require.Equal(t, len(treeA), len(treeB))

	for p, content := range treeA {
		if p == "package.json" {
			continue
		}
		assert.Equal(t, content, treeB[p], p)
	}
	assert.Equal(t,
		strings.Replace(treeA["package.json"], `"alpha"`, `"beta"`, 1),
		treeB["package.json"])
}

func TestCreate_Collision(t *testing.T) {
	buf := captureLog(t)
	base := t.TempDir()

	first, err := Create(base, "myapp")
	require.NoError(t, err)
	before := testutil.Snapshot(t, first.Project.RootPath)

	// A user edit must survive a second run.
	testutil.WriteFile(t, first.Project.RootPath, "app.js", "// edited\n")
	before["app.js"] = "// edited\n"

	buf.Reset()
	_, err = Create(base, "myapp")
	require.Error(t, err)

	var genErr *GenerateError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, KindDirectoryExists, genErr.Kind)
	assert.Equal(t, "mkdir", genErr.Op)
	assert.Equal(t, first.Project.RootPath, genErr.Path)
	assert.True(t, errors.Is(err, fs.ErrExist))

	assert.Equal(t, before, testutil.Snapshot(t, first.Project.RootPath))
	assert.Contains(t, buf.String(), "error generating project")
	assert.Contains(t, buf.String(), "directory already exists")
	assert.NotContains(t, buf.String(), "generated successfully")
}

func TestCreate_LogsSuccess(t *testing.T) {
	buf := captureLog(t)

	_, err := Create(t.TempDir(), "myapp")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Express project 'myapp' generated successfully")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "expected a single log line, got:\n%s", buf.String())
}

func TestCreate_MissingBaseDir(t *testing.T) {
	captureLog(t)
	base := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Create(base, "myapp")
	require.Error(t, err)
	assert.Equal(t, KindIO, KindOf(err))

	_, statErr := os.Stat(base)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreate_InvalidInputs(t *testing.T) {
	captureLog(t)

	_, err := Create(t.TempDir(), "../escape")
	assert.Equal(t, KindInvalidName, KindOf(err))

	_, err = Create("relative", "myapp")
	assert.Equal(t, KindInvalidPath, KindOf(err))
}

func TestGenerate_StepOrder(t *testing.T) {
	captureLog(t)
	rec := &recordingFS{}
	spec := ProjectSpec{Name: "myapp", RootPath: "/work/myapp"}

	_, err := NewGenerator(WithFilesystem(rec)).Generate(spec)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"mkdir /work/myapp",
		"write /work/myapp/app.js",
		"write /work/myapp/package.json",
		"mkdir /work/myapp/routes",
		"mkdir /work/myapp/views",
		"mkdir /work/myapp/public",
		"mkdir /work/myapp/public/images",
		"mkdir /work/myapp/public/scripts",
		"mkdir /work/myapp/public/styles",
		"write /work/myapp/routes/index.js",
		"write /work/myapp/views/index.pug",
		"write /work/myapp/views/error.pug",
	}, rec.calls)
}

func TestGenerate_AbortsOnFirstFailure(t *testing.T) {
	tests := []struct {
		name     string
		failOn   string
		failErr  error
		wantKind Kind
		wantOp   string
	}{
		{"permission on sub-directory", "/views", fs.ErrPermission, KindPermissionDenied, "mkdir"},
		{"existing file", "/package.json", fs.ErrExist, KindDirectoryExists, "write"},
		{"disk full", "/routes/index.js", fmt.Errorf("no space left on device"), KindIO, "write"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLog(t)
			rec := &recordingFS{failOn: tt.failOn, failErr: tt.failErr}
			spec := ProjectSpec{Name: "myapp", RootPath: "/work/myapp"}

			result, err := NewGenerator(WithFilesystem(rec)).Generate(spec)
			require.Error(t, err)
			assert.Nil(t, result)

			var genErr *GenerateError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, tt.wantKind, genErr.Kind)
			assert.Equal(t, tt.wantOp, genErr.Op)
			assert.Equal(t, "/work/myapp"+tt.failOn, filepath.ToSlash(genErr.Path))

			last := rec.calls[len(rec.calls)-1]
			assert.True(t, strings.HasSuffix(last, tt.failOn), "no step may run after %s, last call was %s", tt.failOn, last)
		})
	}
}

func TestGenerate_PartialTreeLeftInPlace(t *testing.T) {
	captureLog(t)
	base := t.TempDir()
	root := filepath.Join(base, "myapp")

	spec := ProjectSpec{Name: "myapp", RootPath: root}

	rec := &diskFailFS{failOn: "views"}
	_, err := NewGenerator(WithFilesystem(rec)).Generate(spec)
	require.Error(t, err)

	tree := testutil.Snapshot(t, root)
	assert.Contains(t, tree, "app.js")
	assert.Contains(t, tree, "package.json")
	assert.Contains(t, tree, "routes/")
	assert.NotContains(t, tree, "views/")
	assert.NotContains(t, tree, "public/")
}

// diskFailFS writes to disk but refuses to create one directory name.
type diskFailFS struct {
	OSFilesystem
	failOn string
}

func (d *diskFailFS) Mkdir(path string, perm fs.FileMode) error {
	if filepath.Base(path) == d.failOn {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrPermission}
	}
	return d.OSFilesystem.Mkdir(path, perm)
}

func TestGenerate_InvalidPlan(t *testing.T) {
	captureLog(t)
	rec := &recordingFS{}
	plan := Plan{Directories: []string{"public/images", "public"}}

	_, err := NewGenerator(WithFilesystem(rec), WithPlan(plan)).Generate(ProjectSpec{Name: "x", RootPath: "/work/x"})
	require.Error(t, err)
	assert.Equal(t, KindInvalidPlan, KindOf(err))
	assert.Empty(t, rec.calls, "nothing may be created for an invalid plan")
}
