package generator_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BishwashGurung/GCM/fledge/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alwaysExists reports every path as present
type alwaysExists struct{}

func (alwaysExists) FileExists(string) bool { return true }

func TestExecute_DryRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Dir:     tmpDir,
			Name:    "test.txt",
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: true,
		Writer: &buf,
	})
	require.NoError(t, err)

	// File should NOT be created
	_, err = os.Stat(filepath.Join(tmpDir, "test.txt"))
	assert.True(t, os.IsNotExist(err), "dry run created file")

	assert.Equal(t, "Would create: test.txt\n", buf.String())
}

func TestExecute_RealRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Dir:     tmpDir,
			Name:    "test.txt",
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tmpDir, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
	assert.Equal(t, "Created: test.txt\n", buf.String())
}

func TestExecute_NeverOverwrites(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	ops := []generator.Operation{
		&generator.WriteFileOp{Dir: tmpDir, Name: "test.txt", Content: []byte("new"), Mode: 0644},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	require.Error(t, err)

	var conflict *generator.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "test.txt", conflict.Name)
	assert.Contains(t, err.Error(), "test.txt already exists")

	content, _ := os.ReadFile(path)
	assert.Equal(t, "old", string(content), "existing file was modified")
	assert.Empty(t, buf.String())
}

func TestExecute_MultipleOperations(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{Dir: tmpDir, Name: "file1.txt", Content: []byte("content1"), Mode: 0644},
		&generator.WriteFileOp{Dir: tmpDir, Name: "file2.txt", Content: []byte("content2"), Mode: 0644},
		&generator.WriteFileOp{Dir: tmpDir, Name: "file3.txt", Content: []byte("content3"), Mode: 0644},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	require.NoError(t, err)

	for _, name := range []string{"file1.txt", "file2.txt", "file3.txt"} {
		assert.FileExists(t, filepath.Join(tmpDir, name))
	}

	assert.Equal(t, "Created: file1.txt\nCreated: file2.txt\nCreated: file3.txt\n", buf.String())
}

func TestExecute_StopsAtFirstConflictWithoutRollback(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "second.txt"), []byte("keep"), 0644))

	ops := []generator.Operation{
		&generator.WriteFileOp{Dir: tmpDir, Name: "first.txt", Content: []byte("1"), Mode: 0644},
		&generator.WriteFileOp{Dir: tmpDir, Name: "second.txt", Content: []byte("2"), Mode: 0644},
		&generator.WriteFileOp{Dir: tmpDir, Name: "third.txt", Content: []byte("3"), Mode: 0644},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	require.Error(t, err)

	// Earlier file stays, later file is never written
	assert.FileExists(t, filepath.Join(tmpDir, "first.txt"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "third.txt"))

	content, _ := os.ReadFile(filepath.Join(tmpDir, "second.txt"))
	assert.Equal(t, "keep", string(content))
	assert.Equal(t, "Created: first.txt\n", buf.String())
}

func TestExecute_DryRunReportsConflicts(t *testing.T) {
	ops := []generator.Operation{
		&generator.WriteFileOp{Dir: t.TempDir(), Name: "a.txt", Content: []byte("a"), Guard: alwaysExists{}},
	}

	var buf bytes.Buffer
	err := generator.Execute(context.Background(), ops, generator.ExecuteOptions{DryRun: true, Writer: &buf})

	var conflict *generator.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Empty(t, buf.String())
}

func TestExecute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tmpDir := t.TempDir()
	ops := []generator.Operation{
		&generator.WriteFileOp{Dir: tmpDir, Name: "a.txt", Content: []byte("a")},
	}

	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &bytes.Buffer{}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(tmpDir, "a.txt"))
}

func TestWriteFileOp_NilContent(t *testing.T) {
	op := &generator.WriteFileOp{Dir: t.TempDir(), Name: "nil.txt"}

	err := op.Validate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content is nil")
}

func TestWriteFileOp_EmptyContentAllowed(t *testing.T) {
	tmpDir := t.TempDir()
	op := &generator.WriteFileOp{Dir: tmpDir, Name: "empty.txt", Content: []byte{}}

	require.NoError(t, op.Execute(context.Background()))
	info, err := os.Stat(filepath.Join(tmpDir, "empty.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteFileOp_GuardIsConsulted(t *testing.T) {
	tmpDir := t.TempDir()
	op := &generator.WriteFileOp{Dir: tmpDir, Name: "x.txt", Content: []byte("x"), Guard: alwaysExists{}}

	err := op.Execute(context.Background())

	var conflict *generator.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.NoFileExists(t, filepath.Join(tmpDir, "x.txt"))
}

func TestWriteFileOp_DirectoryIsNotAFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "build.sh"), 0755))

	op := &generator.WriteFileOp{Dir: tmpDir, Name: "build.sh", Content: []byte("#!/bin/sh\n"), Mode: 0755}

	// The default guard ignores directories, so the create itself fails
	require.NoError(t, op.Validate(context.Background()))
	err := op.Execute(context.Background())
	require.Error(t, err)

	var conflict *generator.ConflictError
	var createErr *generator.CreateError
	assert.True(t, errors.As(err, &conflict) || errors.As(err, &createErr))
}

func TestWriteFileOp_CreateFailure(t *testing.T) {
	op := &generator.WriteFileOp{
		Dir:     filepath.Join(t.TempDir(), "missing"),
		Name:    "CMakeLists.txt",
		Content: []byte("x"),
	}

	err := op.Execute(context.Background())

	var createErr *generator.CreateError
	require.True(t, errors.As(err, &createErr))
	assert.Equal(t, "CMakeLists.txt", createErr.Name)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to create CMakeLists.txt"))
}

func TestWriteFileOp_Description(t *testing.T) {
	op := &generator.WriteFileOp{Dir: "/tmp/project", Name: "CMakePresets.json"}
	assert.Equal(t, "CMakePresets.json", op.Description())
	assert.Equal(t, filepath.Join("/tmp/project", "CMakePresets.json"), op.Path())
}
