package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	taskerrors "github.com/maxkimambo/tasks/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "all_tasks.txt"))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestReadAllMissingFile(t *testing.T) {
	s := newTestStore(t)

	tasks, err := s.ReadAll()
	assert.True(t, taskerrors.IsNotFound(err))
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestReadAllSkipsMalformedLines(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "Buy milk,2%,0\n"+
		"only,two\n"+
		"too,many,fields,1\n"+
		"\n"+
		"Flag,not a number,yes\n"+
		"Ship release,tag v1,1\n"+
		"  Padded,with spaces,1  \n")

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []Task{
		{Name: "Buy milk", Description: "2%", Complete: false},
		{Name: "Ship release", Description: "tag v1", Complete: true},
		{Name: "Padded", Description: "with spaces", Complete: true},
	}, tasks)
}

func TestReadAllNonZeroFlagIsComplete(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "a,b,2\nc,d,0\n")

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Complete)
	assert.False(t, tasks[1].Complete)
}

func TestWriteAllFormat(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "stale,content,1\nmore,stale,0\n")

	err := s.WriteAll([]Task{
		{Name: "Buy milk", Description: "2%"},
		{Name: "Ship release", Description: "tag v1", Complete: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk,2%,0\nShip release,tag v1,1\n", readFile(t, s.Path()))
}

func TestWriteAllEmptyListTruncates(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "a,b,1\n")

	require.NoError(t, s.WriteAll(nil))
	assert.Equal(t, "", readFile(t, s.Path()))
}

func TestWriteAllCreatesOnlyTasksFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteAll([]Task{{Name: "a", Description: "b"}}))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "all_tasks.txt", entries[0].Name())
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	original := []Task{
		{Name: "Buy milk", Description: "2%", Complete: false},
		{Name: "Write report", Description: "Q3 numbers; draft", Complete: true},
		{Name: "", Description: "", Complete: false},
	}

	require.NoError(t, s.WriteAll(original))
	first, err := s.ReadAll()
	require.NoError(t, err)
	require.NoError(t, s.WriteAll(first))
	second, err := s.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, original, second)
}

func TestRoundTripLongLines(t *testing.T) {
	s := newTestStore(t)
	long := strings.Repeat("x", 100*1024)

	require.NoError(t, s.Append(Task{Name: "small", Description: "ok"}))
	require.NoError(t, s.Append(Task{Name: "big", Description: long}))
	require.NoError(t, s.Append(Task{Name: "after", Description: "still read", Complete: true}))

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, long, tasks[1].Description)
	assert.Equal(t, "after", tasks[2].Name)

	require.NoError(t, s.WriteAll(tasks))
	again, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, tasks, again)
}

func TestReadAllLastLineWithoutNewline(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "a,b,0\nc,d,1")

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []Task{
		{Name: "a", Description: "b"},
		{Name: "c", Description: "d", Complete: true},
	}, tasks)
}

func TestAppendCreatesAndExtends(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append(Task{Name: "first", Description: "one"}))
	require.NoError(t, s.Append(Task{Name: "second", Description: "two", Complete: true}))

	assert.Equal(t, "first,one,0\nsecond,two,1\n", readFile(t, s.Path()))
}

func TestDelimiterInFieldRejected(t *testing.T) {
	tests := []struct {
		name string
		task Task
	}{
		{"comma in name", Task{Name: "a,b", Description: "c"}},
		{"comma in description", Task{Name: "a", Description: "b,c"}},
		{"newline in description", Task{Name: "a", Description: "b\nc"}},
		{"carriage return in name", Task{Name: "a\r", Description: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			writeFile(t, s.Path(), "keep,me,0\n")

			err := s.Append(tt.task)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION-002", taskerrors.GetErrorCode(err))

			err = s.WriteAll([]Task{tt.task})
			require.Error(t, err)
			assert.Equal(t, "keep,me,0\n", readFile(t, s.Path()))
		})
	}
}

func TestWriteAllUnwritableDirectory(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing", "all_tasks.txt"))

	err := s.WriteAll([]Task{{Name: "a", Description: "b"}})
	require.Error(t, err)
	assert.Equal(t, "STORAGE-002", taskerrors.GetErrorCode(err))
}

func TestWriteAllKeepsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real_tasks.txt")
	link := filepath.Join(dir, "all_tasks.txt")
	writeFile(t, target, "old,task,0\n")
	require.NoError(t, os.Symlink(target, link))

	s := NewFileStore(link)
	require.NoError(t, s.WriteAll([]Task{{Name: "new", Description: "task", Complete: true}}))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "tasks file should still be a symlink")
	assert.Equal(t, "new,task,1\n", readFile(t, target))
}

func TestWriteAllKeepsPermissions(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "a,b,0\n")
	require.NoError(t, os.Chmod(s.Path(), 0o600))

	require.NoError(t, s.WriteAll([]Task{{Name: "c", Description: "d"}}))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteAllReadOnlyDirectoryWritableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "all_tasks.txt"))
	writeFile(t, s.Path(), "a,b,0\n")
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	require.NoError(t, s.WriteAll([]Task{{Name: "c", Description: "d", Complete: true}}))
	assert.Equal(t, "c,d,1\n", readFile(t, s.Path()))
}

func TestTaskStatus(t *testing.T) {
	assert.Equal(t, "complete", Task{Complete: true}.Status())
	assert.Equal(t, "incomplete", Task{}.Status())
}
