package sitelog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileService returns a service writing JSON records under a temp dir, and
// the path of the log file.
func newFileService(t testing.TB, cfg *Settings) (*Service, string) {
	t.Helper()
	wd := t.TempDir()
	svc := &Service{WorkingDir: wd, Settings: cfg, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, LookupEnv: noEnv}
	require.NoError(t, svc.Initialize())
	t.Cleanup(func() { _ = svc.Close() })

	name := cfg.FileName
	if name == "" {
		name = defaultFileName
	}
	return svc, filepath.Join(wd, cfg.LogFileDir, name)
}

func readRecords(t testing.TB, path string) []logEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []logEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e logEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())
	return entries
}

func TestFileSink_CreatesAndWrites(t *testing.T) {
	svc, path := newFileService(t, fileSettings())

	l := svc.New(Options{Prefix: "Build"})
	l.Info("hello world")
	l.Warn("be careful")

	entries := readRecords(t, path)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "hello world", entries[0]["message"])
	assert.Equal(t, "Build", entries[0]["prefix"])
	assert.Equal(t, "warning", entries[1]["level"])
	assert.Equal(t, "be careful", entries[1]["message"])
	assert.NotContains(t, entries[0], "time")
}

func TestFileSink_LevelFiltering(t *testing.T) {
	svc, path := newFileService(t, fileSettings())

	l := svc.New(Options{MinLevel: WarningLevel})
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg", nil)

	entries := readRecords(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn msg", entries[0]["message"])
	assert.Equal(t, "error msg", entries[1]["message"])
	assert.NotContains(t, entries[0], "prefix")
}

func TestFileSink_ErrorChainFields(t *testing.T) {
	svc, path := newFileService(t, fileSettings())

	inner := smerrors.New("content.Load").Msg("collection not found")
	outer := smerrors.New("page.Render").Err(inner).Msg("render failed")

	svc.New(Options{Prefix: "Render"}).Error("page failed", outer)

	entries := readRecords(t, path)
	require.Len(t, entries, 1)
	e := entries[0]

	assert.Equal(t, "error", e["level"])
	assert.Equal(t, "page failed", e["message"])
	assert.NotEmpty(t, e["error"])
	assert.Equal(t, "collection not found", e["error_root"])
	assert.Equal(t, "render failed -> collection not found", e["error_history"])
	assert.Equal(t, []any{"render failed", "collection not found"}, e["error_chain"])
	assert.Equal(t, []any{"page.Render", "content.Load"}, e["error_ops"])
	assert.Equal(t, "content.Load", e["error_root_op"])
}

func TestFileSink_NonErrorCause(t *testing.T) {
	svc, path := newFileService(t, fileSettings())

	svc.New(Options{}).Error("odd", map[string]int{"status": 500})

	entries := readRecords(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"status": float64(500)}, entries[0]["cause"])
	assert.NotContains(t, entries[0], "error_chain")
}

func TestFileSink_Timestamp(t *testing.T) {
	cfg := fileSettings()
	cfg.WithTimestamp = true
	cfg.FileName = "stamped.log"
	svc, path := newFileService(t, cfg)

	svc.New(Options{}).Info("tick")

	entries := readRecords(t, path)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "time")
}

func TestFileSink_DropsWritesAfterClose(t *testing.T) {
	svc, path := newFileService(t, fileSettings())

	l := svc.New(Options{})
	l.Info("before")
	require.NoError(t, svc.Close())
	l.Info("after")

	entries := readRecords(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "before", entries[0]["message"])
}

func TestFileSink_ConsoleAndFile(t *testing.T) {
	var out bytes.Buffer
	cfg := fileSettings()
	cfg.ConsoleLogging = true
	wd := t.TempDir()

	svc := &Service{WorkingDir: wd, Settings: cfg, Stdout: &out, Stderr: &bytes.Buffer{}, LookupEnv: noEnv}
	require.NoError(t, svc.Initialize())
	t.Cleanup(func() { _ = svc.Close() })

	svc.New(Options{Prefix: "Both"}).Info("twice")

	assert.Equal(t, "[Both] twice\n", out.String())
	entries := readRecords(t, filepath.Join(wd, "logs", defaultFileName))
	require.Len(t, entries, 1)
	assert.Equal(t, "twice", entries[0]["message"])
}

func TestFileSink_NilIsNoop(t *testing.T) {
	var f *fileSink
	assert.NotPanics(t, func() { f.write(InfoLevel, "", "x", nil) })
	assert.NoError(t, f.close())
}
