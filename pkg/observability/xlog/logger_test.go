package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/omeyang/xcheck/pkg/observability/xrotate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildText(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)

	ctx := context.Background()
	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "shown", slog.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=v")
}

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().
		SetOutput(&buf).
		SetFormat("JSON").
		SetLevelString("debug").
		SetAttrs(slog.String("app", "xcheck")).
		Build()
	require.NoError(t, err)

	logger.Debug(context.Background(), "parsed", slog.Int64("value", 3232235777))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "parsed", rec["msg"])
	assert.Equal(t, "xcheck", rec["app"])
	assert.InDelta(t, 3232235777, rec["value"], 0)
}

func TestBuildErrors(t *testing.T) {
	_, _, err := New().SetFormat("xml").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	// 第一个错误优先
	_, _, err = New().SetLevelString("loud").SetFormat("xml").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
}

func TestBuildDefaults(t *testing.T) {
	logger, _, err := New().SetFormat("").SetLevelString("").SetOutput(nil).Build()
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, logger.GetLevel())
}

func TestDynamicLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetLevel(LevelError).Build()
	require.NoError(t, err)

	ctx := context.Background()
	child := logger.With(slog.String("component", "xnet"))

	child.Warn(ctx, "first")
	assert.Empty(t, buf.String())
	assert.False(t, logger.Enabled(ctx, LevelWarn))

	logger.SetLevel(LevelWarn)
	assert.Equal(t, LevelWarn, logger.GetLevel())
	child.Warn(ctx, "second")
	assert.Contains(t, buf.String(), "component=xnet")
	assert.Contains(t, buf.String(), "msg=second")
	assert.NotContains(t, buf.String(), "first")
}

func TestAddSource(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetAddSource(true).Build()
	require.NoError(t, err)

	logger.Error(context.Background(), "boom")
	assert.True(t, strings.Contains(buf.String(), "logger_test.go"), buf.String())
}

func TestNilContext(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)

	//nolint:staticcheck // nil context 不应 panic
	logger.Info(nil, "ok")
	assert.Contains(t, buf.String(), "msg=ok")
}

func TestSetRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xcheck.log")
	logger, cleanup, err := New().SetRotation(path, xrotate.WithMaxSize(1)).SetFormat("json").Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "to file", slog.String("k", "v"))
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)

	_, _, err = New().SetRotation("").Build()
	assert.ErrorIs(t, err, xrotate.ErrEmptyFilename)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error(context.Background(), "nothing")
	assert.Same(t, l, l.With())
}
