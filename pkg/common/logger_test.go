package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/vitals-monitor-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestLoggerWithCategory(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetLoggerWith(LoggerNameMonitor, zap.String(LoggerFieldCategory, LoggerCategoryTick)).
		Debug("dropped below level")
	GetLoggerWith(LoggerNameMonitor, zap.String(LoggerFieldCategory, LoggerCategoryTick)).
		Info("tick done", zap.Int("patients", 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "monitor", entry["logger"])
	assert.Equal(t, "tick", entry["category"])
	assert.Equal(t, 3.0, entry["patients"])
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 45.0, Clamp(12.0, 45, 210))
	assert.Equal(t, 210.0, Clamp(400.0, 45, 210))
	assert.Equal(t, 99.5, Clamp(99.5, 70, 100))
}

func TestMapperReducer(t *testing.T) {
	doubled := Mapper([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	sum := Reducer(doubled, func(acc int, i int) int { return acc + i }, 0)
	assert.Equal(t, 12, sum)
}
