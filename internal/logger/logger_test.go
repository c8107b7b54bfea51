package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) record(level string, args ...any) {
	r.lines = append(r.lines, level+": "+fmt.Sprint(args...))
}

func (r *recordingLogger) Debug(args ...any) { r.record("debug", args...) }
func (r *recordingLogger) Info(args ...any)  { r.record("info", args...) }
func (r *recordingLogger) Warn(args ...any)  { r.record("warn", args...) }
func (r *recordingLogger) Error(args ...any) { r.record("error", args...) }
func (r *recordingLogger) Debugf(format string, args ...any) {
	r.record("debug", fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Infof(format string, args ...any) {
	r.record("info", fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Warnf(format string, args ...any) {
	r.record("warn", fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Errorf(format string, args ...any) {
	r.record("error", fmt.Sprintf(format, args...))
}

func TestWithFields_FallsBackForCustomLogger(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	rec := &recordingLogger{}
	Log = rec

	ErrorWithFields("post create failed", Fields{"op": "create"})
	WarnWithFields("image destroy failed", Fields{"post_id": 5})

	assert.Len(t, rec.lines, 2)
	assert.Contains(t, rec.lines[0], "error: post create failed")
	assert.Contains(t, rec.lines[1], "warn: image destroy failed")
}

func TestWithServiceName(t *testing.T) {
	t.Setenv("SERVICE_NAME", "recetagrm-api")

	fields := withServiceName(nil)
	assert.Equal(t, "recetagrm-api", fields["service_name"])

	fields = withServiceName(Fields{"service_name": "custom"})
	assert.Equal(t, "custom", fields["service_name"])
}

func TestInit_DefaultsToInfo(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	Init("")
	assert.NotNil(t, Log)

	Init("DEBUG")
	assert.NotNil(t, Log)
}

func TestInitFromEnv_ReplacesGlobalLogger(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	rec := &recordingLogger{}
	Log = rec

	t.Setenv("LOG_LEVEL", "warn")
	InitFromEnv("LOG_LEVEL")

	assert.NotSame(t, rec, Log)
	assert.NotNil(t, Log)
}
