package try

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordSink struct {
	levels   []Level
	messages []string
}

func (s *recordSink) Log(level Level, msg string) {
	s.levels = append(s.levels, level)
	s.messages = append(s.messages, msg)
}

type wrapped struct {
	msg   string
	cause error
}

func (w wrapped) Error() string { return w.msg }
func (w wrapped) Unwrap() error { return w.cause }

func TestLog_SuccessNeverTouchesSink(t *testing.T) {
	t.Parallel()
	sink := &recordSink{}

	out := Success(10).
		LogError(sink, "should not appear").
		LogWarn(sink, "neither").
		LogTrace(sink, "nor this")

	assert.True(t, out.IsSuccess())
	assert.Equal(t, 10, out.Value())
	assert.Empty(t, sink.messages)
}

func TestLog_FailureIsLoggedOncePerCall(t *testing.T) {
	t.Parallel()
	sink := &recordSink{}
	err := wrapped{msg: "query failed", cause: errors.New("connection reset")}

	out := Fail[int](err).LogError(sink, "lookup")

	assert.True(t, out.IsFailure())
	assert.Equal(t, error(err), out.Err())
	assert.Equal(t, []Level{LevelError}, sink.levels)
	assert.Equal(t, []string{"lookup: query failed: connection reset"}, sink.messages)
}

func TestLog_Levels(t *testing.T) {
	t.Parallel()
	sink := &recordSink{}
	r := Fail[int](errors.New("bad"))

	r.LogError(sink, "e")
	r.LogWarn(sink, "w")
	r.LogInfo(sink, "i")
	r.LogDebug(sink, "d")
	r.LogTrace(sink, "t")

	assert.Equal(t, []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}, sink.levels)
}

func TestLog_EmptyMessageLogsBareChain(t *testing.T) {
	t.Parallel()
	sink := &recordSink{}

	Fail[int](errors.New("bad")).LogWarn(sink, "")

	assert.Equal(t, []string{"bad"}, sink.messages)
}

func TestLogAndReplace(t *testing.T) {
	t.Parallel()
	sink := &recordSink{}
	public := errors.New("internal error")

	out := Fail[int](errors.New("password table corrupt")).
		LogErrorAndReplace(sink, "auth", public)

	assert.True(t, out.IsFailure())
	assert.Same(t, public, out.Err())
	// the precise error still reached the log
	assert.Equal(t, []string{"auth: password table corrupt"}, sink.messages)
}

func TestLogAndReplaceWith_SeesOriginalError(t *testing.T) {
	t.Parallel()
	sink := &recordSink{}
	original := errors.New("row not found")

	out := Fail[string](original).
		LogAndReplaceWith(sink, LevelWarn, "fetch", func(err error) error {
			return fmt.Errorf("status 404 (%s)", err.Error())
		})

	assert.True(t, out.IsFailure())
	assert.Equal(t, "status 404 (row not found)", out.Err().Error())
	assert.Equal(t, []Level{LevelWarn}, sink.levels)
}

func TestLogAndReplace_SuccessPassesThrough(t *testing.T) {
	t.Parallel()
	sink := &recordSink{}

	out := Success("v").LogErrorAndReplace(sink, "m", errors.New("replacement"))

	assert.True(t, out.IsSuccess())
	assert.Equal(t, "v", out.Value())
	assert.Empty(t, sink.messages)
}

func TestWriterSink(t *testing.T) {
	t.Parallel()
	var b strings.Builder

	Fail[int](errors.New("bad")).LogError(WriterSink(&b), "op")

	assert.Equal(t, "error: op: bad\n", b.String())
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "trace", LevelTrace.String())
	assert.Equal(t, "unknown", Level(42).String())
}
