package log

import (
	"bytes"
	"strings"
	"testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	defer SetLevel(GetLevel())

	buf := &bytes.Buffer{}
	logger := New(buf).With("module", "test")

	SetLevel(LEVEL_ERROR)
	logger.Debug("hidden", "num", 123)
	assert.Equal(t, 0, buf.Len())

	SetLevel(LEVEL_TRACE)
	logger.Info("claim appended", "height", 1)
	out := buf.String()
	assert.True(t, strings.Contains(out, "module=test"), out)
	assert.True(t, strings.Contains(out, "height=1"), out)
	assert.True(t, strings.Contains(out, "_m=\"claim appended\""), out)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LEVEL_DEBUG,
		"INFO": LEVEL_INFO,
		" warn ": LEVEL_WARN,
		"": LEVEL_ERROR,
		"trace": LEVEL_TRACE,
	}
	for s, want := range cases {
		got, err := ParseLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger().With("k", "v")
	l.Error("nothing happens")
}
