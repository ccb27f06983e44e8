package util

import (
	"strings"
	"testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase32Sum(t *testing.T) {
	prefix := "StA"
	a := []byte("abcdefghijklmnopqrst")
	s := BytesToBase32Sum(a, prefix, 4, true)
	require.True(t, strings.HasPrefix(s, prefix))

	for k := 0; k < 2; k++ {
		for i := 0; i <= 4; i++ {
			b, err := Base32SumToBytes(s[:len(s)-i], prefix, 4-i, (k == 0))
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}
}

func TestBase32SumBadChecksum(t *testing.T) {
	prefix := "StA"
	s := BytesToBase32Sum([]byte("star registry"), prefix, 4, true)

	last := s[len(s)-1]
	repl := byte('0')
	if last == '0' {
		repl = '1'
	}
	bad := s[:len(s)-1] + string(repl)

	_, err := Base32SumToBytes(bad, prefix, 4, true)
	assert.Error(t, err)

	_, err = Base32SumToBytes("XyZ"+s[len(prefix):], prefix, 4, true)
	assert.Error(t, err)
}
