package textcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "olá, mundo!", "日本語", "emoji 🙂"} {
		got, err := Decode(Encode(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte{0xff, 0xfe, 'a'})
	require.ErrorIs(t, err, ErrInvalidUTF8)
}
