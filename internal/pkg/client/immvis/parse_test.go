package immvis

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBools(t *testing.T) {
	got, err := parseBools("m", []string{"true", "false", "True", "FALSE", " tRuE "})
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true, false, true}, got)

	for _, tok := range []string{"1", "0", "t", "F", "yes", ""} {
		_, err = parseBools("m", []string{"true", tok})
		require.ErrorIs(t, err, ErrMalformedResponse, "token %q", tok)
		require.Contains(t, err.Error(), `data[1]=`+strconv.Quote(tok))
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("m", []string{"0", "12", "-1", " 3", "2147483647", "-2147483648"})
	require.NoError(t, err)
	require.Equal(t, []int{0, 12, -1, 3, 2147483647, -2147483648}, got)

	for _, tok := range []string{"2147483648", "-2147483649", "9999999999"} {
		_, err = parseInts("m", []string{"1", tok})
		require.ErrorIs(t, err, ErrMalformedResponse, "token %q", tok)
		require.ErrorIs(t, err, strconv.ErrRange)
	}

	_, err = parseInts("m", []string{"abc"})
	require.ErrorIs(t, err, ErrMalformedResponse)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}
