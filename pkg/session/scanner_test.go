package session

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerIntConsumesRestOfLine(t *testing.T) {
	s := NewScanner(strings.NewReader("  4 trailing words\n7\n"))

	n, err := s.Int()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = s.Int()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = s.Int()
	require.ErrorIs(t, err, io.EOF)
}

func TestScannerDiscardsOnlyTheBadToken(t *testing.T) {
	s := NewScanner(strings.NewReader("abc 12\n"))

	_, err := s.Int()
	require.ErrorIs(t, err, ErrNotNumber)

	n, err := s.Int()
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestScannerRejectsNonIntegers(t *testing.T) {
	for _, in := range []string{"1.5", "3abc", "99999999999999999999999", "--1", "3000000000", "-2147483649"} {
		_, err := NewScanner(strings.NewReader(in)).Int()
		assert.ErrorIs(t, err, ErrNotNumber, in)
	}
}

func TestScannerIntAcceptsInt32Bounds(t *testing.T) {
	s := NewScanner(strings.NewReader("2147483647\n-2147483648\n"))

	n, err := s.Int()
	require.NoError(t, err)
	assert.Equal(t, 2147483647, n)

	n, err = s.Int()
	require.NoError(t, err)
	assert.Equal(t, -2147483648, n)
}

func TestScannerIntWithoutNewline(t *testing.T) {
	n, err := NewScanner(strings.NewReader("-3")).Int()
	require.NoError(t, err)
	assert.Equal(t, -3, n)
}

func TestScannerDecimal(t *testing.T) {
	s := NewScanner(strings.NewReader("12.5\nten\n1e1\n"))

	d, err := s.Decimal()
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = s.Decimal()
	require.ErrorIs(t, err, ErrNotNumber)

	d, err = s.Decimal()
	require.NoError(t, err)
	assert.Equal(t, "10", d.String())
}

func TestScannerEmptyInput(t *testing.T) {
	_, err := NewScanner(strings.NewReader(" \n\t")).Int()
	require.ErrorIs(t, err, io.EOF)
}

func TestScannerDecimalNonFinite(t *testing.T) {
	for _, in := range []string{"1e999999999", "-1e999999999", "NaN", "Infinity", "-Infinity"} {
		s := NewScanner(strings.NewReader(in + " rest\n7\n"))

		start := time.Now()
		_, err := s.Decimal()
		assert.ErrorIs(t, err, ErrNotFinite, in)
		assert.Less(t, time.Since(start), time.Second, in)

		n, err := s.Int()
		require.NoError(t, err, in)
		assert.Equal(t, 7, n, "the rest of the line is consumed after %s", in)
	}
}

func TestScannerDecimalUnderflowIsZero(t *testing.T) {
	d, err := NewScanner(strings.NewReader("1e-999999999\n")).Decimal()
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestScannerDecimalRejectsHex(t *testing.T) {
	for _, in := range []string{"0x10", "-0X1p4", "0x_1"} {
		_, err := NewScanner(strings.NewReader(in)).Decimal()
		assert.ErrorIs(t, err, ErrNotNumber, in)
	}
}
