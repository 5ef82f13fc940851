package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotNumber is returned when the next token does not parse as the requested number.
	ErrNotNumber = errors.New("not a number")
	// ErrNotFinite is returned for a well-formed token that denotes NaN or an infinity,
	// including magnitudes beyond float64 range.
	ErrNotFinite = errors.New("number is not finite")
)

// Scanner reads whitespace-separated numeric tokens from an interactive stream.
// A successful read also consumes the remainder of the line. A failed read
// consumes only the offending token, so later tokens on the line remain.
type Scanner struct {
	r *bufio.Reader
}

// NewScanner wraps r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Int reads the next token as a base-10 32-bit integer.
func (s *Scanner) Int() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, tok)
	}
	return int(n), s.skipLine()
}

// Decimal reads the next token as a float64 and converts it to a decimal, so
// the result is bounded by float64 range. NaN and infinite tokens consume the
// line like any accepted number and return ErrNotFinite.
func (s *Scanner) Decimal() (decimal.Decimal, error) {
	tok, err := s.token()
	if err != nil {
		return decimal.Zero, err
	}
	if hasHexPrefix(tok) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumber, tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumber, tok)
	}
	if err := s.skipLine(); err != nil {
		return decimal.Zero, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotFinite, tok)
	}
	return decimal.NewFromFloat(f), nil
}

func hasHexPrefix(tok string) bool {
	t := strings.TrimLeft(tok, "+-")
	return strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")
}

// token returns the next run of non-space runes. It returns io.EOF only when
// the stream ends before any token starts.
func (s *Scanner) token() (string, error) {
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			if err := s.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
	}

	var b strings.Builder
	for {
		r, _, err := s.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			if err := s.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func (s *Scanner) skipLine() error {
	_, err := s.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
