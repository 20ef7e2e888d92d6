package codec

import (
	"fmt"
	"math"
)

const (
	lowBase  = 20
	highBase = 5

	// one low digit and at most 27 high digits for math.MaxInt
	maxDigits = 28
)

// EncodeNumber writes n >= 1 in the compressed numeral scheme.
func EncodeNumber(n int) string {
	if n < 1 {
		panic(fmt.Sprintf("codec: cannot encode %d", n))
	}
	var buf [maxDigits]byte
	i := len(buf)
	n--
	i--
	buf[i] = 'A' + byte(n%lowBase)
	n /= lowBase
	for n > 0 {
		n--
		i--
		buf[i] = 'U' + byte(n%highBase)
		n /= highBase
	}
	return string(buf[i:])
}

// DecodeNumber reads a single complete number.
func DecodeNumber(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isHigh(c):
			if n > (math.MaxInt-highValue(c))/highBase {
				return 0, fmt.Errorf("%w: %q overflows", ErrBadRef, s)
			}
			n = n*highBase + highValue(c)
		case isLow(c):
			if i != len(s)-1 {
				return 0, fmt.Errorf("%w: %q continues after low digit", ErrBadChar, s)
			}
			if n > math.MaxInt-lowValue(c)-1 {
				return 0, fmt.Errorf("%w: %q overflows", ErrBadRef, s)
			}
			return n + lowValue(c) + 1, nil
		default:
			return 0, fmt.Errorf("%w: %q in %q", ErrBadChar, c, s)
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrIncompleteNumber, s)
}

func isLow(c byte) bool  { return c >= 'A' && c <= 'T' }
func isHigh(c byte) bool { return c >= 'U' && c <= 'Y' }

func lowValue(c byte) int { return int(c - 'A') }

// highValue is the digit's weight pre-multiplied by the low base.
func highValue(c byte) int { return (int(c-'U') + 1) * lowBase }
