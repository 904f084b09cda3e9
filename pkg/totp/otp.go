package totp

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/pquerna/otp"
)

const (
	DefaultDigits = 6  // Standard 6-digit TOTP codes
	DefaultPeriod = 30 // 30-second validity window (RFC 6238 standard)
	MinDigits     = 6
	MaxDigits     = 8

	// MaxSkew bounds the steps Verify checks on each side of the current one.
	MaxSkew = 10

	// DefaultAlgorithm is HMAC-SHA1, the only algorithm every authenticator app supports.
	DefaultAlgorithm = otp.AlgorithmSHA1
)

// pow10 covers every supported digit count.
var pow10 = [...]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}

// Options controls code generation and verification.
type Options struct {
	Period    uint          // Step duration in seconds
	Digits    int           // Code width
	Algorithm otp.Algorithm // HMAC hash function
	Skew      uint          // Adjacent steps accepted by Verify on each side
}

// Option configures Options.
type Option func(*Options)

// WithPeriod sets the step duration in seconds.
func WithPeriod(seconds uint) Option {
	return func(o *Options) { o.Period = seconds }
}

// WithDigits sets the code width.
func WithDigits(n int) Option {
	return func(o *Options) { o.Digits = n }
}

// WithAlgorithm sets the HMAC hash function.
func WithAlgorithm(alg otp.Algorithm) Option {
	return func(o *Options) { o.Algorithm = alg }
}

// WithSkew sets how many steps before and after the current one Verify accepts.
func WithSkew(steps uint) Option {
	return func(o *Options) { o.Skew = steps }
}

// NewOptions applies opts on top of the RFC 6238 defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		Period:    DefaultPeriod,
		Digits:    DefaultDigits,
		Algorithm: DefaultAlgorithm,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate rejects configurations that cannot produce interoperable codes.
func (o Options) Validate() error {
	if o.Period == 0 {
		return ErrInvalidPeriod
	}
	if o.Digits < MinDigits || o.Digits > MaxDigits {
		return ErrUnsupportedDigitCount
	}
	if o.Skew > MaxSkew {
		return ErrInvalidSkew
	}
	switch o.Algorithm {
	case otp.AlgorithmSHA1, otp.AlgorithmSHA256, otp.AlgorithmSHA512:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// Counter returns the time step containing t: floor(unix seconds / period).
// The caller guarantees t is not before the Unix epoch and period is non-zero.
func Counter(t time.Time, period uint) uint64 {
	return uint64(t.Unix()) / uint64(period)
}

// GenerateHOTP implements the RFC 4226 HMAC-based One-Time Password algorithm.
// digits must be within [MinDigits, MaxDigits].
func GenerateHOTP(key []byte, counter uint64, digits int, alg otp.Algorithm) int {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(alg.Hash, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: low nibble of the last byte selects a 31-bit word.
	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return int(code % pow10[digits])
}

// Generate returns the code for the time step containing t.
func Generate(secret Secret, t time.Time, opts ...Option) (string, error) {
	o := NewOptions(opts...)
	if err := check(secret, t, o); err != nil {
		return "", err
	}
	return format(GenerateHOTP(secret, Counter(t, o.Period), o.Digits, o.Algorithm), o.Digits), nil
}

// Verify reports whether code matches the step containing t or, with a skew,
// any of the skew steps on either side of it.
func Verify(secret Secret, code string, t time.Time, opts ...Option) (bool, error) {
	o := NewOptions(opts...)
	if err := check(secret, t, o); err != nil {
		return false, err
	}
	if !isNumeric(code, o.Digits) {
		return false, ErrInvalidCode
	}

	counter := Counter(t, o.Period)
	skew := uint64(o.Skew)
	first := uint64(0)
	if counter > skew {
		first = counter - skew
	}
	last := counter + skew
	if last < counter {
		last = math.MaxUint64
	}

	// Every candidate step is compared so timing does not reveal which one matched.
	matched := 0
	for c := first; ; c++ {
		want := format(GenerateHOTP(secret, c, o.Digits, o.Algorithm), o.Digits)
		matched |= subtle.ConstantTimeCompare([]byte(want), []byte(code))
		if c == last {
			break
		}
	}
	return matched == 1, nil
}

// Remaining returns how long the code for t stays valid.
func Remaining(t time.Time, opts ...Option) time.Duration {
	o := NewOptions(opts...)
	if o.Period == 0 {
		return 0
	}
	period := time.Duration(o.Period) * time.Second
	elapsed := time.Duration(t.UnixNano()) % period
	if elapsed < 0 {
		return 0
	}
	return period - elapsed
}

func check(secret Secret, t time.Time, o Options) error {
	if len(secret) == 0 {
		return ErrMissingSecret
	}
	if t.Unix() < 0 {
		return ErrInvalidTimestamp
	}
	return o.Validate()
}

func format(code, digits int) string {
	return fmt.Sprintf("%0*d", digits, code)
}

func isNumeric(code string, digits int) bool {
	if len(code) != digits {
		return false
	}
	for i := range len(code) {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
