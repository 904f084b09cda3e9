package totp

import (
	"strings"

	"github.com/pquerna/otp"
)

// Config holds TOTP settings loaded from the environment.
type Config struct {
	SecretSize int    `env:"TOTP_SECRET_SIZE" envDefault:"20"`
	Period     uint   `env:"TOTP_PERIOD" envDefault:"30"`
	Digits     int    `env:"TOTP_DIGITS" envDefault:"6"`
	Algorithm  string `env:"TOTP_ALGORITHM" envDefault:"SHA1"`
	Skew       uint   `env:"TOTP_SKEW" envDefault:"1"`
	Issuer     string `env:"TOTP_ISSUER" envDefault:"TOTP Demo"`
	Account    string `env:"TOTP_ACCOUNT" envDefault:"hello@example.com"`
}

// Options converts the config into engine options.
// It fails fast on values Generate would reject anyway.
func (c Config) Options() ([]Option, error) {
	alg, err := ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithPeriod(c.Period),
		WithDigits(c.Digits),
		WithAlgorithm(alg),
		WithSkew(c.Skew),
	}
	if err := NewOptions(opts...).Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// ParseAlgorithm maps a case-insensitive hash name (SHA1, SHA256, SHA512) to otp.Algorithm.
func ParseAlgorithm(name string) (otp.Algorithm, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "")) {
	case "", "SHA1":
		return otp.AlgorithmSHA1, nil
	case "SHA256":
		return otp.AlgorithmSHA256, nil
	case "SHA512":
		return otp.AlgorithmSHA512, nil
	default:
		return DefaultAlgorithm, ErrUnsupportedAlgorithm
	}
}
