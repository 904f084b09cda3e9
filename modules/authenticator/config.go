package authenticator

import (
	"time"

	"github.com/dmitrymomot/totpqr/pkg/totp"
)

// Config holds the authenticator module settings.
type Config struct {
	TOTP           totp.Config
	QRSize         int           `env:"QR_SIZE" envDefault:"256"`
	StreamInterval time.Duration `env:"CODE_STREAM_INTERVAL" envDefault:"1s"`
	MaxSecretSize  int           `env:"TOTP_MAX_SECRET_SIZE" envDefault:"64"`
}
