package authenticator

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/totpqr/pkg/logger"
	"github.com/dmitrymomot/totpqr/pkg/qrcode"
	"github.com/dmitrymomot/totpqr/pkg/totp"
)

// Service issues secrets, provisioning URIs, QR codes and current codes.
// It keeps no state besides the process secret.
type Service struct {
	cfg    Config
	opts   []totp.Option
	secret totp.Secret
	now    func() time.Time
	log    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source used for codes.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService validates cfg and returns a Service serving secret as the
// process secret shown on the index page.
func NewService(cfg Config, secret totp.Secret, opts ...Option) (*Service, error) {
	if len(secret) == 0 {
		return nil, totp.ErrMissingSecret
	}
	totpOpts, err := cfg.TOTP.Options()
	if err != nil {
		return nil, err
	}
	if cfg.QRSize <= 0 {
		cfg.QRSize = qrcode.DefaultSize
	}
	if cfg.StreamInterval <= 0 {
		cfg.StreamInterval = time.Second
	}
	if cfg.TOTP.SecretSize <= 0 {
		cfg.TOTP.SecretSize = totp.DefaultSecretSize
	}
	if cfg.MaxSecretSize < cfg.TOTP.SecretSize {
		cfg.MaxSecretSize = cfg.TOTP.SecretSize
	}

	s := &Service{
		cfg:    cfg,
		opts:   totpOpts,
		secret: secret,
		now:    time.Now,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Secret returns the process secret.
func (s *Service) Secret() totp.Secret {
	return s.secret
}

// ProvisioningURI builds the otpauth URI for secret with the configured
// issuer, account and code parameters.
func (s *Service) ProvisioningURI(secret totp.Secret) (string, error) {
	return totp.BuildProvisioningURI(s.cfg.TOTP.Issuer, s.cfg.TOTP.Account, secret, s.opts...)
}

// QRCode renders the provisioning URI of secret as a PNG.
func (s *Service) QRCode(secret totp.Secret) ([]byte, error) {
	uri, err := s.ProvisioningURI(secret)
	if err != nil {
		return nil, err
	}
	return qrcode.Generate(uri, qrcode.WithSize(s.cfg.QRSize))
}

// QRCodeDataURI renders the provisioning URI of secret as a base64 PNG data URI.
func (s *Service) QRCodeDataURI(secret totp.Secret) (string, error) {
	uri, err := s.ProvisioningURI(secret)
	if err != nil {
		return "", err
	}
	return qrcode.GenerateBase64Image(uri, qrcode.WithSize(s.cfg.QRSize))
}

// CurrentCode is the code valid now and the time left in its step.
type CurrentCode struct {
	Code      string `json:"code"`
	Period    uint   `json:"period"`
	ExpiresIn int    `json:"expires_in"`
}

// Current returns the code for secret at the current time.
func (s *Service) Current(secret totp.Secret) (CurrentCode, error) {
	now := s.now()
	code, err := totp.Generate(secret, now, s.opts...)
	if err != nil {
		return CurrentCode{}, err
	}
	remaining := totp.Remaining(now, s.opts...)
	return CurrentCode{
		Code:      code,
		Period:    totp.NewOptions(s.opts...).Period,
		ExpiresIn: int((remaining + time.Second - 1) / time.Second),
	}, nil
}

// NewSecret generates a secret of size bytes; zero means the configured size.
func (s *Service) NewSecret(size int) (totp.Secret, error) {
	if size == 0 {
		size = s.cfg.TOTP.SecretSize
	}
	if size < 0 || size > s.cfg.MaxSecretSize {
		return nil, errors.Join(ErrInvalidSecretSize,
			fmt.Errorf("size must be between 1 and %d bytes", s.cfg.MaxSecretSize))
	}
	return totp.GenerateSecret(size)
}

// Verify checks code against secret at the current time within the
// configured skew.
func (s *Service) Verify(secret totp.Secret, code string) (bool, error) {
	return totp.Verify(secret, code, s.now(), s.opts...)
}
