package qrcode

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrorFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

// RecoveryLevel is the error correction level of the QR matrix.
type RecoveryLevel = skipqrcode.RecoveryLevel

const (
	Low     = skipqrcode.Low     // 7% error recovery
	Medium  = skipqrcode.Medium  // 15% error recovery
	High    = skipqrcode.High    // 25% error recovery
	Highest = skipqrcode.Highest // 30% error recovery
)

// DefaultSize is the image size in pixels used when no size is specified.
// Matches the 200-256px range authenticator apps scan reliably from a screen.
const DefaultSize = 256

type options struct {
	size  int
	level RecoveryLevel
}

// Option configures QR code rendering.
type Option func(*options)

// WithSize sets the image width and height in pixels. Non-positive values keep the default.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithRecoveryLevel sets the error correction level.
func WithRecoveryLevel(level RecoveryLevel) Option {
	return func(o *options) { o.level = level }
}

func newQR(content string, opts []Option) (*skipqrcode.QRCode, int, error) {
	if strings.TrimSpace(content) == "" {
		return nil, 0, ErrEmptyContent
	}
	o := options{size: DefaultSize, level: Medium}
	for _, opt := range opts {
		opt(&o)
	}
	q, err := skipqrcode.New(content, o.level)
	if err != nil {
		return nil, 0, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return q, o.size, nil
}

// Generate encodes content into a QR code and returns it as PNG bytes.
func Generate(content string, opts ...Option) ([]byte, error) {
	q, size, err := newQR(content, opts)
	if err != nil {
		return nil, err
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}

// Write encodes content into a QR code and writes the PNG image to w.
func Write(w io.Writer, content string, opts ...Option) error {
	q, size, err := newQR(content, opts)
	if err != nil {
		return err
	}
	if err := q.Write(size, w); err != nil {
		return errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return nil
}

// GenerateBase64Image returns the QR code as a data URI ready for an <img> tag:
//
//	<img src="{{.QrCode}}">
func GenerateBase64Image(content string, opts ...Option) (string, error) {
	png, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
