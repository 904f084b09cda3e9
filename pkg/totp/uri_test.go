package totp_test

import (
	"testing"

	"github.com/pquerna/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpqr/pkg/totp"
)

func TestBuildProvisioningURI(t *testing.T) {
	t.Parallel()
	secret := totp.Secret("12345678901234567890")

	tests := []struct {
		name    string
		issuer  string
		account string
		opts    []totp.Option
		want    string
	}{
		{
			name:    "basic",
			issuer:  "Acme",
			account: "alice@example.com",
			want:    "otpauth://totp/Acme:alice@example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Acme",
		},
		{
			name:    "labels are trimmed",
			issuer:  "  Acme ",
			account: "\talice@example.com\n",
			want:    "otpauth://totp/Acme:alice@example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Acme",
		},
		{
			name:    "reserved characters",
			issuer:  "Tom & Jerry",
			account: "alice+ops@example.com",
			want:    "otpauth://totp/Tom%20&%20Jerry:alice+ops@example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Tom%20%26%20Jerry",
		},
		{
			name:    "colon in labels",
			issuer:  "Acme:EU",
			account: "a:b",
			want:    "otpauth://totp/Acme%3AEU:a%3Ab?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Acme%3AEU",
		},
		{
			name:    "non default parameters",
			issuer:  "Acme",
			account: "alice@example.com",
			opts: []totp.Option{
				totp.WithAlgorithm(otp.AlgorithmSHA256),
				totp.WithDigits(8),
				totp.WithPeriod(60),
			},
			want: "otpauth://totp/Acme:alice@example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Acme&algorithm=SHA256&digits=8&period=60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.BuildProvisioningURI(tt.issuer, tt.account, secret, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildProvisioningURI_Errors(t *testing.T) {
	t.Parallel()
	secret := totp.Secret("12345678901234567890")

	tests := []struct {
		name    string
		issuer  string
		account string
		secret  totp.Secret
		opts    []totp.Option
		wantErr error
	}{
		{"empty issuer", "", "alice@example.com", secret, nil, totp.ErrInvalidLabel},
		{"blank issuer", "   ", "alice@example.com", secret, nil, totp.ErrInvalidLabel},
		{"empty account", "Acme", "", secret, nil, totp.ErrInvalidLabel},
		{"blank account", "Acme", "\t", secret, nil, totp.ErrInvalidLabel},
		{"empty secret", "Acme", "alice@example.com", nil, nil, totp.ErrMissingSecret},
		{"bad digits", "Acme", "alice@example.com", secret, []totp.Option{totp.WithDigits(4)}, totp.ErrUnsupportedDigitCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uri, err := totp.BuildProvisioningURI(tt.issuer, tt.account, tt.secret, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, uri)
		})
	}
}

func TestBuildProvisioningURI_ParsesAsKey(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecret(0)
	require.NoError(t, err)

	uri, err := totp.BuildProvisioningURI("Tom & Jerry", "alice+ops@example.com", secret,
		totp.WithDigits(8),
		totp.WithAlgorithm(otp.AlgorithmSHA512),
	)
	require.NoError(t, err)

	key, err := otp.NewKeyFromURL(uri)
	require.NoError(t, err)
	assert.Equal(t, "totp", key.Type())
	assert.Equal(t, "Tom & Jerry", key.Issuer())
	assert.Equal(t, "alice+ops@example.com", key.AccountName())
	assert.Equal(t, secret.String(), key.Secret())
	assert.Equal(t, otp.DigitsEight, key.Digits())
	assert.Equal(t, otp.AlgorithmSHA512, key.Algorithm())
	assert.Equal(t, uint64(totp.DefaultPeriod), key.Period())

	decoded, err := totp.DecodeBase32(key.Secret())
	require.NoError(t, err)
	assert.Equal(t, secret, decoded)
}
