package authenticator

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/totpqr/handler"
	"github.com/dmitrymomot/totpqr/pkg/totp"
)

type secretRequest struct {
	Secret string `path:"secret"`
}

type newSecretRequest struct {
	Size int `query:"size"`
}

type verifyRequest struct {
	Secret string `json:"secret"`
	Code   string `json:"code"`
}

type uriResponse struct {
	URI string `json:"uri"`
}

type secretResponse struct {
	Secret string `json:"secret"`
	URI    string `json:"uri"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

func decodeSecret(raw string) (totp.Secret, error) {
	secret, err := totp.DecodeBase32(raw)
	if err != nil {
		return nil, httpError(err)
	}
	return secret, nil
}

func (s *Service) index(ctx handler.Context, _ struct{}) handler.Response {
	uri, err := s.ProvisioningURI(s.secret)
	if err != nil {
		return handler.Error(httpError(err))
	}
	qr, err := s.QRCodeDataURI(s.secret)
	if err != nil {
		return handler.Error(err)
	}
	code, err := s.Current(s.secret)
	if err != nil {
		return handler.Error(httpError(err))
	}

	return handler.Templ(Page(PageParams{
		Issuer:    s.cfg.TOTP.Issuer,
		Account:   s.cfg.TOTP.Account,
		Secret:    s.secret.String(),
		URI:       uri,
		QRDataURI: qr,
		Code:      code,
	}))
}

func (s *Service) qrImage(ctx handler.Context, req secretRequest) handler.Response {
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return handler.Error(err)
	}
	png, err := s.QRCode(secret)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Blob("image/png", png, handler.WithHeader("Cache-Control", "no-store"))
}

func (s *Service) uri(ctx handler.Context, req secretRequest) handler.Response {
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return handler.Error(err)
	}
	uri, err := s.ProvisioningURI(secret)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(uriResponse{URI: uri})
}

func (s *Service) current(ctx handler.Context, req secretRequest) handler.Response {
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return handler.Error(err)
	}
	code, err := s.Current(secret)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(code)
}

func (s *Service) stream(ctx handler.Context, req secretRequest) handler.Response {
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return handler.Error(err)
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		ticker := time.NewTicker(s.cfg.StreamInterval)
		defer ticker.Stop()

		for {
			code, err := s.Current(secret)
			if err != nil {
				return httpError(err)
			}
			if err := stream.SendComponent(CodeBox(code)); err != nil {
				return err
			}

			select {
			case <-stream.Done():
				return nil
			case <-ticker.C:
			}
		}
	})
}

func (s *Service) newSecret(ctx handler.Context, req newSecretRequest) handler.Response {
	secret, err := s.NewSecret(req.Size)
	if err != nil {
		return handler.Error(err)
	}
	uri, err := s.ProvisioningURI(secret)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(secretResponse{Secret: secret.String(), URI: uri}, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) verify(ctx handler.Context, req verifyRequest) handler.Response {
	secret, err := decodeSecret(req.Secret)
	if err != nil {
		return handler.Error(err)
	}
	valid, err := s.Verify(secret, req.Code)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(verifyResponse{Valid: valid})
}
