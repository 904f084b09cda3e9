package handler

import (
	"net/http"
	"strconv"
)

type blobResponse struct {
	contentType string
	data        []byte
	headers     http.Header
}

func (b blobResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	for k, vs := range b.headers {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.data)
	return err
}

// BlobOption configures a Blob response.
type BlobOption func(*blobResponse)

// WithHeader adds a response header.
func WithHeader(key, value string) BlobOption {
	return func(b *blobResponse) {
		if b.headers == nil {
			b.headers = make(http.Header)
		}
		b.headers.Add(key, value)
	}
}

// Blob writes raw bytes with the given content type, e.g. a PNG image.
func Blob(contentType string, data []byte, opts ...BlobOption) Response {
	b := &blobResponse{contentType: contentType, data: data}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
