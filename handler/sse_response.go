package handler

import (
	"errors"
	"net/http"
)

// SSEHandler runs for the lifetime of a server-sent event stream. The stream
// closes when it returns or the client disconnects.
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		ticker := time.NewTicker(time.Second)
//		defer ticker.Stop()
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case t := <-ticker.C:
//				if err := stream.SendComponent(views.Clock(t)); err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return s.RenderContext(NewContext(w, r))
}

func (s sseResponse) RenderContext(ctx Context) error {
	if !IsDataStar(ctx.Request()) {
		return errors.Join(ErrBadRequest, ErrNotDataStar)
	}
	return s.handler(&streamContext{Context: ctx})
}

// SSE streams DataStar events produced by h. Regular requests are rejected
// with ErrNotDataStar.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}
