// Package streamdelivery streams ledger notifications to http clients.
package streamdelivery

import (
	"io"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-denis/vault-ledger/internal/ledger"
)

// subscriberBuffer bounds how many notifications a slow client may lag
// behind before the ledger starts dropping its events.
const subscriberBuffer = 64

// Source produces ledger notification subscriptions.
type Source interface {
	Subscribe(buffer int) *ledger.Subscription
}

// Handler facilitates the notification stream delivery layer logic.
type Handler struct {
	source Source
}

// NewHandler returns a stream handler.
func NewHandler(s Source) Handler {
	return Handler{source: s}
}

// Events handles http request to follow ledger notifications as
// server-sent events. The stream stays open until the client disconnects.
func (h *Handler) Events(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	sub := h.source.Subscribe(subscriberBuffer)
	defer sub.Close()

	gctx.Header("Content-Type", sse.ContentType)
	gctx.Header("Cache-Control", "no-cache")
	gctx.Header("Connection", "keep-alive")

	// Send headers right away so clients know the stream is live before
	// the first notification arrives.
	gctx.Writer.Flush()

	l.Info().Msg("notification stream opened")

	gctx.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return false
			}

			gctx.Render(-1, sse.Event{
				Id:    uuid.New().String(),
				Event: ev.EventName(),
				Data:  ev,
			})

			return true
		case <-ctx.Done():
			return false
		}
	})

	l.Info().Msg("notification stream closed")
}
