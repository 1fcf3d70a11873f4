package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
	"github.com/heartmarshall/memorable-quantities/internal/service/chat"
)

// relayBufferSize bounds how much of the upstream stream is held at once.
const relayBufferSize = 4 << 10

type chatService interface {
	Complete(ctx context.Context, input chat.CompleteInput) (*domain.Completion, error)
	Stream(ctx context.Context, input chat.CompleteInput) (io.ReadCloser, error)
	Example(ctx context.Context, input chat.CompleteInput) (json.RawMessage, error)
}

// ChatHandler serves the generic chat endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	Messages []domain.Message `json:"messages"`
	Stream   bool             `json:"stream"`
}

type chatResponse struct {
	Content string          `json:"content"`
	Message json.RawMessage `json:"message"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, fmt.Errorf("decode request body: %w", err))
		return
	}

	input := chat.CompleteInput{Messages: req.Messages}

	if req.Stream {
		body, err := h.svc.Stream(r.Context(), input)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.relay(w, r, body)
		return
	}

	res, err := h.svc.Complete(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Content: res.Content, Message: res.Message})
}

// Example handles POST /api/example. It answers with the model's message
// object and reports failures without details.
func (h *ChatHandler) Example(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.ErrorContext(r.Context(), "example failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, failedLabel)
		return
	}

	msg, err := h.svc.Example(r.Context(), chat.CompleteInput{Messages: req.Messages})
	if err != nil {
		h.log.ErrorContext(r.Context(), "example failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, failedLabel)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// relay copies the upstream event stream to the client unmodified,
// flushing after every chunk, until the upstream ends or fails.
func (h *ChatHandler) relay(w http.ResponseWriter, r *http.Request, body io.ReadCloser) {
	defer body.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	buf := make([]byte, relayBufferSize)
	var relayed int64

	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				h.log.WarnContext(r.Context(), "stream write failed",
					slog.String("error", werr.Error()),
					slog.Int64("bytes", relayed),
				)
				return
			}
			relayed += int64(n)
			rc.Flush() //nolint:errcheck
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				h.log.ErrorContext(r.Context(), "upstream stream failed",
					slog.String("error", err.Error()),
					slog.Int64("bytes", relayed),
				)
			}
			return
		}
	}
}

func (h *ChatHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "chat failed", slog.String("error", err.Error()))
	writeFailure(w, err)
}
