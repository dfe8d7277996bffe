package carousel

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	domain "github.com/rotaract-dypcoe/landing/internal/carousel"
	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	apperrors "github.com/rotaract-dypcoe/landing/internal/services/landing/platform/errors"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/weberror"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
	"go.uber.org/zap"
)

const (
	eventSession = "session"
	eventSlide   = "slide"
	// Reconnect delay hint for EventSource clients, in milliseconds.
	retryMS = 3000
)

type sessionEvent struct {
	Session    string `json:"session"`
	Index      int    `json:"index"`
	Count      int    `json:"count"`
	IntervalMS int64  `json:"interval_ms"`
	Next       string `json:"next"`
	Prev       string `json:"prev"`
	Jump       string `json:"jump"`
}

func newSessionEvent(session domain.Session, count int) sessionEvent {
	return sessionEvent{
		Session:    session.ID,
		Index:      session.Player.Index(),
		Count:      count,
		IntervalMS: session.Player.Interval().Milliseconds(),
		Next:       routepath.CarouselNext(session.ID),
		Prev:       routepath.CarouselPrev(session.ID),
		Jump:       routepath.CarouselJump(session.ID),
	}
}

type slideEvent struct {
	Index int `json:"index"`
}

type handlers struct {
	deps      module.Dependencies
	keepAlive time.Duration
}

func newHandlers(deps module.Dependencies, keepAlive time.Duration) handlers {
	return handlers{deps: deps, keepAlive: keepAlive}
}

// handleStream mounts a player for the connection and streams its index
// until the client disconnects.
func (h handlers) handleStream(w http.ResponseWriter, r *http.Request) {
	registry := h.deps.Registry
	initial := parseInitial(r.URL.Query().Get(routepath.SlideParam), registry.Deck().Len())
	if r.Method == http.MethodHead {
		writeStreamHeaders(w)
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx := r.Context()
	session, err := registry.Open(ctx, initial)
	if err != nil {
		weberror.WriteError(w, r, fmt.Errorf("open carousel session: %w", err), h.deps.Log())
		return
	}
	defer registry.Close(session.ID)

	logger := h.deps.Log().With(zap.String("session", session.ID))
	logger.Debug("carousel stream opened", zap.Int("index", initial))
	defer logger.Debug("carousel stream closed")

	rc := http.NewResponseController(w)
	writeStreamHeaders(w)
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "retry: %d\n\n", retryMS); err != nil {
		return
	}
	if err := writeEvent(w, eventSession, newSessionEvent(session, registry.Deck().Len())); err != nil {
		logger.Debug("write session event", zap.Error(err))
		return
	}
	if err := rc.Flush(); err != nil {
		logger.Warn("stream flush unsupported", zap.Error(err))
		return
	}

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case index := <-session.Player.Changes():
			if err := writeEvent(w, eventSlide, slideEvent{Index: index}); err != nil {
				return
			}
		case <-keepAlive.C:
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func (h handlers) handleNext(w http.ResponseWriter, r *http.Request) {
	player, ok := h.player(w, r)
	if !ok {
		return
	}
	player.Next()
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handlePrev(w http.ResponseWriter, r *http.Request) {
	player, ok := h.player(w, r)
	if !ok {
		return
	}
	player.Prev()
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleJump(w http.ResponseWriter, r *http.Request) {
	player, ok := h.player(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteError(w, r, invalidIndex(err.Error()), h.deps.Log())
		return
	}
	raw := strings.TrimSpace(r.PostForm.Get(routepath.CarouselIndexField))
	index, err := strconv.Atoi(raw)
	if err != nil {
		weberror.WriteError(w, r, invalidIndex(fmt.Sprintf("index %q is not a number", raw)), h.deps.Log())
		return
	}
	if err := player.JumpTo(index); err != nil {
		weberror.WriteError(w, r, invalidIndex(err.Error()), h.deps.Log())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "carousel route not found"), h.deps.Log())
}

func (h handlers) player(w http.ResponseWriter, r *http.Request) (*domain.Player, bool) {
	id := strings.TrimSpace(r.PathValue(routepath.CarouselSessionPathID))
	player, ok := h.deps.Registry.Get(id)
	if !ok {
		weberror.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, "error.carousel.session_not_found", "carousel session "+id+" not found"), h.deps.Log())
		return nil, false
	}
	return player, true
}

func invalidIndex(message string) error {
	return apperrors.EK(apperrors.KindInvalidInput, "error.carousel.invalid_index", message)
}

func parseInitial(raw string, n int) int {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || index < 0 || index >= n {
		return 0
	}
	return index
}

func writeStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

func writeEvent(w io.Writer, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
