// Package weberror renders user-safe error responses for landing modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/rotaract-dypcoe/landing/internal/services/landing/platform/errors"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/httpx"
	landingi18n "github.com/rotaract-dypcoe/landing/internal/services/landing/platform/i18n"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/pagerender"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/templates"
	"go.uber.org/zap"
)

// ShouldRenderPage reports whether status should use the error page.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WritePage writes a localized full-page error response.
func WritePage(w http.ResponseWriter, r *http.Request, statusCode int, logger *zap.Logger) {
	if w == nil {
		return
	}
	if !ShouldRenderPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc := landingi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, loc, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Body:       templates.ErrorState(statusCode, loc),
	})
	if err != nil {
		if logger != nil {
			logger.Error("render error page", zap.Int("status", statusCode), zap.Error(err))
		}
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteError writes err as a page for 404/5xx navigations, as JSON for
// clients that accept it and as plain text otherwise. Internal error text
// never reaches the response.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", zap.String("path", requestPath(r)), zap.Error(err))
	}
	if ShouldRenderPage(statusCode) && acceptsHTML(r) {
		WritePage(w, r, statusCode, logger)
		return
	}
	message := PublicMessage(landingi18n.ResolveLocalizer(w, r), err)
	if acceptsJSON(r) {
		if writeErr := httpx.WriteJSONError(w, statusCode, message); writeErr != nil && logger != nil {
			logger.Debug("write json error", zap.Error(writeErr))
		}
		return
	}
	http.Error(w, message, statusCode)
}

func acceptsJSON(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func acceptsHTML(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
