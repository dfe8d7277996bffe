package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type errorCopy struct {
	pageTitle string
	title     string
	message   string
}

func errorCopyFor(statusCode int) errorCopy {
	if statusCode == http.StatusNotFound {
		return errorCopy{
			pageTitle: "web.error.page_title_not_found",
			title:     "web.error.title_not_found",
			message:   "web.error.message_not_found",
		}
	}
	return errorCopy{
		pageTitle: "web.error.page_title_server_error",
		title:     "web.error.title_server_error",
		message:   "web.error.message_server_error",
	}
}

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, errorCopyFor(statusCode).pageTitle)
}

// ErrorState renders the body of an error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	texts := errorCopyFor(statusCode)
	return Component(h.Section(
		h.Class("error-state"),
		h.P(h.Class("error-state__status"), g.Textf("%d", statusCode)),
		h.H1(h.Class("error-state__title"), g.Text(T(loc, texts.title))),
		h.P(h.Class("error-state__message"), g.Text(T(loc, texts.message))),
		h.A(h.Class("error-state__action"), h.Href(routepath.Root), g.Text(T(loc, "web.error.action_back_home"))),
	))
}
