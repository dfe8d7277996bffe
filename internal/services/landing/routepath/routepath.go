// Package routepath stores canonical HTTP paths for the landing service.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root                  = "/"
	Health                = "/up"
	StaticPrefix          = "/static/"
	ImagesPrefix          = "/images/"
	AboutAnchor           = "/#about"
	HomeAnchor            = "/#home"
	CarouselPrefix        = "/carousel/"
	CarouselStream        = "/carousel/stream"
	CarouselNextPattern   = CarouselPrefix + "{session}/next"
	CarouselPrevPattern   = CarouselPrefix + "{session}/prev"
	CarouselJumpPattern   = CarouselPrefix + "{session}/jump"
	SlideParam            = "slide"
	CarouselIndexField    = "index"
	CarouselSessionPathID = "session"
)

// CarouselNext returns the navigation endpoint advancing session.
func CarouselNext(session string) string {
	return CarouselPrefix + url.PathEscape(strings.TrimSpace(session)) + "/next"
}

// CarouselPrev returns the navigation endpoint retreating session.
func CarouselPrev(session string) string {
	return CarouselPrefix + url.PathEscape(strings.TrimSpace(session)) + "/prev"
}

// CarouselJump returns the navigation endpoint selecting a slide in session.
func CarouselJump(session string) string {
	return CarouselPrefix + url.PathEscape(strings.TrimSpace(session)) + "/jump"
}

// CarouselStreamAt returns the stream URL starting at slide index.
func CarouselStreamAt(index int) string {
	return CarouselStream + "?" + url.Values{SlideParam: {strconv.Itoa(index)}}.Encode()
}

// SlideURL returns path with the slide query parameter set to index, keeping
// the other query parameters.
func SlideURL(path string, rawQuery string, index int) string {
	return withQueryParam(path, rawQuery, SlideParam, strconv.Itoa(index))
}

// LanguageURL returns path with the lang query parameter set to tag.
func LanguageURL(path string, rawQuery string, param string, tag string) string {
	return withQueryParam(path, rawQuery, param, tag)
}

func withQueryParam(path string, rawQuery string, key string, value string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = Root
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(key, value)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
