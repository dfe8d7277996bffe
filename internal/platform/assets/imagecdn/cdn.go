// Package imagecdn resolves image asset ids into delivery URLs.
package imagecdn

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ErrAssetIDRequired reports a request without an asset id.
var ErrAssetIDRequired = errors.New("imagecdn: asset id is required")

// DefaultBaseURL serves images from the site's own /images/ path.
const DefaultBaseURL = "/images"

// Delivery shapes the delivered rendition.
type Delivery struct {
	WidthPX int
	// Quality is 1-100; zero lets the CDN choose.
	Quality int
}

// Request describes one image URL.
type Request struct {
	AssetID   string
	Extension string
	Delivery  *Delivery
}

// CDN builds image URLs under a base URL. Cloudinary bases receive transform
// segments; any other base serves the original file.
type CDN struct {
	base       string
	transforms bool
}

// New returns a CDN rooted at baseURL. An empty base uses DefaultBaseURL.
func New(baseURL string) CDN {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return CDN{base: base, transforms: isCloudinary(base)}
}

// Local reports whether images resolve under the site's own /images path.
func (c CDN) Local() bool {
	return c.base == DefaultBaseURL
}

func isCloudinary(base string) bool {
	parsed, err := url.Parse(base)
	if err != nil {
		return false
	}
	return strings.EqualFold(parsed.Host, "res.cloudinary.com")
}

// URL resolves req into an absolute or site-relative URL.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	ext := strings.TrimSpace(req.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	file := assetID + ext

	if !c.transforms {
		return c.base + "/" + file, nil
	}
	segments := make([]string, 0, 2)
	if delivery := req.Delivery; delivery != nil {
		quality := "q_auto"
		if delivery.Quality > 0 && delivery.Quality <= 100 {
			quality = fmt.Sprintf("q_%d", delivery.Quality)
		}
		transform := "f_auto," + quality + ",dpr_auto"
		if delivery.WidthPX > 0 {
			transform += fmt.Sprintf(",c_limit,w_%d", delivery.WidthPX)
		}
		segments = append(segments, transform)
	}
	segments = append(segments, file)
	return c.base + "/" + strings.Join(segments, "/"), nil
}

// FileRequest splits a file name such as "carousel-1.jpg" into a request.
func FileRequest(name string) Request {
	name = strings.TrimSpace(name)
	ext := path.Ext(name)
	return Request{AssetID: strings.TrimSuffix(name, ext), Extension: ext}
}
