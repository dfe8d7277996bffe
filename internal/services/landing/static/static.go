package static

import "embed"

// FS exposes landing static assets for HTTP serving and export.
//
//go:embed *.css *.js
var FS embed.FS
