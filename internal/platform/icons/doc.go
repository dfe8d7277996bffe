// Package icons names the icons the landing page uses.
//
// Templates refer to stable icon ids; lucide.go binds each id to a Lucide
// glyph rendered from an inline sprite.
package icons
