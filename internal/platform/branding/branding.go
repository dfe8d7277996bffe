// Package branding holds the names shown across the landing site.
package branding

// AppName is the short site name used in titles.
const AppName = "Rotaract DYPCOE"

// Organization is the legal club name used in the footer.
const Organization = "Rotaract Club of DYPCOE"
