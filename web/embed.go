// Package web holds the embedded static assets served by the backend.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
