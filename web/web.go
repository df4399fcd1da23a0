// Package web embeds the static dashboard page.
package web

import "embed"

//go:embed index.html
var FS embed.FS
