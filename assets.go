// Package staffportal provides embedded assets for production builds.
package staffportal

import "embed"

// Embedded page templates. In dev mode (IsDev=true) templates are
// loaded from disk instead, so edits show up without a rebuild.

//go:embed all:web/templates
var TemplateFS embed.FS
