package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

// TemplateRenderer renders HTML pages for UI responses. Templates are
// parsed once at startup; every page renders through the shared layout,
// which dispatches to the page's content template by CurrentPage.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for NewTemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS // Required: filesystem rooted at the templates dir
	Logger     *slog.Logger
}

// NewTemplateRenderer parses all templates from the provided filesystem.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	renderer := &TemplateRenderer{logger: cfg.Logger}

	var t *template.Template
	t, err := template.New("root").Funcs(templateFuncs(&t)).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed", slog.Any("error", err))
		}
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

// RenderPage renders the full page (layout plus content template) into
// a buffer first, so a template failure never produces a half-written
// response.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, data map[string]any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, "layout", data); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.Any("page", data["CurrentPage"]),
				slog.Any("error", err),
			)
		}
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template", slog.Any("error", err))
		}
		return err
	}
	return nil
}

// templateFuncs builds the layout's function map. The template pointer
// is filled in after parsing so pageContent can dispatch dynamically.
func templateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		"hasString": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
		"pageContent": func(data map[string]any) (template.HTML, error) {
			page, _ := data["CurrentPage"].(string)
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, ContentTemplateFor(page), data); err != nil {
				return "", err
			}
			//nolint:gosec // content templates escape their own data
			return template.HTML(buf.String()), nil
		},
	}
}
