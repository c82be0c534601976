// ABOUTME: Page templates embedded into the binary and a renderer for them
// ABOUTME: Every page shares one layout with the site header, navigation and footer

package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed html/*.html
var files embed.FS

// Page template names
const (
	PageHome        = "home"
	PageCategory    = "category"
	PageArticle     = "article"
	PageNotFound    = "not_found"
	PageProducts    = "products"
	PageDiagnostics = "diagnostics"
)

var pageNames = []string{PageHome, PageCategory, PageArticle, PageNotFound, PageProducts, PageDiagnostics}

// NavLink is one header navigation entry
type NavLink struct {
	Label string
	Href  string
}

// Navigation lists the header links in display order
var Navigation = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Care Tasks", Href: "/care-tasks"},
	{Label: "Behavior", Href: "/behavior"},
	{Label: "Products", Href: "/products"},
}

// Page is what a handler hands to the renderer
type Page struct {
	// Title is the page-specific title; empty uses the site name alone
	Title string

	// Active is the path of the highlighted navigation link
	Active string

	// Data is the page view model
	Data interface{}
}

// layoutData is the value every template executes against
type layoutData struct {
	SiteName  string
	PageTitle string
	Active    string
	Year      int
	Nav       []NavLink
	Data      interface{}
}

// Renderer executes page templates inside the shared layout
type Renderer struct {
	siteName string
	pages    map[string]*template.Template
	now      func() time.Time
}

// New parses the embedded templates
func New(siteName string) (*Renderer, error) {
	base, err := template.ParseFS(files, "html/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		layout, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}

		page, err := layout.ParseFS(files, "html/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = page
	}

	return &Renderer{
		siteName: siteName,
		pages:    pages,
		now:      time.Now,
	}, nil
}

// Render writes the named page. Output is buffered so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template: %s", name)
	}

	data := layoutData{
		SiteName:  r.siteName,
		PageTitle: r.documentTitle(page.Title),
		Active:    page.Active,
		Year:      r.now().Year(),
		Nav:       Navigation,
		Data:      page.Data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// documentTitle builds the <title> text
func (r *Renderer) documentTitle(title string) string {
	if title == "" {
		return r.siteName
	}
	return title + " | " + r.siteName
}
