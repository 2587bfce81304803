package site

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/semview/internal/progress"
	"github.com/ziadkadry99/semview/internal/view"
)

// Generator writes a self-contained static rendering of the viewer: an
// index page with the first variable selected, one page per variable with
// that variable active, and the stylesheet.
type Generator struct {
	OutputDir string
	Title     string
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(outputDir, title string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Title:     title,
		Reporter:  progress.Silent{},
	}
}

// Generate renders the site for an already-loaded view state. Returns the
// number of HTML pages written. A state that is not Succeeded cannot be
// rendered; a failed load has nothing to publish.
func (g *Generator) Generate(st view.ViewState) (int, error) {
	if st.Phase != view.PhaseSucceeded {
		return 0, fmt.Errorf("rendering site: document not loaded (state %s: %s)", st.Phase, st.Err)
	}

	if err := os.MkdirAll(filepath.Join(g.OutputDir, "variables"), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(view.StyleCSS), 0o644); err != nil {
		return 0, err
	}

	var names []string
	for _, label := range st.Groups.Labels() {
		names = append(names, st.Groups[label]...)
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Silent{}
	}
	reporter.Start(len(names) + 1)
	defer reporter.Finish()

	// Index page: links and assets are relative to the output root.
	indexOpts := view.PageOptions{
		VariableHref: func(name string) string {
			return "variables/" + view.PageFileName(name)
		},
	}
	if err := g.writePage("index.html", st, indexOpts); err != nil {
		return 0, err
	}
	pages := 1
	reporter.Update(pages, "index.html")

	// One page per variable, selection moved accordingly. Variable pages
	// link to their siblings in the same directory.
	varOpts := view.PageOptions{
		BasePath: "../",
		VariableHref: func(name string) string {
			return view.PageFileName(name)
		},
	}
	for _, name := range names {
		selected := view.Select(st, name)
		rel := filepath.Join("variables", view.PageFileName(name))
		if err := g.writePage(rel, selected, varOpts); err != nil {
			return pages, err
		}
		pages++
		reporter.Update(pages, name)
	}

	return pages, nil
}

func (g *Generator) writePage(rel string, st view.ViewState, opts view.PageOptions) error {
	path := filepath.Join(g.OutputDir, rel)
	if err := os.WriteFile(path, []byte(view.Page(g.Title, st, opts)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// Serve starts a local HTTP file server for a generated static site.
func Serve(dir string, port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving static site at http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop.")
	return http.ListenAndServe(addr, http.FileServer(http.Dir(dir)))
}
