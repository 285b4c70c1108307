package docs2md

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-docs2md/internal/fileutil"
	"github.com/alnah/go-docs2md/internal/gfm"
)

// MaxWorkers caps the number of concurrent page conversions.
const MaxWorkers = 256

// Generator writes one Markdown file per export entry.
type Generator struct {
	conv        *Converter
	workers     int
	frontmatter bool
	verify      bool
	force       bool
	logger      *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithWorkers sets the number of concurrent page conversions. Zero or a
// negative value uses GOMAXPROCS; values above MaxWorkers are capped.
func WithWorkers(n int) GeneratorOption {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithFrontmatter toggles the YAML frontmatter block on generated pages.
func WithFrontmatter(enabled bool) GeneratorOption {
	return func(g *Generator) {
		g.frontmatter = enabled
	}
}

// WithVerify re-reads every generated page with goldmark and records
// output contract problems on its PageResult.
func WithVerify(enabled bool) GeneratorOption {
	return func(g *Generator) {
		g.verify = enabled
	}
}

// WithForce regenerates even when the output directory already holds files.
func WithForce(enabled bool) GeneratorOption {
	return func(g *Generator) {
		g.force = enabled
	}
}

// WithConverter sets the Converter used for page bodies.
func WithConverter(c *Converter) GeneratorOption {
	return func(g *Generator) {
		g.conv = c
	}
}

// WithGeneratorLogger sets the logger for progress and per-page failures.
func WithGeneratorLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator creates a Generator. By default pages carry frontmatter, the
// default Converter is used and nothing is logged.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{frontmatter: true}
	for _, opt := range opts {
		opt(g)
	}
	if g.conv == nil {
		g.conv = defaultConverter
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	if g.workers <= 0 {
		g.workers = runtime.GOMAXPROCS(0)
	}
	g.workers = min(g.workers, MaxWorkers)
	return g
}

// PageResult is the outcome of one page.
type PageResult struct {
	Route    string
	Path     string
	Bytes    int
	Duration time.Duration
	Problems []gfm.Problem
	Err      error
}

// Report summarizes a generation run.
type Report struct {
	Pages []PageResult
	// Skipped is set when the output directory already held files and
	// generation was not forced. ExistingFiles is their count.
	Skipped       bool
	ExistingFiles int
	Duration      time.Duration
}

// Written returns the number of pages written.
func (r *Report) Written() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the pages that could not be generated, in export order.
func (r *Report) Failed() []PageResult {
	var failed []PageResult
	for _, p := range r.Pages {
		if p.Err != nil {
			failed = append(failed, p)
		}
	}
	return failed
}

// BytesWritten returns the total size of the written pages.
func (r *Report) BytesWritten() int64 {
	var total int64
	for _, p := range r.Pages {
		if p.Err == nil {
			total += int64(p.Bytes)
		}
	}
	return total
}

// RenderPage returns the complete file content for e: frontmatter, when
// enabled, followed by the body and a final newline.
func (g *Generator) RenderPage(e *Entry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	body, err := g.conv.GenerateBody(e)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if g.frontmatter {
		front, err := Frontmatter(e)
		if err != nil {
			return "", fmt.Errorf("route %q: frontmatter: %w", e.Route, err)
		}
		sb.WriteString(front)
	}
	if body != "" {
		sb.WriteString(body)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// job is one page to generate.
type job struct {
	entry *Entry
	path  string
	err   error
}

// Generate writes every entry of the tree below outDir. A page that fails
// is reported in the returned Report and does not stop the others; the
// error return is reserved for problems with outDir itself.
//
// When outDir already contains files and the Generator is not forced,
// nothing is written and Report.Skipped is set.
func (g *Generator) Generate(ctx context.Context, entries []Entry, outDir string) (*Report, error) {
	start := time.Now()

	existing, err := fileutil.CountFiles(outDir)
	if err != nil {
		return nil, err
	}
	if existing > 0 && !g.force {
		g.logger.Info("output directory not empty, skipping generation", "dir", outDir, "files", existing)
		return &Report{Skipped: true, ExistingFiles: existing, Duration: time.Since(start)}, nil
	}

	jobs := g.plan(Flatten(entries), outDir)
	report := &Report{
		Pages:         g.run(ctx, jobs),
		ExistingFiles: existing,
	}
	report.Duration = time.Since(start)

	g.logger.Info("generation finished",
		"pages", len(report.Pages),
		"written", report.Written(),
		"failed", len(report.Pages)-report.Written(),
		"duration", report.Duration)
	return report, nil
}

// plan resolves the output path of every page and flags pages that cannot
// be written: invalid entries and routes colliding on one file.
func (g *Generator) plan(pages []Entry, outDir string) []job {
	jobs := make([]job, len(pages))
	owner := make(map[string]string, len(pages))
	for i := range pages {
		e := &pages[i]
		jobs[i].entry = e
		if err := e.Validate(); err != nil {
			jobs[i].err = err
			continue
		}
		path, err := fileutil.JoinUnder(outDir, e.OutputPath())
		if err != nil {
			jobs[i].err = fmt.Errorf("%w: %v", ErrRouteTraversal, err)
			continue
		}
		if first, ok := owner[path]; ok {
			jobs[i].err = fmt.Errorf("%w: %q and %q", ErrDuplicatePage, first, e.Route)
			continue
		}
		owner[path] = e.Route
		jobs[i].path = path
	}
	return jobs
}

// run processes jobs on the worker pool, keeping results in job order.
func (g *Generator) run(ctx context.Context, jobs []job) []PageResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(g.workers, len(jobs))
	results := make([]PageResult, len(jobs))
	queue := make(chan int, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = PageResult{Route: jobs[idx].entry.Route, Err: ctx.Err()}
					continue
				}
				results[idx] = g.generatePage(jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// generatePage renders and writes a single page.
func (g *Generator) generatePage(j job) (result PageResult) {
	start := time.Now()
	result = PageResult{Route: j.entry.Route, Path: j.path}
	defer func() {
		result.Duration = time.Since(start)
	}()

	if j.err != nil {
		result.Err = j.err
		g.logger.Warn("page skipped", "route", result.Route, "error", j.err)
		return result
	}

	content, err := g.RenderPage(j.entry)
	if err != nil {
		result.Err = err
		g.logger.Warn("page failed", "route", result.Route, "error", err)
		return result
	}

	if g.verify {
		result.Problems = gfm.Verify([]byte(content))
		for _, p := range result.Problems {
			g.logger.Warn("page problem", "route", result.Route, "kind", p.Kind, "detail", p.Detail)
		}
	}

	if err := fileutil.WriteFile(j.path, []byte(content)); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		g.logger.Warn("page failed", "route", result.Route, "error", result.Err)
		return result
	}

	result.Bytes = len(content)
	g.logger.Debug("page written", "route", result.Route, "path", j.path, "bytes", result.Bytes)
	return result
}
