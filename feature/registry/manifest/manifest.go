package manifest

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"

	"registry-server/core/source"
	"registry-server/feature/registry"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var registryItems = jp.MustParseString("$.items[*]")

// DefaultConcurrency bounds how many component manifests are checked at once.
const DefaultConcurrency = 8

// ComponentReport is the result of checking one component manifest.
type ComponentReport struct {
	Name  string `json:"name"`
	File  string `json:"file"`
	Type  string `json:"type,omitempty"`
	Files int    `json:"files"`
	Error string `json:"error,omitempty"`
}

// IndexReport is the result of checking one registry index and its components.
type IndexReport struct {
	Path       string            `json:"path"`
	File       string            `json:"file"`
	Schema     string            `json:"schema,omitempty"`
	Keys       []string          `json:"keys,omitempty"`
	Components []ComponentReport `json:"components"`
	Error      string            `json:"error,omitempty"`
}

// Report covers every route of a layout.
type Report struct {
	Layout  string        `json:"layout"`
	Indexes []IndexReport `json:"indexes"`
}

// Checker validates the registry files a layout would serve.
type Checker struct {
	source      source.Source
	layout      registry.Layout
	concurrency int
}

// NewChecker creates a checker reading from src.
func NewChecker(src source.Source, layout registry.Layout) *Checker {
	return &Checker{source: src, layout: layout, concurrency: DefaultConcurrency}
}

// Check loads every index and every component it lists. The report is always
// returned; the error aggregates every problem found.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	report := &Report{Layout: c.layout.Name}
	var problems error

	for _, route := range c.layout.Routes {
		idx, err := c.checkRoute(ctx, route)
		problems = multierr.Append(problems, err)
		report.Indexes = append(report.Indexes, idx)
	}
	return report, problems
}

func (c *Checker) checkRoute(ctx context.Context, route registry.Route) (IndexReport, error) {
	idx := IndexReport{Path: route.IndexPath, File: route.IndexFile}

	doc, err := c.load(ctx, route.IndexFile)
	if err != nil {
		idx.Error = err.Error()
		return idx, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		err = fmt.Errorf("%s: index is not a JSON object", route.IndexFile)
		idx.Error = err.Error()
		return idx, err
	}
	for k := range obj {
		idx.Keys = append(idx.Keys, k)
	}
	sort.Strings(idx.Keys)
	idx.Schema, _ = obj["$schema"].(string)

	var (
		names    []string
		problems error
	)
	for _, v := range registryItems.Get(doc) {
		item, _ := v.(map[string]any)
		name, _ := item["name"].(string)
		if name == "" {
			problems = multierr.Append(problems, fmt.Errorf("%s: item without a name", route.IndexFile))
			continue
		}
		names = append(names, name)
	}

	idx.Components = make([]ComponentReport, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, name := range names {
		g.Go(func() error {
			idx.Components[i] = c.checkComponent(gctx, route, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return idx, err
	}

	for _, comp := range idx.Components {
		if comp.Error != "" {
			problems = multierr.Append(problems, errors.New(comp.Error))
		}
	}
	return idx, problems
}

func (c *Checker) checkComponent(ctx context.Context, route registry.Route, name string) ComponentReport {
	comp := ComponentReport{Name: name, File: path.Join(route.Dir, name+".json")}

	doc, err := c.load(ctx, comp.File)
	if err != nil {
		comp.Error = err.Error()
		return comp
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		comp.Error = fmt.Sprintf("%s: manifest is not a JSON object", comp.File)
		return comp
	}

	var missing []string
	if n, _ := obj["name"].(string); n == "" {
		missing = append(missing, "name")
	}
	if comp.Type, _ = obj["type"].(string); comp.Type == "" {
		missing = append(missing, "type")
	}
	files, ok := obj["files"].([]any)
	if !ok {
		missing = append(missing, "files")
	}
	comp.Files = len(files)

	if len(missing) > 0 {
		comp.Error = fmt.Sprintf("%s: missing %v", comp.File, missing)
	}
	return comp
}

func (c *Checker) load(ctx context.Context, name string) (any, error) {
	data, err := c.source.ReadFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", name, err)
	}
	return doc, nil
}
