package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// Options configures a bundle export.
type Options struct {
	// OutputDir is where the bundle is written; created if missing.
	OutputDir string

	// Filters drives what the tree renders, same semantics as the TUI.
	Filters query.Filters

	// ImageScale multiplies the PNG resolution (2.0 default upstream).
	ImageScale float64
}

// Bundle file names.
const (
	IndexFile = "index.html"
	SVGFile   = "tree.svg"
	PNGFile   = "tree.png"
	DataFile  = "family.json"
)

// WriteBundle renders the full static bundle into opts.OutputDir. The four
// artifacts are independent, so they render concurrently.
func WriteBundle(fd *model.FamilyData, opts Options) error {
	if opts.OutputDir == "" {
		return fmt.Errorf("export output directory cannot be empty")
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create bundle directory: %w", err)
	}

	var g errgroup.Group

	g.Go(func() error {
		return writeFile(filepath.Join(opts.OutputDir, IndexFile), func(f *os.File) error {
			return WriteHTML(f, fd, opts.Filters)
		})
	})

	g.Go(func() error {
		return writeFile(filepath.Join(opts.OutputDir, SVGFile), func(f *os.File) error {
			WriteSVG(f, fd, opts.Filters)
			return nil
		})
	})

	g.Go(func() error {
		return writeFile(filepath.Join(opts.OutputDir, PNGFile), func(f *os.File) error {
			return WritePNG(f, fd, opts.Filters, opts.ImageScale)
		})
	})

	g.Go(func() error {
		return writeFile(filepath.Join(opts.OutputDir, DataFile), func(f *os.File) error {
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			return enc.Encode(fd)
		})
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("bundle export failed: %w", err)
	}
	return nil
}

func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
