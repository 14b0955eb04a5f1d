package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/nuwandm/mahagedara/pkg/config"
	"github.com/nuwandm/mahagedara/pkg/export"
	"github.com/nuwandm/mahagedara/pkg/loader"
	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
	"github.com/nuwandm/mahagedara/pkg/ui"
	"github.com/nuwandm/mahagedara/pkg/watcher"
)

const appVersion = "0.1.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Path to config file (default "+config.DefaultFileName+" if present)")
	dataPath := flag.String("data", "", "Path to the family data file (overrides config)")
	doExport := flag.Bool("export", false, "Export a static HTML/SVG/PNG bundle and exit")
	outDir := flag.String("out", "", "Bundle output directory for -export (overrides config)")
	preview := flag.Bool("preview", false, "After export, serve the bundle locally and open a browser")
	watch := flag.Bool("watch", true, "Reload the viewer when the data file changes")
	search := flag.String("search", "", "Filter the exported tree by a search term")
	tags := flag.String("tags", "", "Filter the exported tree by tags (comma-separated, any-of)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: mg [options]")
		fmt.Println("\nA TUI viewer and static exporter for family tree data.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("mg version " + appVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}
	if *outDir != "" {
		cfg.Export.OutputDir = *outDir
	}

	data, err := loader.LoadFamilyFromFile(cfg.DataPath)
	if err != nil {
		fmt.Printf("Error loading family data: %v\n", err)
		fmt.Printf("Expected a JSON family file at %s (use -data to point elsewhere).\n", cfg.DataPath)
		os.Exit(1)
	}

	if *doExport || *preview {
		runExport(cfg, data, exportFilters(*search, *tags), *preview)
		return
	}

	runViewer(cfg, data, *watch)
}

// exportFilters builds the filter state for a filtered export.
func exportFilters(search, tags string) query.Filters {
	f := query.NewFilters()
	f.Search = strings.TrimSpace(search)
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			f.Tags = append(f.Tags, tag)
		}
	}
	return f
}

// runExport writes the static bundle, prompting for a directory when none
// is configured and confirming before overwriting an existing bundle.
func runExport(cfg config.Config, data *model.FamilyData, f query.Filters, preview bool) {
	dir := cfg.Export.OutputDir
	if dir == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Error: no export directory configured (use -out)")
			os.Exit(1)
		}
		prompt := huh.NewInput().
			Title("Export bundle to which directory?").
			Placeholder("dist").
			Value(&dir)
		if err := prompt.Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if dir == "" {
			dir = "dist"
		}
	}
	if shouldConfirmOverwrite(dir) {
		overwrite := true
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite existing bundle in %s?", dir)).
			Value(&overwrite)
		if err := prompt.Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if !overwrite {
			fmt.Println("Export cancelled.")
			return
		}
	}

	err := export.WriteBundle(data, export.Options{
		OutputDir:  dir,
		Filters:    f,
		ImageScale: cfg.Export.ImageScale,
	})
	if err != nil {
		fmt.Printf("Error exporting bundle: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported bundle to %s\n", dir)

	if !preview {
		return
	}
	server, err := export.NewPreviewServer(dir, cfg.PreviewPort)
	if err != nil {
		fmt.Printf("Error starting preview: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Previewing at %s (ctrl+c to stop)\n", server.URL())
	if err := server.Run(); err != nil {
		fmt.Printf("Preview server error: %v\n", err)
		os.Exit(1)
	}
}

// shouldConfirmOverwrite reports whether an interactive overwrite prompt
// makes sense: an index.html already exists and stdin is a terminal.
func shouldConfirmOverwrite(dir string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, export.IndexFile))
	return err == nil
}

func runViewer(cfg config.Config, data *model.FamilyData, watch bool) {
	m := ui.NewModel(data, cfg.DataPath, ui.NewTheme(cfg.AccentColor))
	p := tea.NewProgram(m, tea.WithAltScreen())

	if watch {
		onChange := func() { p.Send(ui.DataChangedMsg{}) }
		if w, err := watcher.NewDataWatcher(cfg.DataPath, cfg.WatchDebounce, onChange); err == nil {
			w.Start()
			defer w.Stop()
		} else if pw, perr := watcher.NewPollingWatcher(cfg.DataPath, 0, onChange); perr == nil {
			pw.Start()
			defer pw.Stop()
		} else {
			fmt.Printf("Warning: live reload disabled: %v\n", err)
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running family viewer: %v\n", err)
		os.Exit(1)
	}
}
