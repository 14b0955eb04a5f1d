package export

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

// Preview port range tried when no port is configured.
const (
	PreviewPortRangeStart = 9000
	PreviewPortRangeEnd   = 9100
)

// PreviewServer serves an exported bundle locally with no-cache headers so
// re-exports show up on refresh.
type PreviewServer struct {
	bundlePath string
	port       int
	server     *http.Server
}

// NewPreviewServer creates a preview server for the bundle directory. Port
// 0 selects the first free port in the preview range.
func NewPreviewServer(bundlePath string, port int) (*PreviewServer, error) {
	if _, err := os.Stat(filepath.Join(bundlePath, IndexFile)); os.IsNotExist(err) {
		return nil, fmt.Errorf("no %s found in bundle: %s", IndexFile, bundlePath)
	}

	if port == 0 {
		var err error
		port, err = findAvailablePort(PreviewPortRangeStart, PreviewPortRangeEnd)
		if err != nil {
			return nil, err
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", noCacheMiddleware(http.FileServer(http.Dir(bundlePath))))

	return &PreviewServer{
		bundlePath: bundlePath,
		port:       port,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}, nil
}

// URL returns the address the server listens on.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

// Run serves until interrupted, opening the browser shortly after start.
func (p *PreviewServer) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := OpenInBrowser(p.URL()); err != nil {
			fmt.Printf("Could not open browser: %v\n", err)
			fmt.Printf("Open %s in your browser\n", p.URL())
		}
	}()

	fmt.Printf("Preview server running at %s\n", p.URL())
	fmt.Printf("Serving: %s\n", p.bundlePath)
	fmt.Println("Press Ctrl+C to stop")

	select {
	case <-stop:
		fmt.Println("\nShutting down preview server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return p.server.Shutdown(ctx)
	case err := <-errChan:
		return err
	}
}

func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func findAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}
