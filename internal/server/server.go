// Package server implements the isoserve static asset server: a plain file
// server that forces the MIME types WASM apps need and stamps the
// cross-origin isolation headers on every response.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Kush-Singh-26/isoserve/internal/config"
)

// ReloadPath is where the live-reload SSE stream is exposed.
const ReloadPath = "/__reload"

const shutdownTimeout = 5 * time.Second

// Server owns the listening socket and the HTTP server around the static
// file handler.
type Server struct {
	cfg        *config.Config
	root       string
	httpServer *http.Server
	listener   net.Listener
	reloader   *Reloader
}

// New assembles a server from the configuration. The serving root is
// resolved once, here; the process working directory is never changed.
func New(cfg *config.Config) *Server {
	root := resolveRoot(cfg.Root)

	mux := http.NewServeMux()

	var reloader *Reloader
	if cfg.LiveReload {
		reloader = newReloader(root, cfg.Debounce())
		mux.Handle(ReloadPath, reloader)
	}
	mux.Handle("/", newFileHandler(root, NewMIMETable(cfg.MIMETypes)))

	return &Server{
		cfg:      cfg,
		root:     root,
		reloader: reloader,
		httpServer: &http.Server{
			Handler: isolationHandler(mux),
		},
	}
}

// resolveRoot picks the serving root: an explicit root wins, otherwise a
// dist directory next to the launch location, otherwise the launch
// location itself.
func resolveRoot(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if info, err := os.Stat("dist"); err == nil && info.IsDir() {
		return "dist"
	}
	return "."
}

// Listen binds the socket. A port that is taken or forbidden surfaces the
// OS error as-is; there is no retry and no fallback port.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.ServerAddress())
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address. Only valid after Listen.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve handles requests until ctx is cancelled, then drains in-flight
// requests and releases the socket.
func (s *Server) Serve(ctx context.Context) error {
	if s.reloader != nil {
		s.reloader.Start()
	}

	fmt.Printf("🚀 Serving %s at %s\n", s.root, s.displayURL())
	fmt.Println("📁 DDS files will be served with correct MIME type")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case err := <-serveErr:
		s.stopReloader()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	// Stop the reloader first: it unblocks any open SSE streams so the
	// drain below does not have to wait them out.
	s.stopReloader()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
		_ = s.httpServer.Close()
	}
	<-serveErr
	return nil
}

// Start is Listen followed by Serve.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

func (s *Server) stopReloader() {
	if s.reloader != nil {
		s.reloader.Stop()
	}
}

// displayURL is the human-facing address for the startup banner. A wildcard
// bind is shown as localhost, which is where a dev actually opens it.
func (s *Server) displayURL() string {
	host := s.cfg.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	port := s.listener.Addr().(*net.TCPAddr).Port
	return fmt.Sprintf("http://%s:%d", host, port)
}
