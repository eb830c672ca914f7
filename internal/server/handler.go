package server

import (
	"net/http"
	"os"

	"github.com/spf13/afero"
)

// fileHandler serves the static tree. The afero BasePathFs is rooted at the
// serving root, so no resolved path can physically escape it.
type fileHandler struct {
	fs      afero.Fs
	fileSrv http.Handler
	mimes   MIMETable
}

func newFileHandler(root string, mimes MIMETable) *fileHandler {
	base := afero.NewBasePathFs(afero.NewOsFs(), root)
	return newFileHandlerFS(base, mimes)
}

// newFileHandlerFS is the injectable form used by tests with a memory fs.
func newFileHandlerFS(base afero.Fs, mimes MIMETable) *fileHandler {
	httpFs := afero.NewHttpFs(base)
	return &fileHandler{
		fs:      base,
		fileSrv: http.FileServer(httpFs.Dir("/")),
		mimes:   mimes,
	}
}

func (h *fileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	normalized := normalizeRequestPath(r.URL.Path)

	if err := validateRequestPath(normalized); err != nil {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("403 - Forbidden: Invalid path"))
		return
	}

	info, err := h.fs.Stat(normalized)
	if err != nil {
		if os.IsNotExist(err) {
			h.serveNotFound(w)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("500 - Internal Server Error"))
		}
		return
	}

	// Setting Content-Type here keeps the file server from deriving it, so
	// the table's entries win over the system registry.
	if !info.IsDir() {
		if typ := h.mimes.Lookup(normalized); typ != "" {
			w.Header().Set("Content-Type", typ)
		}
	}

	h.fileSrv.ServeHTTP(w, r)
}

// serveNotFound renders 404.html from the serving root when present, and a
// plain text fallback otherwise.
func (h *fileHandler) serveNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	if content, err := afero.ReadFile(h.fs, "/404.html"); err == nil {
		_, _ = w.Write(content)
		return
	}
	_, _ = w.Write([]byte("404 - Page Not Found"))
}
