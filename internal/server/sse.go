package server

import (
	"fmt"
	"net/http"
)

// ServeHTTP streams reload events to the browser over SSE. The page script
// reconnects on its own after a reload, so each connection is fire-and-
// forget.
func (r *Reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := make(chan struct{}, 1)
	r.clientMu.Lock()
	r.clients[clientChan] = struct{}{}
	r.clientMu.Unlock()

	defer func() {
		r.clientMu.Lock()
		delete(r.clients, clientChan)
		r.clientMu.Unlock()
	}()

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-req.Context().Done():
			return
		case <-r.done:
			return
		case <-clientChan:
			_, _ = fmt.Fprintf(w, "data: reload\n\n")
			flusher.Flush()
		}
	}
}
