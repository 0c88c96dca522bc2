// server is the web host for the fractal core. It serves the browser page
// from ./static and runs one camera session per websocket connection: the
// page sends pan/zoom/resize ops, the server recomputes the frame and
// streams it back as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	staticDir := flag.String("static", "./static", "directory served at /")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", frameHandler())
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
