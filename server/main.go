//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
)

//go:embed index.html
var indexHTML []byte

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	dir := flag.String("dir", ".", "directory holding the compiled stillfield.js artifact")
	flag.Parse()

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	// Compiled GopherJS output (and its source map) live next to the
	// server or wherever -dir points.
	for _, name := range []string{"/stillfield.js", "/stillfield.js.map"} {
		artifact := filepath.Join(*dir, filepath.Base(name))
		path := name
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, artifact)
		})
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("stillfield dev server listening on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
