// Command mockremote stands in for the storefront's save endpoint during
// development: POST /save.php stores the payload, GET /data.json returns it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
)

type server struct {
	mu   sync.RWMutex
	path string
	fail bool
}

func main() {
	addr := flag.String("addr", ":8090", "Listen address")
	path := flag.String("data", "data.json", "File the payload is written to")
	fail := flag.Bool("fail", false, "Answer every save with 500, to exercise the local fallback")
	flag.Parse()

	s := &server{path: *path, fail: *fail}

	mux := http.NewServeMux()
	mux.HandleFunc("/save.php", s.save)
	mux.HandleFunc("/data.json", s.data)

	fmt.Printf("Mock remote on %s (data file %s, fail=%v)\n", *addr, *path, *fail)
	fmt.Printf("  STOREADMIN_REMOTE_SAVE_URL=http://localhost%s/save.php\n", *addr)
	fmt.Printf("  STOREADMIN_REMOTE_DATA_URL=http://localhost%s/data.json\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func (s *server) save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.fail {
		http.Error(w, "mock failure", http.StatusInternalServerError)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 64<<20))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		http.Error(w, "body is not JSON", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err = os.WriteFile(s.path, body, 0o644)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("saved %d bytes", len(body))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func (s *server) data(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	body, err := os.ReadFile(s.path)
	s.mu.RUnlock()
	if os.IsNotExist(err) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("served snapshot (t=%s)", r.URL.Query().Get("t"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(body)
}
