package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ganttview/internal/config"
	"ganttview/internal/gantt"
	"ganttview/internal/model"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(u.Host), strings.TrimSpace(r.Host))
	},
}

// Server renders the chart for one input file and pushes a reload signal to
// connected browsers whenever the file changes on disk.
type Server struct {
	cfg  config.Config
	mode model.Mode
	path string
	tmpl *template.Template

	mu       sync.RWMutex
	analysis *model.Analysis
	version  int64 // bumped on every successful re-analysis
	lastErr  string
	modTime  time.Time
}

// NewServer wraps an initial analysis of path.
func NewServer(cfg config.Config, mode model.Mode, path string, initial *model.Analysis) *Server {
	s := &Server{
		cfg:      cfg,
		mode:     mode,
		path:     path,
		tmpl:     template.Must(template.New("chart").Parse(chartPageTmpl)),
		analysis: initial,
		version:  1,
	}
	if fi, err := os.Stat(path); err == nil {
		s.modTime = fi.ModTime()
	}
	return s
}

// Start blocks, serving the chart until the process exits.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/analysis", s.handleAnalysis)
	mux.HandleFunc("/api/line-context", s.handleLineContext)
	mux.HandleFunc("/ws", s.handleWS)

	go s.watchFile()

	fmt.Printf("Serving chart at http://%s\n", s.cfg.ListenAddr)
	return http.ListenAndServe(s.cfg.ListenAddr, mux)
}

// watchFile polls the input file's mtime and re-runs the pipeline on change.
// A file that turns malformed keeps the last good analysis on screen and
// records the error for the API.
func (s *Server) watchFile() {
	interval := time.Duration(s.cfg.RefreshSeconds) * time.Second
	for {
		time.Sleep(interval)
		fi, err := os.Stat(s.path)
		if err != nil {
			continue
		}
		s.mu.RLock()
		unchanged := fi.ModTime().Equal(s.modTime)
		s.mu.RUnlock()
		if unchanged {
			continue
		}

		a, err := gantt.AnalyzeFile(s.path, s.mode, s.cfg.PaletteColors())
		s.mu.Lock()
		s.modTime = fi.ModTime()
		if err != nil {
			s.lastErr = err.Error()
			log.Printf("re-analyze %s: %v", s.path, err)
		} else {
			s.analysis = a
			s.lastErr = ""
			s.version++
		}
		s.mu.Unlock()
	}
}

func (s *Server) snapshot() (*model.Analysis, int64, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analysis, s.version, s.lastErr
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	a, _, _ := s.snapshot()
	view := buildChartView(a, s.cfg)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, view); err != nil {
		log.Printf("render chart: %v", err)
	}
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	a, version, lastErr := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":  version,
		"error":    lastErr,
		"analysis": a,
	})
}

// handleLineContext shows the input rows behind a violation.
func (s *Server) handleLineContext(w http.ResponseWriter, r *http.Request) {
	line, err := strconv.Atoi(r.URL.Query().Get("line"))
	if err != nil || line < 1 {
		http.Error(w, "line parameter required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, model.GetLineContext(s.path, line))
}

// handleWS holds the connection open and sends one message per change; the
// page reloads itself on receipt.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	_, lastSeen, _ := s.snapshot()
	ticker := time.NewTicker(time.Duration(s.cfg.RefreshSeconds) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_, version, _ := s.snapshot()
			if version == lastSeen {
				continue
			}
			lastSeen = version
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(map[string]any{"version": version}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
