package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/HaploAW/Courseplay-FS22/pkg/course"
	"github.com/HaploAW/Courseplay-FS22/pkg/field"
	"github.com/HaploAW/Courseplay-FS22/pkg/validation"
)

// Server is the local development server for inspecting generated courses.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/course", s.handleCourse)
	mux.HandleFunc("/api/validation", s.handleValidation)
	mux.HandleFunc("/api/spec", s.handleSpec)
	mux.HandleFunc("/", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("coursegen server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>coursegen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>coursegen</h1>
<p>Renderer not yet embedded. Fetch <code>/api/course</code> for the generated waypoints.</p>
</div>
</body></html>`)
}

func (s *Server) handleCourse(w http.ResponseWriter, _ *http.Request) {
	spec, report, err := s.load()
	if err != nil {
		httpError(w, err)
		return
	}
	if !report.Valid() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}
	c, err := course.Generate(spec.ToInput())
	if err != nil {
		httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	_, report, err := s.load()
	if err != nil {
		httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	spec, _, err := s.load()
	if err != nil {
		httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spec)
}

func (s *Server) load() (*field.FieldSpec, *validation.Report, error) {
	spec, err := field.LoadProject(s.projectPath)
	if err != nil {
		return nil, nil, err
	}
	return spec, validation.ValidateSpec(spec), nil
}

func httpError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
