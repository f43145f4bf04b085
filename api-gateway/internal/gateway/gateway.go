package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	AppSvcURL       string
	AnalyticsSvcURL string
	FrontendDir     string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger logrus.FieldLogger
}

func NewGateway(config Config, client HTTPClient, logger logrus.FieldLogger) *Gateway {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log := g.logger.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"target": targetURL,
	})
	log.Debug("Proxying request")

	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.WithError(err).Error("Failed to create request")
		writeError(w, http.StatusInternalServerError, "failed to build upstream request")
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Failed to proxy request")
		writeError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Warn("Warning: failed to copy response")
	}
}

// RouteHandler sends ratings and analytics reads to analytics-svc and every
// other API call to app-svc. Non-API paths fall through to the frontend.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case hasSegmentPrefix(path, "/api/ratings"), hasSegmentPrefix(path, "/api/analytics"):
		g.ProxyRequest(w, r, g.config.AnalyticsSvcURL)
	case hasSegmentPrefix(path, "/api"):
		g.ProxyRequest(w, r, g.config.AppSvcURL)
	default:
		g.serveFrontend(w, r)
	}
}

func (g *Gateway) serveFrontend(w http.ResponseWriter, r *http.Request) {
	if g.config.FrontendDir == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	if g.config.FrontendDir != "" {
		r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	}
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func hasSegmentPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
