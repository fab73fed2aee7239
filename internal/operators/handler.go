package operators

import (
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Route is the path the handler is mounted on.
const Route = "/@operators"

// ServeHTTP answers GET requests with the batched operator list.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")

		return
	}

	q := r.URL.Query()

	items, err := s.Items(r.Context(), q.Get("group"))
	if err != nil {
		s.logger.Error("operator lookup failed", zap.String("group", q.Get("group")), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "operator lookup failed")

		return
	}

	resp := parseBatch(q).build(canonicalURL(r), items)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("failed to write operator response", zap.Error(err))
	}
}

// canonicalURL is the absolute request URL without batching parameters.
func canonicalURL(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}

	u := &url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}

	q := r.URL.Query()
	q.Del("b_start")
	q.Del("b_size")
	u.RawQuery = q.Encode()

	return u
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":    http.StatusText(status),
		"message": msg,
	})
}
