package server

import (
	"net/http"

	"go.uber.org/zap"

	"proxy-lattice/internal/operators"
)

// NewMux mounts the operator endpoint and a health check behind the
// middleware chain.
func NewMux(ops *operators.Service, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	mux.Handle(operators.Route, ops)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	// Outermost first.
	return CORS(RequestID(AccessLog(logger)(Recover(logger)(mux))))
}
