package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"poapregistry/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes. requireAuth guards the
// state-changing routes; metrics serves /metrics.
func NewRouter(
	contractController *controllers.ContractController,
	authController *controllers.AuthController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
	metrics http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Commands
	mux.HandleFunc("POST /events", requireAuth(contractController.RegisterEvent))
	mux.HandleFunc("POST /events/{name}/badges", requireAuth(contractController.MintBadge))

	// Queries
	mux.HandleFunc("GET /events/{name}", contractController.GetEvent)
	mux.HandleFunc("GET /events/{name}/badges/{attendee}", contractController.GetBadge)
	mux.HandleFunc("GET /attendees/{attendee}/badges/{name}", contractController.GetAttendeeBadge)
	mux.HandleFunc("GET /count", contractController.GetCount)

	// Auth
	mux.HandleFunc("POST /auth/token", authController.IssueToken)

	mux.Handle("GET /metrics", metrics)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
