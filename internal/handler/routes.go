package handler

import (
	"net/http"

	"github.com/webnova/backend/internal/repository"
	"github.com/webnova/backend/internal/service"
)

// Route describes one registered endpoint, for the startup banner.
type Route struct {
	Pattern     string
	Description string
}

// Routes lists every endpoint NewRouter registers.
var Routes = []Route{
	{"GET /api/health", "Health check"},
	{"POST /api/contact", "Save contact form"},
	{"GET /api/contacts", "Get all contacts"},
	{"GET /api/contact/{id}", "Get single contact"},
	{"PATCH /api/contact/{id}", "Update contact"},
	{"DELETE /api/contact/{id}", "Delete contact"},
	{"POST /api/newsletter", "Subscribe to newsletter"},
	{"GET /api/newsletter", "Get all subscribers"},
}

// RouterConfig carries what NewRouter needs to wire the API.
type RouterConfig struct {
	DB                repository.DB
	ContactService    service.ContactService
	NewsletterService service.NewsletterService
	FrontendURL       string
}

// NewRouter registers every API route and wraps the mux in the middleware
// chain: request id, request logging, security headers, CORS.
func NewRouter(cfg RouterConfig) http.Handler {
	h := New(cfg.DB, cfg.FrontendURL)
	contactHandler := NewContactHandler(cfg.ContactService)
	newsletterHandler := NewNewsletterHandler(cfg.NewsletterService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.HandleFunc("GET /api/contact/{id}", contactHandler.Get)
	mux.HandleFunc("PATCH /api/contact/{id}", contactHandler.Update)
	mux.HandleFunc("DELETE /api/contact/{id}", contactHandler.Delete)
	mux.HandleFunc("POST /api/newsletter", newsletterHandler.Subscribe)
	mux.HandleFunc("GET /api/newsletter", newsletterHandler.List)

	return RequestID(RequestLogger(SecurityHeaders(h.CORS(mux))))
}
