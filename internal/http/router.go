package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/soletrade/soletrade/internal/http/account"
	"github.com/soletrade/soletrade/internal/http/auth"
	"github.com/soletrade/soletrade/internal/http/crm"
	"github.com/soletrade/soletrade/internal/http/lead"
	"github.com/soletrade/soletrade/internal/http/order"
	"github.com/soletrade/soletrade/internal/http/quote"
	"github.com/soletrade/soletrade/internal/http/rfq"
)

func New(
	jwtSecret string,
	leadsV1 *lead.Handler,
	quotesV1 *quote.Handler,
	ordersV1 *order.Handler,
	accountsV1 *account.Handler,
	rfqV1 *rfq.Handler,
	crmV1 *crm.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/leads", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			leadsV1.Routes(r)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			quotesV1.Routes(r)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ordersV1.Routes(r)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/rfq", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			rfqV1.Routes(r)
		})

		r.Route("/crm", crmV1.Routes)
	})

	return router
}
