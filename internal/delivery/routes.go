package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hVideo *VideoHandler) {

	r.Route("/api/videos", func(r chi.Router) {
		r.Get("/", hVideo.List)
		r.Get("/category/{category}", hVideo.ListByCategory)
		r.Get("/{id}", hVideo.GetByID)
		r.Post("/", hVideo.Create)
		r.Delete("/{id}", hVideo.Delete)
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "Catalog API is running!")
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route not found")
	})
}

// Recoverer прячет панику обработчика за общим 500-ответом.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeMessage(w, http.StatusInternalServerError, "Something went wrong!")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
