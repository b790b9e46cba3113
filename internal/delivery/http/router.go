package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"slidedeck/internal/delivery/http/controllers"
	"slidedeck/internal/delivery/http/middleware"
	"slidedeck/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes. Every
// API route runs behind the bearer-token auth wrapper; swagger does not.
func NewRouter(
	presentationController *controllers.PresentationController,
	slideController *controllers.SlideController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Presentations
	mux.HandleFunc("POST /presentations", auth(presentationController.CreatePresentation))
	mux.HandleFunc("GET /presentations", auth(presentationController.ListPresentations))
	mux.HandleFunc("PATCH /presentations/{presentationID}", auth(presentationController.UpdatePresentation))
	mux.HandleFunc("POST /presentations/{presentationID}/share", auth(presentationController.SharePresentation))

	// Slides
	mux.HandleFunc("POST /presentations/{presentationID}/slides", auth(slideController.CreateSlide))
	mux.HandleFunc("GET /presentations/{presentationID}/slides", auth(slideController.ListSlides))
	mux.HandleFunc("PATCH /presentations/{presentationID}/slides/{slideID}", auth(slideController.UpdateSlide))
	mux.HandleFunc("DELETE /presentations/{presentationID}/slides/{slideID}", auth(slideController.DeleteSlide))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
