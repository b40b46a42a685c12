package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskstack/api/internal/core/ports"
)

func NewHandler(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	userHandler *UserHandler,
	tokens ports.TokenService,
	users ports.UserService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/token", authHandler.Login)
		r.Post("/token/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens, users))

			r.Get("/users/me", userHandler.GetMe)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.ListTasks)
				r.Post("/", taskHandler.CreateTask)
				r.Get("/{id}", taskHandler.GetTask)
				r.Put("/{id}", taskHandler.UpdateTask)
				r.Patch("/{id}", taskHandler.UpdateTask)
				r.Delete("/{id}", taskHandler.DeleteTask)
			})
		})
	})

	return r
}
