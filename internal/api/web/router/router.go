package router

import (
	"net/http"

	"smartdo/internal/api/web/handler"
	"smartdo/internal/api/web/middleware"
	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// Router wires handlers and middleware into the HTTP route table.
type Router struct {
	authService    handler.AuthService
	taskService    handler.TaskListService
	sessions       model.SessionStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	taskService handler.TaskListService,
	sessions model.SessionStore,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table. Task routes sit behind the session
// middleware; auth routes do not.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)

	authenticate := middleware.NewAuthenticate(r.sessions, r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	tasks := http.NewServeMux()
	tasks.HandleFunc("GET /api/tasks", taskHandler.List)
	tasks.HandleFunc("POST /api/tasks", taskHandler.Add)
	tasks.HandleFunc("POST /api/tasks/breakdown", taskHandler.Breakdown)
	tasks.HandleFunc("POST /api/tasks/{id}/toggle", taskHandler.Toggle)
	tasks.HandleFunc("DELETE /api/tasks/{id}", taskHandler.Delete)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/credential", authHandler.HandleCredential)
	mux.HandleFunc("POST /api/auth/signin", authHandler.SignIn)
	mux.HandleFunc("GET /api/auth/user", authHandler.CurrentUser)
	mux.HandleFunc("POST /api/auth/signout", authHandler.SignOut)
	mux.Handle("/api/tasks", authenticate.Handle(tasks))
	mux.Handle("/api/tasks/", authenticate.Handle(tasks))

	return logging.Handle(mux)
}
