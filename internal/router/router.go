package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/chat"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/exam-ai-app/backend/internal/exam"
	"github.com/exam-ai-app/backend/internal/history"
	"github.com/exam-ai-app/backend/internal/middlewares"
	"github.com/exam-ai-app/backend/internal/questions"
	"github.com/exam-ai-app/backend/internal/subjects"
	"github.com/exam-ai-app/backend/internal/superadmin"
	"github.com/exam-ai-app/backend/internal/upload"
	"github.com/exam-ai-app/backend/internal/user"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	ExamHandler       *exam.Handler
	QuestionsHandler  *questions.Handler
	ChatHandler       *chat.Handler
	HistoryHandler    *history.Handler
	UploadHandler     *upload.Handler
	SubjectsHandler   *subjects.Handler
	SuperadminHandler *superadmin.Handler
	OAuthHandler      *drive.OAuthHandler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// server-side Drive consent flow, no user token involved
	drive.OAuthRoutes(r, cfg.OAuthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", user.Routes(cfg.UserHandler, auth.NewHandler()))

		// open prompt endpoint, no session logging tied to a user
		r.Post("/gemini/generate-raw", cfg.QuestionsHandler.Raw)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/subjects", subjects.Routes(cfg.SubjectsHandler))
			r.Mount("/gemini", questions.Routes(cfg.QuestionsHandler))
			r.Mount("/exams", exam.Routes(cfg.ExamHandler))
			r.Mount("/ai/study", chat.StudyRoutes(cfg.ChatHandler))
			r.Mount("/ai/mentor", chat.MentorRoutes(cfg.ChatHandler))
			r.Mount("/history", history.Routes(cfg.HistoryHandler))
			r.Mount("/upload", upload.Routes(cfg.UploadHandler))
			r.Mount("/superadmin", superadmin.Routes(cfg.SuperadminHandler))
		})
	})
	return r
}
