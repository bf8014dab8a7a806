package container

import (
	"context"
	"log"
	"os"

	"github.com/exam-ai-app/backend/internal/audit"
	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/chat"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/exam-ai-app/backend/internal/exam"
	"github.com/exam-ai-app/backend/internal/gemini"
	"github.com/exam-ai-app/backend/internal/history"
	"github.com/exam-ai-app/backend/internal/questions"
	"github.com/exam-ai-app/backend/internal/session"
	"github.com/exam-ai-app/backend/internal/subjects"
	"github.com/exam-ai-app/backend/internal/superadmin"
	"github.com/exam-ai-app/backend/internal/upload"
	"github.com/exam-ai-app/backend/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	ExamContainer      *exam.ExamContainer
	QuestionsContainer *questions.QuestionsContainer
	ChatContainer      *chat.ChatContainer
	HistoryContainer   *history.HistoryContainer
	UploadContainer    *upload.UploadContainer
	SubjectsHandler    *subjects.Handler
	SuperadminHandler  *superadmin.Handler
	OAuthHandler       *drive.OAuthHandler
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn,
		&user.User{},
		&exam.Attempt{},
		&chat.SessionPointer{},
		&questions.PromptLog{},
		&upload.Upload{},
		&audit.AdminAction{},
	); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	provider, err := gemini.NewProvider(context.Background())
	if err != nil {
		log.Fatalf("failed to init Gemini: %v", err)
	}

	// Drive auth is deferred to first use so the server can boot before
	// the consent flow has run.
	storage := drive.NewLazy()
	sessions := session.NewStore(storage)
	recorder := audit.NewRecorder(config.DB)

	userContainer := user.NewUserContainer(config.DB, storage)
	examContainer := exam.NewExamContainer(config.DB, storage)
	questionsContainer := questions.NewQuestionsContainer(config.DB, provider, storage)
	chatContainer := chat.NewChatContainer(config.DB, provider, sessions, storage)
	historyContainer := history.NewHistoryContainer(chatContainer.Repository, sessions)
	uploadContainer := upload.NewUploadContainer(config.DB, storage, userContainer.Repository, recorder)

	superadminHandler := superadmin.NewHandler(superadmin.NewService(userContainer.Repository, recorder))

	return &Container{
		UserContainer:      userContainer,
		ExamContainer:      examContainer,
		QuestionsContainer: questionsContainer,
		ChatContainer:      chatContainer,
		HistoryContainer:   historyContainer,
		UploadContainer:    uploadContainer,
		SubjectsHandler:    subjects.NewHandler(),
		SuperadminHandler:  superadminHandler,
		OAuthHandler:       drive.NewOAuthHandler(),
	}
}
