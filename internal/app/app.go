package app

import (
	"aethra/internal/config"
	"aethra/internal/db"
	"aethra/internal/handlers"
	"aethra/internal/repository"
	"aethra/internal/routes"
	"aethra/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepo(conn)
	subjectRepo := repository.NewSubjectRepo(conn)
	journalRepo := repository.NewJournalRepo(conn)
	volumeRepo := repository.NewVolumeRepo(conn)
	issueRepo := repository.NewIssueRepo(conn)
	articleRepo := repository.NewArticleRepo(conn)
	authorRepo := repository.NewAuthorRepo(conn)
	announcementRepo := repository.NewAnnouncementRepo(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	subjectService := services.NewSubjectService(subjectRepo)
	journalService := services.NewJournalService(journalRepo)
	volumeService := services.NewVolumeService(volumeRepo, journalRepo)
	issueService := services.NewIssueService(issueRepo, volumeRepo)
	articleService := services.NewArticleService(articleRepo, authorRepo, journalRepo, issueRepo)
	authorService := services.NewAuthorService(authorRepo, articleRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	journalHandler := handlers.NewJournalHandler(journalService, subjectService)
	volumeHandler := handlers.NewVolumeHandler(volumeService, issueService)
	articleHandler := handlers.NewArticleHandler(articleService, cfg.MediaDir)
	authorHandler := handlers.NewAuthorHandler(authorService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret,
		authHandler, journalHandler, volumeHandler, articleHandler, authorHandler, announcementHandler)

	return router, nil
}
