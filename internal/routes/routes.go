package routes

import (
	"aethra/internal/handlers"
	"aethra/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	journalHandler *handlers.JournalHandler,
	volumeHandler *handlers.VolumeHandler,
	articleHandler *handlers.ArticleHandler,
	authorHandler *handlers.AuthorHandler,
	announcementHandler *handlers.AnnouncementHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api/v1").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")

	api.HandleFunc("/subjects", journalHandler.ListSubjects).Methods("GET")
	api.HandleFunc("/journals", journalHandler.ListJournals).Methods("GET")
	api.HandleFunc("/journals/by-slug/{slug}", journalHandler.GetJournal).Methods("GET")

	api.HandleFunc("/volumes", volumeHandler.ListVolumes).Methods("GET")
	api.HandleFunc("/issues", volumeHandler.ListIssues).Methods("GET")

	api.HandleFunc("/articles", articleHandler.ListArticles).Methods("GET")
	api.HandleFunc("/articles/by-journal/{journal_slug}/{article_slug}", articleHandler.GetArticle).Methods("GET")
	// pdf и xml раздаются через API; epub/mobi/prc — прямые ссылки
	api.HandleFunc("/articles/by-journal/{journal_slug}/{article_slug}/{format:pdf|xml}", articleHandler.DownloadArticle).Methods("GET")

	api.HandleFunc("/announcements", announcementHandler.ListAnnouncements).Methods("GET")
	api.HandleFunc("/announcements/{slug}", announcementHandler.GetAnnouncement).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret))

	protected.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole("admin"))

	admin.HandleFunc("/subjects", journalHandler.CreateSubject).Methods("POST")
	admin.HandleFunc("/subjects/{id:[0-9]+}", journalHandler.UpdateSubject).Methods("PUT")
	admin.HandleFunc("/subjects/{id:[0-9]+}", journalHandler.DeleteSubject).Methods("DELETE")

	admin.HandleFunc("/journals", journalHandler.CreateJournal).Methods("POST")
	admin.HandleFunc("/journals/{id:[0-9]+}", journalHandler.UpdateJournal).Methods("PUT")
	admin.HandleFunc("/journals/{id:[0-9]+}", journalHandler.DeleteJournal).Methods("DELETE")

	admin.HandleFunc("/volumes", volumeHandler.CreateVolume).Methods("POST")
	admin.HandleFunc("/volumes/{id:[0-9]+}", volumeHandler.UpdateVolume).Methods("PUT")
	admin.HandleFunc("/volumes/{id:[0-9]+}", volumeHandler.DeleteVolume).Methods("DELETE")

	admin.HandleFunc("/issues", volumeHandler.CreateIssue).Methods("POST")
	admin.HandleFunc("/issues/{id:[0-9]+}", volumeHandler.UpdateIssue).Methods("PUT")
	admin.HandleFunc("/issues/{id:[0-9]+}", volumeHandler.DeleteIssue).Methods("DELETE")

	admin.HandleFunc("/articles", articleHandler.AdminListArticles).Methods("GET")
	admin.HandleFunc("/articles", articleHandler.CreateArticle).Methods("POST")
	admin.HandleFunc("/articles/{id:[0-9]+}", articleHandler.AdminGetArticle).Methods("GET")
	admin.HandleFunc("/articles/{id:[0-9]+}", articleHandler.UpdateArticle).Methods("PUT")
	admin.HandleFunc("/articles/{id:[0-9]+}", articleHandler.DeleteArticle).Methods("DELETE")
	admin.HandleFunc("/articles/{id:[0-9]+}/publish", articleHandler.SetArticleStatus).Methods("PATCH")
	admin.HandleFunc("/articles/{id:[0-9]+}/preface", articleHandler.SetArticlePreface).Methods("PATCH")

	// список авторов статьи заменяется целиком одним PUT
	admin.HandleFunc("/articles/{id:[0-9]+}/authors", authorHandler.ListArticleAuthors).Methods("GET")
	admin.HandleFunc("/articles/{id:[0-9]+}/authors", authorHandler.ReplaceArticleAuthors).Methods("PUT")

	admin.HandleFunc("/authors", authorHandler.ListAuthors).Methods("GET")
	admin.HandleFunc("/authors", authorHandler.CreateAuthor).Methods("POST")
	admin.HandleFunc("/authors/{id:[0-9]+}", authorHandler.GetAuthor).Methods("GET")
	admin.HandleFunc("/authors/{id:[0-9]+}", authorHandler.UpdateAuthor).Methods("PATCH")
	admin.HandleFunc("/authors/{id:[0-9]+}", authorHandler.DeleteAuthor).Methods("DELETE")

	admin.HandleFunc("/announcements", announcementHandler.CreateAnnouncement).Methods("POST")
	admin.HandleFunc("/announcements/{slug}", announcementHandler.UpdateAnnouncement).Methods("PUT")
	admin.HandleFunc("/announcements/{id:[0-9]+}", announcementHandler.DeleteAnnouncement).Methods("DELETE")
}
