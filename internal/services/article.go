package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"aethra/internal/logger"
	"aethra/internal/models"
	"aethra/internal/repository"
	"aethra/internal/utils"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

var articleTypes = map[string]bool{
	models.TypeResearch:           true,
	models.TypeReview:             true,
	models.TypeCaseReport:         true,
	models.TypeShortCommunication: true,
	models.TypeLetter:             true,
	models.TypeEditorial:          true,
	models.TypeOther:              true,
}

// Узкие интерфейсы зависимостей: сервису от соседних репозиториев
// нужны только проверки существования.
type JournalGetter interface {
	GetByID(ctx context.Context, id int) (*models.Journal, error)
}

type IssueChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type ArticleService struct {
	repo     repository.ArticleRepo
	authors  repository.AuthorRepo
	journals JournalGetter
	issues   IssueChecker
	policy   *bluemonday.Policy
}

func NewArticleService(
	repo repository.ArticleRepo,
	authors repository.AuthorRepo,
	journals JournalGetter,
	issues IssueChecker,
) *ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("sub", "sup")
	return &ArticleService{repo: repo, authors: authors, journals: journals, issues: issues, policy: p}
}

func (s *ArticleService) Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи",
		zap.Int("journal_id", req.JournalID),
		zap.String("title", strings.TrimSpace(req.Title)),
	)

	title := strings.TrimSpace(req.Title)
	if l := utf8.RuneCountInString(title); l < 3 || l > 500 {
		err := errors.New("длина заголовка должна быть от 3 до 500 символов")
		log.Warn("Валидация не пройдена: заголовок", zap.Int("runes", l), zap.Error(err))
		return nil, err
	}
	if _, err := s.journals.GetByID(ctx, req.JournalID); err != nil {
		log.Warn("Журнал не найден", zap.Int("journal_id", req.JournalID), zap.Error(err))
		return nil, errors.New("журнал не найден")
	}
	if req.IssueID != nil {
		if ok, err := s.issues.Exists(ctx, *req.IssueID); err != nil {
			return nil, err
		} else if !ok {
			return nil, errors.New("выпуск не найден")
		}
	}
	articleType := req.ArticleType
	if articleType == "" {
		articleType = models.TypeResearch
	}
	if !articleTypes[articleType] {
		return nil, errors.New("неизвестный тип статьи")
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		// уникальность обеспечивается случайным суффиксом
		slug = utils.UniqueSlug(title)
	}

	a := &models.Article{
		JournalID:      req.JournalID,
		Slug:           slug,
		Title:          title,
		DOI:            strings.TrimSpace(req.DOI),
		ArticleType:    articleType,
		Status:         models.StatusDraft,
		Abstract:       s.policy.Sanitize(req.Abstract),
		Keywords:       req.Keywords,
		PageStart:      req.PageStart,
		PageEnd:        req.PageEnd,
		IsOpenAccess:   boolOrDefault(req.IsOpenAccess, true),
		IsSpecialIssue: boolOrDefault(req.IsSpecialIssue, false),
		IsFeatured:     boolOrDefault(req.IsFeatured, false),
		PDFFile:        req.PDFFile,
		XMLFile:        req.XMLFile,
		EPubFile:       req.EPubFile,
		MobiFile:       req.MobiFile,
		PRCFile:        req.PRCFile,
	}

	created, err := s.repo.Create(ctx, a, req.IssueID)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}
	log.Info("Статья создана", zap.Int64("id", created.ID), zap.String("slug", created.Slug))
	return s.withAuthors(ctx, created)
}

func (s *ArticleService) List(ctx context.Context, f models.ArticleFilter, onlyPublished bool) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка статей",
		zap.Any("journal_id", f.JournalID),
		zap.Any("volume_id", f.VolumeID),
		zap.Any("issue_id", f.IssueID),
		zap.String("ordering", f.Ordering),
		zap.Bool("only_published", onlyPublished),
	)

	list, err := s.repo.List(ctx, f, onlyPublished)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}
	for _, a := range list {
		authors, err := s.authors.ListByArticle(ctx, a.ID)
		if err != nil {
			log.Error("Ошибка получения авторов статьи (repo)", zap.Int64("article_id", a.ID), zap.Error(err))
			return nil, err
		}
		a.Authors = authors
	}
	return list, nil
}

func (s *ArticleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, a)
}

// GetPublicBySlug возвращает опубликованную статью и фиксирует просмотр.
func (s *ArticleService) GetPublicBySlug(ctx context.Context, journalSlug, articleSlug string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetBySlug(ctx, journalSlug, articleSlug)
	if err != nil {
		return nil, err
	}
	if a.Status != models.StatusPublished {
		return nil, errors.New("статья не опубликована")
	}
	if err := s.repo.IncrementViews(ctx, a.ID); err != nil {
		log.Warn("Не удалось зафиксировать просмотр", zap.Int64("article_id", a.ID), zap.Error(err))
	}
	return s.withAuthors(ctx, a)
}

func (s *ArticleService) Update(ctx context.Context, id int64, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		if l := utf8.RuneCountInString(title); l < 3 || l > 500 {
			return nil, errors.New("длина заголовка должна быть от 3 до 500 символов")
		}
		a.Title = title
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		a.Slug = slug
	}
	if req.IssueID != nil {
		if ok, err := s.issues.Exists(ctx, *req.IssueID); err != nil {
			return nil, err
		} else if !ok {
			return nil, errors.New("выпуск не найден")
		}
	}
	if req.ArticleType != "" {
		if !articleTypes[req.ArticleType] {
			return nil, errors.New("неизвестный тип статьи")
		}
		a.ArticleType = req.ArticleType
	}
	a.DOI = strings.TrimSpace(req.DOI)
	a.Abstract = s.policy.Sanitize(req.Abstract)
	a.Keywords = req.Keywords
	a.PageStart = req.PageStart
	a.PageEnd = req.PageEnd
	if req.IsOpenAccess != nil {
		a.IsOpenAccess = *req.IsOpenAccess
	}
	if req.IsSpecialIssue != nil {
		a.IsSpecialIssue = *req.IsSpecialIssue
	}
	if req.IsFeatured != nil {
		a.IsFeatured = *req.IsFeatured
	}
	a.PDFFile = req.PDFFile
	a.XMLFile = req.XMLFile
	a.EPubFile = req.EPubFile
	a.MobiFile = req.MobiFile
	a.PRCFile = req.PRCFile

	if err := s.repo.Update(ctx, a, req.IssueID); err != nil {
		log.Error("Ошибка обновления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Статья обновлена", zap.Int64("id", id))
	return s.GetByID(ctx, id)
}

func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}
	log.Info("Статья удалена", zap.Int64("id", id))
	return nil
}

// SetStatus переводит статью между статусами draft, published и archive.
// Публикация требует даты публикации: из запроса или уже сохранённой.
func (s *ArticleService) SetStatus(ctx context.Context, id int64, req models.SetArticleStatusRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Смена статуса статьи", zap.Int64("id", id), zap.String("status", req.Status))

	if req.Status != models.StatusDraft && req.Status != models.StatusPublished && req.Status != models.StatusArchive {
		return nil, errors.New("недопустимый статус статьи")
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var publishedDate *time.Time
	if req.Status == models.StatusPublished {
		switch {
		case req.PublishedDate != nil:
			publishedDate = req.PublishedDate
		case a.PublishedDate != nil:
			publishedDate = a.PublishedDate
		default:
			err := errors.New("для публикации требуется дата публикации")
			log.Warn("Валидация не пройдена: дата публикации", zap.Int64("id", id), zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.SetStatus(ctx, id, req.Status, publishedDate); err != nil {
		log.Error("Ошибка смены статуса (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Статус статьи изменён", zap.Int64("id", id), zap.String("status", req.Status))
	return s.GetByID(ctx, id)
}

func (s *ArticleService) SetPreface(ctx context.Context, id int64, isPreface bool) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	if ok, err := s.repo.Exists(ctx, id); err != nil {
		return nil, err
	} else if !ok {
		return nil, errors.New("статья не найдена")
	}
	if err := s.repo.SetPreface(ctx, id, isPreface); err != nil {
		log.Error("Ошибка установки признака предисловия (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	log.Info("Признак предисловия изменён", zap.Int64("id", id), zap.Bool("is_preface", isPreface))
	return s.GetByID(ctx, id)
}

// ResolveDownload возвращает путь файла для форматов pdf и xml,
// которые раздаются через API, и фиксирует скачивание.
// Пустое поле файла означает, что формат недоступен.
func (s *ArticleService) ResolveDownload(ctx context.Context, journalSlug, articleSlug, format string) (string, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetBySlug(ctx, journalSlug, articleSlug)
	if err != nil {
		return "", err
	}
	if a.Status != models.StatusPublished {
		return "", errors.New("статья не опубликована")
	}

	var file string
	switch format {
	case "pdf":
		file = a.PDFFile
	case "xml":
		file = a.XMLFile
	default:
		return "", errors.New("формат недоступен для скачивания через API")
	}
	if file == "" {
		return "", errors.New("файл не загружен")
	}

	if err := s.repo.IncrementDownloads(ctx, a.ID); err != nil {
		log.Warn("Не удалось зафиксировать скачивание", zap.Int64("article_id", a.ID), zap.Error(err))
	}
	return file, nil
}

func (s *ArticleService) withAuthors(ctx context.Context, a *models.Article) (*models.Article, error) {
	authors, err := s.authors.ListByArticle(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Authors = authors
	return a, nil
}
