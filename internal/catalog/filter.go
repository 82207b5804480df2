package catalog

import (
	"context"

	"aethra/internal/logger"
	"aethra/internal/models"

	"go.uber.org/zap"
)

// Уровни каскадного фильтра. Каждый уровень сужает следующий:
// выбор родителя перечитывает список кандидатов ребёнка, сброс
// родителя выключает все уровни ниже.
type Level int

const (
	LevelSubject Level = iota
	LevelJournal
	LevelVolume
	LevelIssue
)

// FilterChain держит выбранные значения и списки кандидатов всех уровней.
// Методы не потокобезопасны: цепочка принадлежит одному экрану.
type FilterChain struct {
	collab Collaborator

	subjects []models.Subject
	journals []*models.Journal
	volumes  []*models.Volume
	issues   []*models.Issue

	subjectSlug string
	journalID   int
	volumeID    int
	issueID     int

	// выставляется, когда перечитывание списка уровня закончилось ошибкой
	failed map[Level]bool
}

func NewFilterChain(collab Collaborator) *FilterChain {
	return &FilterChain{collab: collab, failed: map[Level]bool{}}
}

// Load наполняет верхние уровни: предметные области и журналы без фильтра.
func (fc *FilterChain) Load(ctx context.Context) error {
	subjects, err := fc.collab.ListSubjects(ctx)
	if err != nil {
		fc.subjects = nil
		fc.failed[LevelSubject] = true
		return &SyncError{Op: "списка предметных областей", Err: err}
	}
	fc.subjects = subjects
	fc.failed[LevelSubject] = false

	return fc.reloadJournals(ctx)
}

func (fc *FilterChain) reloadJournals(ctx context.Context) error {
	journals, err := fc.collab.ListJournals(ctx, models.JournalFilter{SubjectSlug: fc.subjectSlug})
	if err != nil {
		fc.journals = nil
		fc.failed[LevelJournal] = true
		return &SyncError{Op: "списка журналов", Err: err}
	}
	fc.journals = journals
	fc.failed[LevelJournal] = false
	return nil
}

// SelectSubject выбирает предметную область по slug (пустая строка — сброс).
// Выборы всех уровней ниже сбрасываются, список журналов перечитывается.
func (fc *FilterChain) SelectSubject(ctx context.Context, slug string) error {
	fc.subjectSlug = slug
	fc.resetBelow(LevelSubject)

	logger.WithCtx(ctx).Debug("Фильтр: выбрана предметная область", zap.String("slug", slug))
	return fc.reloadJournals(ctx)
}

// SelectJournal выбирает журнал по id (0 — сброс).
func (fc *FilterChain) SelectJournal(ctx context.Context, id int) error {
	fc.journalID = id
	fc.resetBelow(LevelJournal)

	if id == 0 {
		return nil
	}

	volumes, err := fc.collab.ListVolumes(ctx, id)
	if err != nil {
		fc.volumes = nil
		fc.failed[LevelVolume] = true
		logger.WithCtx(ctx).Warn("Фильтр: не удалось получить тома", zap.Int("journal_id", id), zap.Error(err))
		return &SyncError{Op: "списка томов", Err: err}
	}
	fc.volumes = volumes
	fc.failed[LevelVolume] = false
	return nil
}

// SelectVolume выбирает том по id (0 — сброс).
func (fc *FilterChain) SelectVolume(ctx context.Context, id int) error {
	fc.volumeID = id
	fc.resetBelow(LevelVolume)

	if id == 0 {
		return nil
	}

	issues, err := fc.collab.ListIssues(ctx, id)
	if err != nil {
		fc.issues = nil
		fc.failed[LevelIssue] = true
		logger.WithCtx(ctx).Warn("Фильтр: не удалось получить выпуски", zap.Int("volume_id", id), zap.Error(err))
		return &SyncError{Op: "списка выпусков", Err: err}
	}
	fc.issues = issues
	fc.failed[LevelIssue] = false
	return nil
}

// SelectIssue выбирает выпуск (0 — сброс). Ниже уровней нет,
// перечитывать нечего.
func (fc *FilterChain) SelectIssue(id int) {
	fc.issueID = id
}

func (fc *FilterChain) resetBelow(level Level) {
	if level < LevelJournal {
		fc.journalID = 0
	}
	if level < LevelVolume {
		fc.volumeID = 0
		fc.volumes = nil
		fc.failed[LevelVolume] = false
	}
	if level < LevelIssue {
		fc.issueID = 0
		fc.issues = nil
		fc.failed[LevelIssue] = false
	}
}

// Enabled сообщает, доступен ли уровень для выбора: уровень выключен,
// пока не выбран родитель или пока его список не удалось получить.
func (fc *FilterChain) Enabled(level Level) bool {
	if fc.failed[level] {
		return false
	}
	switch level {
	case LevelSubject, LevelJournal:
		return true
	case LevelVolume:
		return fc.journalID != 0
	case LevelIssue:
		return fc.volumeID != 0
	}
	return false
}

func (fc *FilterChain) Subjects() []models.Subject { return fc.subjects }
func (fc *FilterChain) Journals() []*models.Journal {
	return fc.journals
}
func (fc *FilterChain) Volumes() []*models.Volume { return fc.volumes }
func (fc *FilterChain) Issues() []*models.Issue   { return fc.issues }

func (fc *FilterChain) SelectedSubject() string { return fc.subjectSlug }
func (fc *FilterChain) SelectedJournal() int    { return fc.journalID }
func (fc *FilterChain) SelectedVolume() int     { return fc.volumeID }
func (fc *FilterChain) SelectedIssue() int      { return fc.issueID }

// ArticleFilter переводит текущие выборы в параметры выборки статей.
func (fc *FilterChain) ArticleFilter() models.ArticleFilter {
	var f models.ArticleFilter
	if fc.journalID != 0 {
		id := fc.journalID
		f.JournalID = &id
	}
	if fc.volumeID != 0 {
		id := fc.volumeID
		f.VolumeID = &id
	}
	if fc.issueID != 0 {
		id := fc.issueID
		f.IssueID = &id
	}
	return f
}
