package catalog

import (
	"context"
	"strings"
	"sync"

	"aethra/internal/logger"
	"aethra/internal/models"

	"go.uber.org/zap"
)

// Состояния рабочей копии списка авторов.
type SyncState int

const (
	StateClean SyncState = iota
	StateDirty
	StateSyncing
)

func (s SyncState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	case StateSyncing:
		return "syncing"
	}
	return "unknown"
}

// AuthorshipList — рабочая копия списка авторов одной статьи.
// Каждая мутация отправляет коллаборатору весь список целиком;
// порядок определяется позицией элемента. При отказе коллаборатора
// копия откатывается к снимку до мутации, а вызвавший получает SyncError.
// Записи сериализуются мьютексом: вторая мутация ждёт завершения первой.
type AuthorshipList struct {
	mu        sync.Mutex
	collab    Collaborator
	articleID int64
	entries   []models.Authorship
	state     SyncState
}

// NewAuthorshipList оборачивает сохранённый список авторов статьи.
// initial приходит от коллаборатора уже в порядке author_order.
func NewAuthorshipList(collab Collaborator, articleID int64, initial []models.Authorship) *AuthorshipList {
	entries := make([]models.Authorship, len(initial))
	copy(entries, initial)
	return &AuthorshipList{collab: collab, articleID: articleID, entries: entries, state: StateClean}
}

// Entries возвращает копию рабочего списка в текущем порядке.
func (l *AuthorshipList) Entries() []models.Authorship {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Authorship, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *AuthorshipList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// State сообщает состояние синхронизации: clean после подтверждённой
// записи, dirty после отказа, syncing внутри отправки.
func (l *AuthorshipList) State() SyncState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func validateAuthorFields(f models.AuthorFields) error {
	if strings.TrimSpace(f.FirstName) == "" {
		return &ValidationError{Field: "first_name", Msg: "имя автора обязательно"}
	}
	if strings.TrimSpace(f.LastName) == "" {
		return &ValidationError{Field: "last_name", Msg: "фамилия автора обязательна"}
	}
	return nil
}

// Add создаёт глобальную карточку автора у коллаборатора и добавляет
// его в конец списка. Имя и фамилия обязательны.
func (l *AuthorshipList) Add(ctx context.Context, fields models.AuthorFields, isCorresponding bool, contribution string) error {
	if err := validateAuthorFields(fields); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	author, err := l.collab.CreateAuthor(ctx, fields)
	if err != nil {
		return &SyncError{Op: "создания автора", Err: err}
	}

	snapshot := l.snapshot()
	l.entries = append(l.entries, models.Authorship{
		ArticleID:          l.articleID,
		AuthorID:           author.ID,
		IsCorresponding:    isCorresponding,
		AuthorContribution: contribution,
		Author:             *author,
	})
	return l.sync(ctx, snapshot)
}

// AddExisting привязывает уже существующего автора в конец списка.
func (l *AuthorshipList) AddExisting(ctx context.Context, author models.Author, isCorresponding bool, contribution string) error {
	if strings.TrimSpace(author.FirstName) == "" {
		return &ValidationError{Field: "first_name", Msg: "имя автора обязательно"}
	}
	if strings.TrimSpace(author.LastName) == "" {
		return &ValidationError{Field: "last_name", Msg: "фамилия автора обязательна"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.AuthorID == author.ID {
			return &ValidationError{Field: "author_id", Msg: "автор уже в списке"}
		}
	}

	snapshot := l.snapshot()
	l.entries = append(l.entries, models.Authorship{
		ArticleID:          l.articleID,
		AuthorID:           author.ID,
		IsCorresponding:    isCorresponding,
		AuthorContribution: contribution,
		Author:             author,
	})
	return l.sync(ctx, snapshot)
}

// Edit правит глобальную карточку автора записи index вместе с признаками
// связи. Карточка сначала обновляется у коллаборатора (правка видна во всех
// статьях автора и при отказе синхронизации списка не откатывается), затем
// обновляется снимок записи и список отправляется целиком.
func (l *AuthorshipList) Edit(ctx context.Context, index int, fields models.AuthorFields, isCorresponding bool, contribution string) error {
	if err := validateAuthorFields(fields); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.entries) {
		return &ValidationError{Field: "index", Msg: "записи с таким номером нет в списке"}
	}

	author, err := l.collab.UpdateAuthor(ctx, l.entries[index].AuthorID, fields)
	if err != nil {
		return &SyncError{Op: "обновления автора", Err: err}
	}

	snapshot := l.snapshot()
	l.entries[index].Author = *author
	l.entries[index].IsCorresponding = isCorresponding
	l.entries[index].AuthorContribution = contribution
	return l.sync(ctx, snapshot)
}

// Remove удаляет запись index; оставшиеся записи смыкаются,
// порядок перенумеровывается при отправке.
func (l *AuthorshipList) Remove(ctx context.Context, index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.entries) {
		return &ValidationError{Field: "index", Msg: "записи с таким номером нет в списке"}
	}

	snapshot := l.snapshot()
	l.entries = append(l.entries[:index:index], l.entries[index+1:]...)
	return l.sync(ctx, snapshot)
}

func (l *AuthorshipList) snapshot() []models.Authorship {
	s := make([]models.Authorship, len(l.entries))
	copy(s, l.entries)
	return s
}

// sync отправляет весь список с author_order по позиции. Вызывается
// под мьютексом; при отказе рабочая копия откатывается к снимку.
func (l *AuthorshipList) sync(ctx context.Context, snapshot []models.Authorship) error {
	l.state = StateSyncing

	payload := make([]models.AuthorshipEntry, len(l.entries))
	for i, e := range l.entries {
		payload[i] = models.AuthorshipEntry{
			AuthorID:           e.AuthorID,
			AuthorOrder:        i + 1,
			IsCorresponding:    e.IsCorresponding,
			AuthorContribution: e.AuthorContribution,
		}
	}

	saved, err := l.collab.ReplaceArticleAuthorship(ctx, l.articleID, payload)
	if err != nil {
		l.entries = snapshot
		l.state = StateDirty
		logger.WithCtx(ctx).Warn("Замена авторов отклонена, список откатан",
			zap.Int64("article_id", l.articleID),
			zap.Error(err))
		return &SyncError{Op: "списка авторов", Err: err}
	}

	l.entries = saved
	l.state = StateClean
	return nil
}
