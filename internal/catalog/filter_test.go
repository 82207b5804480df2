package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"aethra/internal/models"
)

// Мок-коллаборатор (заглушка)
type mockCollaborator struct {
	mu sync.Mutex

	subjects []models.Subject
	journals map[string][]*models.Journal // ключ — slug предметной области, "" — все
	volumes  map[int][]*models.Volume
	issues   map[int][]*models.Issue

	failSubjects bool
	failJournals bool
	failVolumes  bool
	failIssues   bool

	authors      map[int]models.Author
	nextAuthorID int
	createErr    error
	createCalls  int
	updateErr    error
	updateCalls  int
	replaceErr   error
	replaceCalls int
	lastReplace  []models.AuthorshipEntry
}

func (m *mockCollaborator) ListSubjects(_ context.Context) ([]models.Subject, error) {
	if m.failSubjects {
		return nil, errors.New("сеть недоступна")
	}
	return m.subjects, nil
}

func (m *mockCollaborator) ListJournals(_ context.Context, f models.JournalFilter) ([]*models.Journal, error) {
	if m.failJournals {
		return nil, errors.New("сеть недоступна")
	}
	return m.journals[f.SubjectSlug], nil
}

func (m *mockCollaborator) ListVolumes(_ context.Context, journalID int) ([]*models.Volume, error) {
	if m.failVolumes {
		return nil, errors.New("сеть недоступна")
	}
	return m.volumes[journalID], nil
}

func (m *mockCollaborator) ListIssues(_ context.Context, volumeID int) ([]*models.Issue, error) {
	if m.failIssues {
		return nil, errors.New("сеть недоступна")
	}
	return m.issues[volumeID], nil
}

func (m *mockCollaborator) ListArticles(_ context.Context, _ models.ArticleFilter) ([]*models.Article, error) {
	return nil, nil
}

func (m *mockCollaborator) CreateAuthor(_ context.Context, fields models.AuthorFields) (*models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextAuthorID++
	a := models.Author{
		ID:        m.nextAuthorID,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		FullName:  fields.FirstName + " " + fields.LastName,
		Email:     fields.Email,
	}
	if m.authors == nil {
		m.authors = map[int]models.Author{}
	}
	m.authors[a.ID] = a
	return &a, nil
}

func (m *mockCollaborator) UpdateAuthor(_ context.Context, id int, fields models.AuthorFields) (*models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updateCalls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	a := models.Author{
		ID:        id,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		FullName:  fields.FirstName + " " + fields.LastName,
		Email:     fields.Email,
	}
	if m.authors == nil {
		m.authors = map[int]models.Author{}
	}
	m.authors[id] = a
	return &a, nil
}

func (m *mockCollaborator) ReplaceArticleAuthorship(_ context.Context, articleID int64, entries []models.AuthorshipEntry) ([]models.Authorship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.replaceCalls++
	m.lastReplace = append([]models.AuthorshipEntry(nil), entries...)
	if m.replaceErr != nil {
		return nil, m.replaceErr
	}

	saved := make([]models.Authorship, len(entries))
	for i, e := range entries {
		saved[i] = models.Authorship{
			ArticleID:          articleID,
			AuthorID:           e.AuthorID,
			AuthorOrder:        e.AuthorOrder,
			IsCorresponding:    e.IsCorresponding,
			AuthorContribution: e.AuthorContribution,
			Author:             m.authors[e.AuthorID],
		}
	}
	return saved, nil
}

func newFilterMock() *mockCollaborator {
	medicine := models.Subject{ID: 1, Name: "Medicine", Slug: "medicine"}
	biology := models.Subject{ID: 2, Name: "Biology", Slug: "biology"}
	actaMedica := &models.Journal{ID: 1, Title: "Acta Medica", Slug: "acta-medica",
		Subjects: []models.Subject{medicine, biology}}
	bioLetters := &models.Journal{ID: 2, Title: "BioLetters", Slug: "bioletters",
		Subjects: []models.Subject{biology}}

	return &mockCollaborator{
		subjects: []models.Subject{medicine, biology},
		journals: map[string][]*models.Journal{
			"":         {actaMedica, bioLetters},
			"medicine": {actaMedica},
		},
		volumes: map[int][]*models.Volume{
			1: {{ID: 10, JournalID: 1, VolumeNumber: 1}, {ID: 11, JournalID: 1, VolumeNumber: 2}},
		},
		issues: map[int][]*models.Issue{
			10: {{ID: 100, VolumeID: 10, Number: 1}},
		},
	}
}

func TestFilterChain_Load(t *testing.T) {
	fc := NewFilterChain(newFilterMock())

	if err := fc.Load(context.Background()); err != nil {
		t.Fatalf("ошибка начальной загрузки: %v", err)
	}
	if len(fc.Subjects()) != 2 {
		t.Fatalf("ожидалось 2 предметные области, получено %d", len(fc.Subjects()))
	}
	if len(fc.Journals()) != 2 {
		t.Fatalf("ожидалось 2 журнала без фильтра, получено %d", len(fc.Journals()))
	}
	if fc.Enabled(LevelVolume) || fc.Enabled(LevelIssue) {
		t.Fatal("уровни тома и выпуска должны быть выключены, пока не выбран родитель")
	}
}

func TestFilterChain_SelectJournalLoadsDescendants(t *testing.T) {
	fc := NewFilterChain(newFilterMock())
	ctx := context.Background()

	if err := fc.Load(ctx); err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}
	if err := fc.SelectJournal(ctx, 1); err != nil {
		t.Fatalf("ошибка выбора журнала: %v", err)
	}
	if !fc.Enabled(LevelVolume) {
		t.Fatal("после выбора журнала уровень тома должен стать доступен")
	}
	if len(fc.Volumes()) != 2 {
		t.Fatalf("ожидалось 2 тома, получено %d", len(fc.Volumes()))
	}

	if err := fc.SelectVolume(ctx, 10); err != nil {
		t.Fatalf("ошибка выбора тома: %v", err)
	}
	if !fc.Enabled(LevelIssue) {
		t.Fatal("после выбора тома уровень выпуска должен стать доступен")
	}
	if len(fc.Issues()) != 1 {
		t.Fatalf("ожидался 1 выпуск, получено %d", len(fc.Issues()))
	}
}

func TestFilterChain_SelectSubjectResetsBelow(t *testing.T) {
	fc := NewFilterChain(newFilterMock())
	ctx := context.Background()

	if err := fc.Load(ctx); err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}
	if err := fc.SelectJournal(ctx, 1); err != nil {
		t.Fatalf("ошибка выбора журнала: %v", err)
	}
	if err := fc.SelectVolume(ctx, 10); err != nil {
		t.Fatalf("ошибка выбора тома: %v", err)
	}
	fc.SelectIssue(100)

	if err := fc.SelectSubject(ctx, "medicine"); err != nil {
		t.Fatalf("ошибка выбора предметной области: %v", err)
	}

	if fc.SelectedJournal() != 0 || fc.SelectedVolume() != 0 || fc.SelectedIssue() != 0 {
		t.Fatal("выбор предметной области должен сбросить выборы всех уровней ниже")
	}
	if fc.Volumes() != nil || fc.Issues() != nil {
		t.Fatal("списки томов и выпусков должны быть очищены")
	}
	if fc.Enabled(LevelVolume) || fc.Enabled(LevelIssue) {
		t.Fatal("уровни ниже журнала должны быть выключены после сброса")
	}
	if len(fc.Journals()) != 1 {
		t.Fatalf("журналы должны быть перечитаны с фильтром, получено %d", len(fc.Journals()))
	}
}

func TestFilterChain_SubjectFilterIsMembershipTest(t *testing.T) {
	fc := NewFilterChain(newFilterMock())
	ctx := context.Background()

	if err := fc.Load(ctx); err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}
	if err := fc.SelectSubject(ctx, "medicine"); err != nil {
		t.Fatalf("ошибка выбора предметной области: %v", err)
	}

	// связь many-to-many: каждый журнал в выдаче обязан нести выбранную область
	for _, j := range fc.Journals() {
		if !j.HasSubject("medicine") {
			t.Fatalf("журнал %q не принадлежит выбранной предметной области", j.Slug)
		}
	}

	if err := fc.SelectSubject(ctx, ""); err != nil {
		t.Fatalf("ошибка сброса предметной области: %v", err)
	}
	var multi *models.Journal
	for _, j := range fc.Journals() {
		if j.HasSubject("medicine") && j.HasSubject("biology") {
			multi = j
		}
	}
	if multi == nil {
		t.Fatal("журнал может принадлежать нескольким предметным областям одновременно")
	}
}

func TestFilterChain_ClearJournalDisablesDescendants(t *testing.T) {
	fc := NewFilterChain(newFilterMock())
	ctx := context.Background()

	if err := fc.Load(ctx); err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}
	if err := fc.SelectJournal(ctx, 1); err != nil {
		t.Fatalf("ошибка выбора журнала: %v", err)
	}
	if err := fc.SelectVolume(ctx, 10); err != nil {
		t.Fatalf("ошибка выбора тома: %v", err)
	}

	if err := fc.SelectJournal(ctx, 0); err != nil {
		t.Fatalf("сброс журнала не должен возвращать ошибку: %v", err)
	}
	if fc.SelectedVolume() != 0 {
		t.Fatal("сброс журнала должен сбросить выбранный том")
	}
	if fc.Enabled(LevelVolume) || fc.Enabled(LevelIssue) {
		t.Fatal("после сброса журнала уровни тома и выпуска должны быть выключены")
	}
}

func TestFilterChain_VolumesFetchFailure(t *testing.T) {
	mock := newFilterMock()
	mock.failVolumes = true
	fc := NewFilterChain(mock)
	ctx := context.Background()

	if err := fc.Load(ctx); err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}

	err := fc.SelectJournal(ctx, 1)
	if err == nil {
		t.Fatal("ожидалась ошибка при отказе загрузки томов")
	}
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("ожидалась SyncError, получено %T: %v", err, err)
	}
	if fc.Enabled(LevelVolume) {
		t.Fatal("уровень тома должен остаться выключенным после отказа загрузки")
	}
	if len(fc.Volumes()) != 0 {
		t.Fatal("список томов должен быть пустым после отказа загрузки")
	}
	if fc.SelectedJournal() != 1 {
		t.Fatal("выбор журнала сохраняется даже при отказе загрузки детей")
	}
}

func TestFilterChain_ArticleFilter(t *testing.T) {
	fc := NewFilterChain(newFilterMock())
	ctx := context.Background()

	if err := fc.Load(ctx); err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}
	if err := fc.SelectJournal(ctx, 1); err != nil {
		t.Fatalf("ошибка выбора журнала: %v", err)
	}
	if err := fc.SelectVolume(ctx, 10); err != nil {
		t.Fatalf("ошибка выбора тома: %v", err)
	}
	fc.SelectIssue(100)

	f := fc.ArticleFilter()
	if f.JournalID == nil || *f.JournalID != 1 {
		t.Fatalf("ожидался journal_id=1, получено %v", f.JournalID)
	}
	if f.VolumeID == nil || *f.VolumeID != 10 {
		t.Fatalf("ожидался volume_id=10, получено %v", f.VolumeID)
	}
	if f.IssueID == nil || *f.IssueID != 100 {
		t.Fatalf("ожидался issue_id=100, получено %v", f.IssueID)
	}

	fc.SelectIssue(0)
	if f := fc.ArticleFilter(); f.IssueID != nil {
		t.Fatalf("сброшенный выпуск не должен попадать в фильтр, получено %v", f.IssueID)
	}
}

func TestFilterChain_LoadFailure(t *testing.T) {
	mock := newFilterMock()
	mock.failSubjects = true
	fc := NewFilterChain(mock)

	err := fc.Load(context.Background())
	if err == nil {
		t.Fatal("ожидалась ошибка при отказе загрузки предметных областей")
	}
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("ожидалась SyncError, получено %T", err)
	}
	if fc.Enabled(LevelSubject) {
		t.Fatal("уровень предметной области должен быть выключен после отказа")
	}
}

// проверка, что мок удовлетворяет интерфейсу
var _ Collaborator = (*mockCollaborator)(nil)
