package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"aethra/internal/models"
)

func newAuthorshipMock() *mockCollaborator {
	return &mockCollaborator{
		authors: map[int]models.Author{
			1: {ID: 1, FirstName: "Jane", LastName: "Doe"},
			2: {ID: 2, FirstName: "John", LastName: "Smith"},
			3: {ID: 3, FirstName: "Anna", LastName: "Petrova"},
		},
		nextAuthorID: 3,
	}
}

func savedAuthorship(articleID int64, authorID, order int) models.Authorship {
	return models.Authorship{ArticleID: articleID, AuthorID: authorID, AuthorOrder: order}
}

func TestAuthorshipList_AddCreatesAuthorThenSyncs(t *testing.T) {
	mock := newAuthorshipMock()
	list := NewAuthorshipList(mock, 7, []models.Authorship{
		savedAuthorship(7, 1, 1),
		savedAuthorship(7, 2, 2),
	})

	err := list.Add(context.Background(), models.AuthorFields{
		FirstName: "Ivan",
		LastName:  "Sidorov",
		Email:     "ivan@example.edu",
	}, true, "analysis")
	if err != nil {
		t.Fatalf("ошибка добавления автора: %v", err)
	}

	if mock.createCalls != 1 {
		t.Fatalf("карточка автора должна создаваться у коллаборатора, вызовов %d", mock.createCalls)
	}
	if mock.replaceCalls != 1 {
		t.Fatalf("ожидался 1 вызов замены, получено %d", mock.replaceCalls)
	}
	if len(mock.lastReplace) != 3 {
		t.Fatalf("ожидалась отправка всего списка из 3 записей, получено %d", len(mock.lastReplace))
	}
	for i, e := range mock.lastReplace {
		if e.AuthorOrder != i+1 {
			t.Fatalf("author_order должен идти подряд с 1: позиция %d несёт %d", i, e.AuthorOrder)
		}
	}
	if mock.lastReplace[2].AuthorID != 4 || !mock.lastReplace[2].IsCorresponding {
		t.Fatal("созданный автор должен быть последним в отправленном списке")
	}

	entries := list.Entries()
	if entries[2].Author.FullName != "Ivan Sidorov" {
		t.Fatalf("запись должна нести снимок созданного автора, получено %q", entries[2].Author.FullName)
	}
	if list.State() != StateClean {
		t.Fatalf("после подтверждённой записи ожидалось состояние clean, получено %s", list.State())
	}
}

func TestAuthorshipList_AddCreateFailure(t *testing.T) {
	mock := newAuthorshipMock()
	mock.createErr = errors.New("сервер отклонил карточку")
	list := NewAuthorshipList(mock, 7, []models.Authorship{savedAuthorship(7, 1, 1)})

	err := list.Add(context.Background(), models.AuthorFields{FirstName: "Ivan", LastName: "Sidorov"}, false, "")
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("ожидалась SyncError при отказе создания карточки, получено %T: %v", err, err)
	}
	if mock.replaceCalls != 0 {
		t.Fatal("список не должен отправляться, если карточка не создана")
	}
	if list.Len() != 1 {
		t.Fatalf("список не должен измениться, ожидалась 1 запись, получено %d", list.Len())
	}
}

func TestAuthorshipList_AddRequiresName(t *testing.T) {
	mock := newAuthorshipMock()
	list := NewAuthorshipList(mock, 7, nil)

	err := list.Add(context.Background(), models.AuthorFields{LastName: "Doe"}, false, "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидалась ValidationError для пустого имени, получено %T", err)
	}

	err = list.Add(context.Background(), models.AuthorFields{FirstName: "Jane"}, false, "")
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидалась ValidationError для пустой фамилии, получено %T", err)
	}

	if mock.createCalls != 0 || mock.replaceCalls != 0 {
		t.Fatal("невалидная запись не должна отправляться коллаборатору")
	}
}

func TestAuthorshipList_AddExistingSendsWholeList(t *testing.T) {
	mock := newAuthorshipMock()
	list := NewAuthorshipList(mock, 7, []models.Authorship{
		savedAuthorship(7, 1, 1),
		savedAuthorship(7, 2, 2),
	})

	err := list.AddExisting(context.Background(), mock.authors[3], true, "analysis")
	if err != nil {
		t.Fatalf("ошибка привязки автора: %v", err)
	}

	if mock.createCalls != 0 {
		t.Fatal("привязка существующего автора не должна создавать карточку")
	}
	if len(mock.lastReplace) != 3 {
		t.Fatalf("ожидалась отправка всего списка из 3 записей, получено %d", len(mock.lastReplace))
	}
	if mock.lastReplace[2].AuthorID != 3 || !mock.lastReplace[2].IsCorresponding {
		t.Fatal("привязанный автор должен быть последним в отправленном списке")
	}
	if list.State() != StateClean {
		t.Fatalf("после подтверждённой записи ожидалось состояние clean, получено %s", list.State())
	}
}

func TestAuthorshipList_AddExistingRejectsDuplicate(t *testing.T) {
	mock := newAuthorshipMock()
	list := NewAuthorshipList(mock, 7, []models.Authorship{savedAuthorship(7, 1, 1)})

	err := list.AddExisting(context.Background(), mock.authors[1], false, "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидалась ValidationError для повторного автора, получено %T", err)
	}
	if mock.replaceCalls != 0 {
		t.Fatal("дубль не должен отправляться коллаборатору")
	}
	if list.Len() != 1 {
		t.Fatalf("список не должен измениться, ожидалась 1 запись, получено %d", list.Len())
	}
}

func TestAuthorshipList_RemoveResequences(t *testing.T) {
	mock := newAuthorshipMock()
	list := NewAuthorshipList(mock, 7, []models.Authorship{
		savedAuthorship(7, 1, 1),
		savedAuthorship(7, 2, 2),
		savedAuthorship(7, 3, 3),
	})

	if err := list.Remove(context.Background(), 0); err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}

	if len(mock.lastReplace) != 2 {
		t.Fatalf("ожидалась отправка 2 записей, получено %d", len(mock.lastReplace))
	}
	if mock.lastReplace[0].AuthorID != 2 || mock.lastReplace[0].AuthorOrder != 1 {
		t.Fatal("после удаления первой записи вторая должна получить порядок 1")
	}
	if mock.lastReplace[1].AuthorID != 3 || mock.lastReplace[1].AuthorOrder != 2 {
		t.Fatal("порядок должен перенумероваться без дыр")
	}
}

func TestAuthorshipList_RollbackOnFailure(t *testing.T) {
	mock := newAuthorshipMock()
	mock.replaceErr = errors.New("сервер отклонил запись")
	list := NewAuthorshipList(mock, 7, []models.Authorship{
		savedAuthorship(7, 1, 1),
		savedAuthorship(7, 2, 2),
	})

	err := list.AddExisting(context.Background(), mock.authors[3], false, "")
	if err == nil {
		t.Fatal("ожидалась ошибка при отказе коллаборатора")
	}
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("ожидалась SyncError, получено %T: %v", err, err)
	}

	entries := list.Entries()
	if len(entries) != 2 {
		t.Fatalf("список должен откатиться к снимку из 2 записей, получено %d", len(entries))
	}
	if entries[0].AuthorID != 1 || entries[1].AuthorID != 2 {
		t.Fatal("после отката состав списка должен совпадать со снимком")
	}
	if list.State() != StateDirty {
		t.Fatalf("после отказа ожидалось состояние dirty, получено %s", list.State())
	}
}

func TestAuthorshipList_EditUpdatesAuthorCard(t *testing.T) {
	mock := newAuthorshipMock()
	list := NewAuthorshipList(mock, 7, []models.Authorship{
		{ArticleID: 7, AuthorID: 1, AuthorOrder: 1, Author: mock.authors[1]},
		{ArticleID: 7, AuthorID: 2, AuthorOrder: 2, Author: mock.authors[2]},
	})

	err := list.Edit(context.Background(), 1, models.AuthorFields{
		FirstName: "John",
		LastName:  "Renamed",
	}, true, "supervision")
	if err != nil {
		t.Fatalf("ошибка правки записи: %v", err)
	}

	if mock.updateCalls != 1 {
		t.Fatalf("карточка автора должна обновляться у коллаборатора, вызовов %d", mock.updateCalls)
	}
	if mock.authors[2].LastName != "Renamed" {
		t.Fatal("правка карточки должна уйти коллаборатору")
	}

	entries := list.Entries()
	if entries[1].Author.LastName != "Renamed" {
		t.Fatalf("снимок автора в записи должен обновиться, получено %q", entries[1].Author.LastName)
	}
	if !mock.lastReplace[1].IsCorresponding || mock.lastReplace[1].AuthorContribution != "supervision" {
		t.Fatal("признаки связи должны уйти коллаборатору в составе всего списка")
	}
	if mock.lastReplace[0].IsCorresponding {
		t.Fatal("правка не должна затрагивать другие записи")
	}
}

func TestAuthorshipList_EditUpdateFailure(t *testing.T) {
	mock := newAuthorshipMock()
	mock.updateErr = errors.New("сервер отклонил карточку")
	list := NewAuthorshipList(mock, 7, []models.Authorship{
		{ArticleID: 7, AuthorID: 1, AuthorOrder: 1, Author: mock.authors[1]},
	})

	err := list.Edit(context.Background(), 0, models.AuthorFields{FirstName: "Jane", LastName: "Renamed"}, false, "")
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Fatalf("ожидалась SyncError при отказе обновления карточки, получено %T: %v", err, err)
	}
	if mock.replaceCalls != 0 {
		t.Fatal("список не должен отправляться, если карточка не обновлена")
	}
	if list.Entries()[0].Author.LastName != "Doe" {
		t.Fatal("снимок автора не должен меняться при отказе обновления карточки")
	}
}

func TestAuthorshipList_EditOutOfRange(t *testing.T) {
	mock := newAuthorshipMock()
	list := NewAuthorshipList(mock, 7, []models.Authorship{savedAuthorship(7, 1, 1)})

	err := list.Edit(context.Background(), 5, models.AuthorFields{FirstName: "Jane", LastName: "Doe"}, true, "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидалась ValidationError для индекса вне списка, получено %T", err)
	}
	if mock.updateCalls != 0 {
		t.Fatal("карточка не должна обновляться для несуществующей записи")
	}
}

func TestAuthorshipList_ConcurrentAdds(t *testing.T) {
	mock := newAuthorshipMock()
	mock.authors = map[int]models.Author{}
	for i := 1; i <= 10; i++ {
		mock.authors[i] = models.Author{
			ID:        i,
			FirstName: fmt.Sprintf("Имя%d", i),
			LastName:  fmt.Sprintf("Фамилия%d", i),
		}
	}
	list := NewAuthorshipList(mock, 7, nil)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := list.AddExisting(context.Background(), mock.authors[id], false, ""); err != nil {
				t.Errorf("ошибка конкурентного добавления %d: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	entries := list.Entries()
	if len(entries) != 10 {
		t.Fatalf("ожидалось 10 записей, получено %d", len(entries))
	}
	for i, e := range entries {
		if e.AuthorOrder != i+1 {
			t.Fatalf("после конкурентных записей порядок должен остаться 1..N: позиция %d несёт %d", i, e.AuthorOrder)
		}
	}
	if list.State() != StateClean {
		t.Fatalf("ожидалось состояние clean, получено %s", list.State())
	}
}
