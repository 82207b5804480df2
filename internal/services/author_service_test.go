package services

import (
	"context"
	"testing"

	"aethra/internal/models"
)

func seedAuthors(repo *mockAuthorRepo, names ...[2]string) {
	for _, n := range names {
		_, _ = repo.Create(context.Background(), &models.Author{
			FirstName: n[0],
			LastName:  n[1],
			FullName:  n[0] + " " + n[1],
		})
	}
}

func TestCreateAuthor(t *testing.T) {
	repo := newMockAuthorRepo()
	service := NewAuthorService(repo, newMockArticleRepo())

	a, err := service.Create(context.Background(), models.AuthorFields{
		FirstName: "  Jane ",
		LastName:  " Doe ",
		Email:     "jane@example.edu",
	})
	if err != nil {
		t.Fatalf("ошибка создания автора: %v", err)
	}
	if a.FullName != "Jane Doe" {
		t.Fatalf("полное имя должно собираться из имени и фамилии, получено %q", a.FullName)
	}
}

func TestCreateAuthor_RequiresName(t *testing.T) {
	service := NewAuthorService(newMockAuthorRepo(), newMockArticleRepo())

	if _, err := service.Create(context.Background(), models.AuthorFields{LastName: "Doe"}); err == nil {
		t.Fatal("ожидалась ошибка для пустого имени")
	}
	if _, err := service.Create(context.Background(), models.AuthorFields{FirstName: "Jane"}); err == nil {
		t.Fatal("ожидалась ошибка для пустой фамилии")
	}
}

func TestUpdateAuthor_GlobalEntity(t *testing.T) {
	repo := newMockAuthorRepo()
	service := NewAuthorService(repo, newMockArticleRepo())
	seedAuthors(repo, [2]string{"Jane", "Doe"})

	updated, err := service.Update(context.Background(), 1, models.AuthorFields{
		FirstName:   "Jane",
		LastName:    "Smith",
		Affiliation: "MSU",
	})
	if err != nil {
		t.Fatalf("ошибка обновления автора: %v", err)
	}
	if updated.FullName != "Jane Smith" {
		t.Fatalf("полное имя должно пересобраться, получено %q", updated.FullName)
	}
	if repo.authors[1].Affiliation != "MSU" {
		t.Fatal("правка карточки должна сохраниться в репозитории")
	}
}

func TestReplaceArticleAuthors(t *testing.T) {
	authors := newMockAuthorRepo()
	articles := newMockArticleRepo()
	service := NewAuthorService(authors, articles)

	articles.articles[7] = &models.Article{ID: 7, JournalID: 1, Title: "Target"}
	seedAuthors(authors, [2]string{"Jane", "Doe"}, [2]string{"John", "Smith"}, [2]string{"Anna", "Petrova"})

	saved, err := service.ReplaceArticleAuthors(context.Background(), 7, []models.AuthorshipEntry{
		{AuthorID: 3, AuthorOrder: 99, IsCorresponding: true},
		{AuthorID: 1, AuthorOrder: 99},
	})
	if err != nil {
		t.Fatalf("ошибка замены авторов: %v", err)
	}

	if authors.replaceCalls != 1 {
		t.Fatalf("ожидался 1 вызов замены, получено %d", authors.replaceCalls)
	}
	if len(saved) != 2 {
		t.Fatalf("ожидалось 2 записи, получено %d", len(saved))
	}
	if saved[0].AuthorID != 3 || saved[0].AuthorOrder != 1 {
		t.Fatal("порядок определяется позицией, присланный author_order игнорируется")
	}
	if saved[1].AuthorID != 1 || saved[1].AuthorOrder != 2 {
		t.Fatal("вторая запись должна получить порядок 2")
	}
	if saved[0].Author.FullName != "Anna Petrova" {
		t.Fatalf("запись должна нести снимок автора, получено %q", saved[0].Author.FullName)
	}
}

func TestReplaceArticleAuthors_Duplicate(t *testing.T) {
	authors := newMockAuthorRepo()
	articles := newMockArticleRepo()
	service := NewAuthorService(authors, articles)

	articles.articles[7] = &models.Article{ID: 7, JournalID: 1}
	seedAuthors(authors, [2]string{"Jane", "Doe"})

	_, err := service.ReplaceArticleAuthors(context.Background(), 7, []models.AuthorshipEntry{
		{AuthorID: 1},
		{AuthorID: 1},
	})
	if err == nil {
		t.Fatal("ожидалась ошибка для автора, указанного дважды")
	}
	if authors.replaceCalls != 0 {
		t.Fatal("невалидный список не должен доходить до репозитория")
	}
}

func TestReplaceArticleAuthors_UnknownAuthor(t *testing.T) {
	authors := newMockAuthorRepo()
	articles := newMockArticleRepo()
	service := NewAuthorService(authors, articles)

	articles.articles[7] = &models.Article{ID: 7, JournalID: 1}

	_, err := service.ReplaceArticleAuthors(context.Background(), 7, []models.AuthorshipEntry{{AuthorID: 42}})
	if err == nil {
		t.Fatal("ожидалась ошибка для несуществующего автора")
	}
}

func TestReplaceArticleAuthors_ArticleNotFound(t *testing.T) {
	authors := newMockAuthorRepo()
	service := NewAuthorService(authors, newMockArticleRepo())
	seedAuthors(authors, [2]string{"Jane", "Doe"})

	_, err := service.ReplaceArticleAuthors(context.Background(), 404, []models.AuthorshipEntry{{AuthorID: 1}})
	if err == nil {
		t.Fatal("ожидалась ошибка для несуществующей статьи")
	}
}
