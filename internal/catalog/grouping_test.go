package catalog

import (
	"testing"

	"aethra/internal/models"
)

func intp(v int) *int { return &v }

func TestGroupByIssue(t *testing.T) {
	articles := []*models.Article{
		{ID: 1, Title: "A", IssueNumber: intp(2)},
		{ID: 2, Title: "B", IssueNumber: intp(2)},
		{ID: 3, Title: "C"},
		{ID: 4, Title: "D", IssueNumber: intp(1)},
		{ID: 5, Title: "E", IssueNumber: intp(1)},
	}

	order, groups := GroupByIssue(articles)

	want := []string{"Issue 2", OtherArticlesGroup, "Issue 1"}
	if len(order) != len(want) {
		t.Fatalf("ожидался порядок групп %v, получено %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("порядок групп должен идти по первому появлению: ожидалось %v, получено %v", want, order)
		}
	}

	if len(groups["Issue 2"]) != 2 || len(groups["Issue 1"]) != 2 || len(groups[OtherArticlesGroup]) != 1 {
		t.Fatalf("неверное распределение по группам: %d/%d/%d",
			len(groups["Issue 2"]), len(groups["Issue 1"]), len(groups[OtherArticlesGroup]))
	}
	if groups["Issue 1"][0].ID != 4 || groups["Issue 1"][1].ID != 5 {
		t.Fatal("внутри группы должен сохраняться порядок входного списка")
	}
}

func TestGroupByIssue_Empty(t *testing.T) {
	order, groups := GroupByIssue(nil)
	if len(order) != 0 || len(groups) != 0 {
		t.Fatalf("для пустого входа ожидались пустые группы, получено %v", order)
	}
}

func TestSortState_Default(t *testing.T) {
	s := DefaultSortState()
	if s.Ordering() != "-published_date" {
		t.Fatalf("по умолчанию ожидалось -published_date, получено %q", s.Ordering())
	}
}

func TestSortState_Toggle(t *testing.T) {
	s := DefaultSortState()

	s.Toggle("published_date")
	if s.Ordering() != "published_date" {
		t.Fatalf("повторный выбор поля должен сменить направление, получено %q", s.Ordering())
	}

	s.Toggle("title")
	if s.Ordering() != "-title" {
		t.Fatalf("выбор нового поля должен сбросить направление в убывание, получено %q", s.Ordering())
	}

	s.Toggle("title")
	if s.Ordering() != "title" {
		t.Fatalf("повторный выбор должен снова сменить направление, получено %q", s.Ordering())
	}
}
