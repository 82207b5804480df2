package catalog

import (
	"fmt"

	"aethra/internal/models"
)

// OtherArticlesGroup — ключ группы статей без выпуска.
const OtherArticlesGroup = "Other Articles"

// GroupByIssue раскладывает статьи по выпускам. Ключ группы — "Issue {n}"
// либо "Other Articles" для статей без номера выпуска. Порядок групп —
// порядок первого появления во входном списке; внутри группы порядок
// входного списка сохраняется.
func GroupByIssue(articles []*models.Article) ([]string, map[string][]*models.Article) {
	var order []string
	groups := map[string][]*models.Article{}

	for _, a := range articles {
		key := OtherArticlesGroup
		if a.IssueNumber != nil {
			key = fmt.Sprintf("Issue %d", *a.IssueNumber)
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], a)
	}
	return order, groups
}

// SortState — выбранная сортировка списка статей. Сортирует сервер:
// клиент лишь собирает параметр ordering и никогда не пересортировывает
// полученный список локально.
type SortState struct {
	Field string
	Desc  bool
}

// DefaultSortState — свежее сверху: published_date по убыванию.
func DefaultSortState() SortState {
	return SortState{Field: "published_date", Desc: true}
}

// Toggle повторным выбором того же поля меняет направление;
// выбор нового поля сбрасывает направление в убывание.
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		s.Desc = !s.Desc
		return
	}
	s.Field = field
	s.Desc = true
}

// Ordering собирает значение параметра ordering: префикс "-" — убывание.
func (s SortState) Ordering() string {
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}
