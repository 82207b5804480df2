package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify приводит строку к виду kebab-case: латиница в нижнем регистре,
// цифры и дефисы, всё прочее схлопывается в один дефис.
func Slugify(s string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLower(r) && r <= unicode.MaxASCII, unicode.IsDigit(r) && r <= unicode.MaxASCII:
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// UniqueSlug добавляет к slug короткий случайный суффикс,
// чтобы статьи с одинаковыми заголовками не конфликтовали.
func UniqueSlug(s string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	base := Slugify(s)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
