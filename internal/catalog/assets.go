package catalog

import "aethra/internal/models"

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXML  Format = "xml"
	FormatEPub Format = "epub"
	FormatMobi Format = "mobi"
	FormatPRC  Format = "prc"
)

// Download — предлагаемый читателю вариант скачивания.
type Download struct {
	Format Format `json:"format"`
	URL    string `json:"url"`
}

// Downloads возвращает форматы, доступные для статьи. Формат предлагается
// тогда и только тогда, когда его поле файла непустое. Для pdf и xml ссылка
// строится из слагов журнала и статьи (файл раздаёт API); значения самих
// полей в ссылку не попадают. Для epub, mobi и prc поле используется
// дословно как прямая ссылка.
func Downloads(a *models.Article, journalSlug string, urls URLBuilder) []Download {
	var out []Download
	if a.PDFFile != "" {
		out = append(out, Download{Format: FormatPDF, URL: urls.ArticlePDFURL(journalSlug, a.Slug)})
	}
	if a.XMLFile != "" {
		out = append(out, Download{Format: FormatXML, URL: urls.ArticleXMLURL(journalSlug, a.Slug)})
	}
	if a.EPubFile != "" {
		out = append(out, Download{Format: FormatEPub, URL: a.EPubFile})
	}
	if a.MobiFile != "" {
		out = append(out, Download{Format: FormatMobi, URL: a.MobiFile})
	}
	if a.PRCFile != "" {
		out = append(out, Download{Format: FormatPRC, URL: a.PRCFile})
	}
	return out
}
