package catalog

import (
	"fmt"
	"strings"
	"testing"

	"aethra/internal/models"
)

type stubURLs struct{}

func (stubURLs) ArticlePDFURL(journalSlug, articleSlug string) string {
	return fmt.Sprintf("https://api.test/api/v1/articles/by-journal/%s/%s/pdf", journalSlug, articleSlug)
}

func (stubURLs) ArticleXMLURL(journalSlug, articleSlug string) string {
	return fmt.Sprintf("https://api.test/api/v1/articles/by-journal/%s/%s/xml", journalSlug, articleSlug)
}

func formatsOf(ds []Download) []Format {
	out := make([]Format, len(ds))
	for i, d := range ds {
		out[i] = d.Format
	}
	return out
}

func TestDownloads_OfferedOnlyForPresentFiles(t *testing.T) {
	a := &models.Article{
		Slug:     "crispr-review",
		PDFFile:  "media/files/internal-name.pdf",
		EPubFile: "https://cdn.example.org/books/crispr.epub",
	}

	ds := Downloads(a, "acta-medica", stubURLs{})
	got := formatsOf(ds)
	want := []Format{FormatPDF, FormatEPub}
	if len(got) != len(want) {
		t.Fatalf("ожидались форматы %v, получено %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ожидались форматы %v, получено %v", want, got)
		}
	}
}

func TestDownloads_NoFiles(t *testing.T) {
	ds := Downloads(&models.Article{Slug: "no-files"}, "acta-medica", stubURLs{})
	if len(ds) != 0 {
		t.Fatalf("без файлов форматы не предлагаются, получено %d", len(ds))
	}
}

func TestDownloads_ServedFormatsUseBuiltURLs(t *testing.T) {
	a := &models.Article{
		Slug:    "crispr-review",
		PDFFile: "media/files/internal-name.pdf",
		XMLFile: "media/files/internal-name.xml",
	}
	urls := stubURLs{}

	ds := Downloads(a, "acta-medica", urls)
	if len(ds) != 2 {
		t.Fatalf("ожидалось 2 формата, получено %d", len(ds))
	}

	if ds[0].URL != urls.ArticlePDFURL("acta-medica", a.Slug) {
		t.Fatalf("ссылка на pdf должна строиться из слагов, получено %q", ds[0].URL)
	}
	if ds[1].URL != urls.ArticleXMLURL("acta-medica", a.Slug) {
		t.Fatalf("ссылка на xml должна строиться из слагов, получено %q", ds[1].URL)
	}
	for _, d := range ds {
		if strings.Contains(d.URL, "internal-name") {
			t.Fatalf("значение поля файла не должно попадать в ссылку: %q", d.URL)
		}
	}
}

func TestDownloads_DirectFormatsVerbatim(t *testing.T) {
	a := &models.Article{
		Slug:     "crispr-review",
		EPubFile: "https://cdn.example.org/books/crispr.epub",
		MobiFile: "https://cdn.example.org/books/crispr.mobi",
		PRCFile:  "https://cdn.example.org/books/crispr.prc",
	}

	ds := Downloads(a, "acta-medica", stubURLs{})
	if len(ds) != 3 {
		t.Fatalf("ожидалось 3 формата, получено %d", len(ds))
	}

	byFormat := map[Format]string{}
	for _, d := range ds {
		byFormat[d.Format] = d.URL
	}
	if byFormat[FormatEPub] != a.EPubFile {
		t.Fatalf("epub отдаётся дословно, получено %q", byFormat[FormatEPub])
	}
	if byFormat[FormatMobi] != a.MobiFile {
		t.Fatalf("mobi отдаётся дословно, получено %q", byFormat[FormatMobi])
	}
	if byFormat[FormatPRC] != a.PRCFile {
		t.Fatalf("prc отдаётся дословно, получено %q", byFormat[FormatPRC])
	}
}
