// Package mapper fills type-specific output columns from fetched metadata.
package mapper

import (
	"strconv"
	"strings"

	"github.com/gbazo/bibproc/internal/biblio"
)

// Apply returns a copy of row with enrichment columns populated from meta.
// A nil meta returns the row unchanged. ISBN and citation type are always
// set; Subtitle and Year are overwritten whenever the provider has them;
// every other column is only filled when still empty.
func Apply(row biblio.Row, meta *biblio.Metadata) biblio.Row {
	if meta == nil {
		return row
	}

	row.ISBN = meta.ISBN
	row.CitationType = meta.CitationType

	if meta.Subtitle != "" {
		row.Subtitle = meta.Subtitle
	}
	if meta.Year != "" {
		row.Year = meta.Year
	}
	if meta.Publisher != "" && row.Publisher == "" {
		row.Publisher = meta.Publisher
	}

	switch meta.CitationType {
	case biblio.TypeChapter:
		if row.ChapterTitle == "" {
			row.ChapterTitle = row.Title
			row.Title = meta.Title
		}

	case biblio.TypeArticle:
		if row.ArticleName == "" {
			row.ArticleName = row.Title
		}
		if meta.Categories != "" && row.JournalName == "" {
			row.JournalName = meta.Categories
		}
		if meta.PageCount > 0 {
			row.PageRange = "1-" + strconv.Itoa(meta.PageCount)
		}

	case biblio.TypeAcademic:
		if meta.Year != "" {
			row.SubmissionYear = meta.Year
			row.PresentationYear = meta.Year
		}
		if meta.PageCount > 0 {
			row.SheetCount = strconv.Itoa(meta.PageCount)
		}
		row.WorkType = workType(row.Title)
	}

	if meta.Ebook {
		row.Ebook = biblio.Yes
	}

	return row
}

// workType derives the academic work type from the row's own title text,
// not from provider metadata.
func workType(title string) string {
	title = strings.ToLower(title)
	switch {
	case strings.Contains(title, "dissertação") || strings.Contains(title, "mestrado"):
		return biblio.WorkMasters
	case strings.Contains(title, "tese") || strings.Contains(title, "doutorado"):
		return biblio.WorkDoctoral
	default:
		return biblio.WorkFinal
	}
}
