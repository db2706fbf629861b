// Package classify assigns a citation type to fetched volume metadata.
package classify

import (
	"strings"

	"github.com/gbazo/bibproc/internal/biblio"
)

// academicMarkers flag theses, dissertations and other academic works.
// Portuguese and English terms, matched case-insensitively as substrings.
var academicMarkers = []string{
	"dissertação", "tese", "monografia", "trabalho de conclusão",
	"tcc", "dissertation", "thesis", "doctoral", "mestrado", "doutorado",
}

// journalMarkers flag periodical categories for short publications.
var journalMarkers = []string{"journal", "article", "revista", "magazine"}

// chapterMarkers flag book chapters by title.
var chapterMarkers = []string{"capítulo", "chapter"}

// articleMaxPages is the page count below which a periodical-categorized
// volume is treated as an article rather than a book.
const articleMaxPages = 50

// Classify inspects volume metadata and returns its citation type. Rules are
// tried in order and the first match wins:
//
//  1. academic marker in categories, title or description → Trabalho acadêmico
//  2. page count under 50 and a journal marker in categories → Artigo
//  3. chapter keyword in the title → Capítulo de livro
//  4. otherwise → Livro
func Classify(m biblio.Metadata) biblio.CitationType {
	title := strings.ToLower(m.Title)
	description := strings.ToLower(m.Description)
	categories := strings.ToLower(m.Categories)

	for _, marker := range academicMarkers {
		if strings.Contains(categories, marker) || strings.Contains(title, marker) || strings.Contains(description, marker) {
			return biblio.TypeAcademic
		}
	}

	if m.PageCount > 0 && m.PageCount < articleMaxPages {
		for _, marker := range journalMarkers {
			if strings.Contains(categories, marker) {
				return biblio.TypeArticle
			}
		}
	}

	for _, marker := range chapterMarkers {
		if strings.Contains(title, marker) {
			return biblio.TypeChapter
		}
	}

	return biblio.TypeBook
}
