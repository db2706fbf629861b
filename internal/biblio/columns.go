package biblio

// Column headers of the "Bibliografia" sheet. The schema is fixed: the
// processor reads and writes exactly these columns.
const (
	ColTitle            = "Título"
	ColSubtitle         = "Subtítulo"
	ColAuthor           = "Autor"
	ColPublisher        = "Editora"
	ColYear             = "Ano (apenas números)"
	ColURL              = "Url"
	ColJurisdiction     = "Jurisdição"
	ColChapterTitle     = "Título do Capítulo"
	ColArticleName      = "Nome do artigo"
	ColJournalName      = "Nome da Revista"
	ColPageRange        = "Página inicial e final do artigo"
	ColSubmissionYear   = "Ano de entrega"
	ColPresentationYear = "Ano de apresentação"
	ColSheetCount       = "Número de folhas"
	ColWorkType         = "Tipo de Trabalho"
	ColLawName          = "Nome da Lei"
	ColISBN             = "Isbn"
	ColCitationType     = "Tipo Citação (obrigatório)"
	ColEbook            = "É ebook (escreva SIM ou deixe em branco)"
	ColOnlineMaterial   = "Material Online (escreva SIM ou deixe em branco)"
)

// Columns lists the sheet headers in output order.
var Columns = []string{
	ColTitle,
	ColSubtitle,
	ColAuthor,
	ColPublisher,
	ColYear,
	ColURL,
	ColJurisdiction,
	ColChapterTitle,
	ColArticleName,
	ColJournalName,
	ColPageRange,
	ColSubmissionYear,
	ColPresentationYear,
	ColSheetCount,
	ColWorkType,
	ColLawName,
	ColISBN,
	ColCitationType,
	ColEbook,
	ColOnlineMaterial,
}

// Get returns the cell value for a column header.
func (r Row) Get(col string) string {
	switch col {
	case ColTitle:
		return r.Title
	case ColSubtitle:
		return r.Subtitle
	case ColAuthor:
		return r.Author
	case ColPublisher:
		return r.Publisher
	case ColYear:
		return r.Year
	case ColURL:
		return r.URL
	case ColJurisdiction:
		return r.Jurisdiction
	case ColChapterTitle:
		return r.ChapterTitle
	case ColArticleName:
		return r.ArticleName
	case ColJournalName:
		return r.JournalName
	case ColPageRange:
		return r.PageRange
	case ColSubmissionYear:
		return r.SubmissionYear
	case ColPresentationYear:
		return r.PresentationYear
	case ColSheetCount:
		return r.SheetCount
	case ColWorkType:
		return r.WorkType
	case ColLawName:
		return r.LawName
	case ColISBN:
		return r.ISBN
	case ColCitationType:
		return string(r.CitationType)
	case ColEbook:
		return r.Ebook
	case ColOnlineMaterial:
		return r.OnlineMaterial
	}
	return ""
}

// Set assigns the cell value for a column header. Unknown headers are ignored
// so extra columns in an input sheet do not fail the import.
func (r *Row) Set(col, value string) {
	switch col {
	case ColTitle:
		r.Title = value
	case ColSubtitle:
		r.Subtitle = value
	case ColAuthor:
		r.Author = value
	case ColPublisher:
		r.Publisher = value
	case ColYear:
		r.Year = value
	case ColURL:
		r.URL = value
	case ColJurisdiction:
		r.Jurisdiction = value
	case ColChapterTitle:
		r.ChapterTitle = value
	case ColArticleName:
		r.ArticleName = value
	case ColJournalName:
		r.JournalName = value
	case ColPageRange:
		r.PageRange = value
	case ColSubmissionYear:
		r.SubmissionYear = value
	case ColPresentationYear:
		r.PresentationYear = value
	case ColSheetCount:
		r.SheetCount = value
	case ColWorkType:
		r.WorkType = value
	case ColLawName:
		r.LawName = value
	case ColISBN:
		r.ISBN = value
	case ColCitationType:
		r.CitationType = CitationType(value)
	case ColEbook:
		r.Ebook = value
	case ColOnlineMaterial:
		r.OnlineMaterial = value
	}
}
