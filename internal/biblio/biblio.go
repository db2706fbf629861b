// Package biblio defines the core domain types for bibliography enrichment.
package biblio

// CitationType classifies a reference and drives which output columns are
// populated. Values are the literal labels written to the spreadsheet.
type CitationType string

const (
	TypeBook     CitationType = "Livro"
	TypeChapter  CitationType = "Capítulo de livro"
	TypeArticle  CitationType = "Artigo"
	TypeAcademic CitationType = "Trabalho acadêmico"
	TypeLaw      CitationType = "Lei"
)

// AllTypes lists every citation type in presentation order.
var AllTypes = []CitationType{TypeBook, TypeChapter, TypeArticle, TypeAcademic, TypeLaw}

// Work type labels for academic works.
const (
	WorkMasters  = "Dissertação de Mestrado"
	WorkDoctoral = "Tese de Doutorado"
	WorkFinal    = "Trabalho de Conclusão de Curso"
)

// Yes is the marker written to flag columns (ebook, online material).
const Yes = "SIM"

// Row is one bibliography entry. All fields carry spreadsheet cell text.
// Rows are values: mapping stages return a new Row rather than mutating in
// place, so each stage can be tested in isolation.
type Row struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Author       string `json:"author"`
	Publisher    string `json:"publisher"`
	Year         string `json:"year"`
	URL          string `json:"url"`
	Jurisdiction string `json:"jurisdiction"`

	// Type-specific columns
	ChapterTitle     string `json:"chapter_title"`
	ArticleName      string `json:"article_name"`
	JournalName      string `json:"journal_name"`
	PageRange        string `json:"page_range"`
	SubmissionYear   string `json:"submission_year"`
	PresentationYear string `json:"presentation_year"`
	SheetCount       string `json:"sheet_count"`
	WorkType         string `json:"work_type"`
	LawName          string `json:"law_name"`

	// Enrichment columns
	ISBN           string       `json:"isbn"`
	CitationType   CitationType `json:"citation_type"`
	Ebook          string       `json:"ebook"`
	OnlineMaterial string       `json:"online_material"`
}

// Metadata is the normalized result of one provider lookup for a
// (title, author) pair. Immutable after creation and cached indefinitely.
type Metadata struct {
	ISBN         string       `json:"isbn,omitempty"`
	CitationType CitationType `json:"citation_type"`
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle,omitempty"`
	Description  string       `json:"description,omitempty"`
	Authors      string       `json:"authors,omitempty"`
	Publisher    string       `json:"publisher,omitempty"`
	Year         string       `json:"year,omitempty"` // 4-digit string or empty
	PageCount    int          `json:"page_count,omitempty"`
	Categories   string       `json:"categories,omitempty"`
	Language     string       `json:"language,omitempty"`
	PrintType    string       `json:"print_type,omitempty"`
	Ebook        bool         `json:"is_ebook,omitempty"`
}

// Stats accumulates counts during a batch pass.
type Stats struct {
	Found    int            `json:"encontrados"`
	NotFound int            `json:"nao_encontrados"`
	Types    map[string]int `json:"tipos"`
}

// NewStats returns a Stats with every citation type counter present at zero.
func NewStats() Stats {
	types := make(map[string]int, len(AllTypes))
	for _, t := range AllTypes {
		types[string(t)] = 0
	}
	return Stats{Types: types}
}

// Count records a found row of the given type.
func (s *Stats) Count(t CitationType) {
	s.Found++
	s.Types[string(t)]++
}
