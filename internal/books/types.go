package books

// volumesResponse is the top-level payload of a volumes query.
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

// volume is one candidate result.
type volume struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
	SaleInfo   saleInfo   `json:"saleInfo"`
}

// volumeInfo carries the bibliographic fields of a volume. Every field is
// optional in practice; absent fields decode to zero values.
type volumeInfo struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	Description         string               `json:"description"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	Language            string               `json:"language"`
	PrintType           string               `json:"printType"`
}

// industryIdentifier is a typed ISBN entry.
type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// saleInfo carries the ebook flag.
type saleInfo struct {
	IsEbook bool `json:"isEbook"`
}
