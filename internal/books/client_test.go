package books

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// volumePayload is a minimal successful provider response.
const volumePayload = `{
	"totalItems": 2,
	"items": [
		{
			"volumeInfo": {
				"title": "Clean Code",
				"subtitle": "A Handbook of Agile Software Craftsmanship",
				"authors": ["Robert C. Martin"],
				"publisher": "Prentice Hall",
				"publishedDate": "2008-08-01",
				"industryIdentifiers": [
					{"type": "ISBN_10", "identifier": "0132350882"},
					{"type": "ISBN_13", "identifier": "9780132350884"}
				],
				"pageCount": 464,
				"categories": ["Computers"],
				"language": "en",
				"printType": "BOOK"
			},
			"saleInfo": {"isEbook": true}
		},
		{
			"volumeInfo": {"title": "Second Result Ignored"}
		}
	]
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithRateLimit(1000), // no pacing in tests
	)
}

func TestClient_Search(t *testing.T) {
	var gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(volumePayload))
	})

	meta, err := client.Search(context.Background(), "Clean Code!", "Martin, Robert C.; Feathers, Michael")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	// Query carries the cleaned title and only the first author token.
	if gotQuery != "intitle:Clean Code inauthor:Martin" {
		t.Errorf("query = %q, want cleaned title and first author", gotQuery)
	}

	if meta.ISBN != "9780132350884" {
		t.Errorf("ISBN = %q, want ISBN-13 preferred", meta.ISBN)
	}
	if meta.Title != "Clean Code" {
		t.Errorf("Title = %q, want first item's title", meta.Title)
	}
	if meta.Year != "2008" {
		t.Errorf("Year = %q, want 2008", meta.Year)
	}
	if meta.Authors != "Robert C. Martin" {
		t.Errorf("Authors = %q", meta.Authors)
	}
	if meta.Categories != "Computers" {
		t.Errorf("Categories = %q", meta.Categories)
	}
	if meta.PageCount != 464 {
		t.Errorf("PageCount = %d, want 464", meta.PageCount)
	}
	if !meta.Ebook {
		t.Error("Ebook = false, want true")
	}
}

func TestClient_Search_ISBN10Fallback(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"volumeInfo":{
			"title": "Old Book",
			"industryIdentifiers": [{"type": "ISBN_10", "identifier": "0132350882"}]
		}}]}`))
	})

	meta, err := client.Search(context.Background(), "Old Book", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if meta.ISBN != "0132350882" {
		t.Errorf("ISBN = %q, want ISBN-10 fallback", meta.ISBN)
	}
}

func TestClient_Search_NoItems(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems": 0}`))
	})

	_, err := client.Search(context.Background(), "Nonexistent", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Search() error = %v, want ErrNotFound", err)
	}
}

func TestClient_Search_ServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "Anything", "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Search() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}

func TestClient_Search_MalformedPayload(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [`))
	})

	_, err := client.Search(context.Background(), "Anything", "")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Search() error = %v, want ErrInvalidResponse", err)
	}
}

func TestClient_Search_MissingFieldsTolerated(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"volumeInfo":{"title":"Bare"}}]}`))
	})

	meta, err := client.Search(context.Background(), "Bare", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if meta.ISBN != "" || meta.Year != "" || meta.PageCount != 0 || meta.Ebook {
		t.Errorf("meta = %+v, want zero values for absent fields", meta)
	}
}

func TestExtractISBN(t *testing.T) {
	tests := []struct {
		name string
		ids  []industryIdentifier
		want string
	}{
		{"empty", nil, ""},
		{"only 13", []industryIdentifier{{Type: "ISBN_13", Identifier: "13"}}, "13"},
		{"only 10", []industryIdentifier{{Type: "ISBN_10", Identifier: "10"}}, "10"},
		{"13 preferred over 10", []industryIdentifier{
			{Type: "ISBN_10", Identifier: "10"},
			{Type: "ISBN_13", Identifier: "13"},
		}, "13"},
		{"other types ignored", []industryIdentifier{{Type: "OTHER", Identifier: "x"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractISBN(tt.ids); got != tt.want {
				t.Errorf("extractISBN() = %q, want %q", got, tt.want)
			}
		})
	}
}
