package normalize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Clean Code", "Clean Code"},
		{"punctuation to spaces", "Lei nº 8.666/1993", "Lei nº 8 666 1993"},
		{"punctuation only", "?!.,;:", ""},
		{"collapses whitespace", "a   b\t\tc", "a b c"},
		{"trims", "  direito administrativo  ", "direito administrativo"},
		{"keeps accents", "educação à distância", "educação à distância"},
		{"keeps underscore", "snake_case title", "snake_case title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"Lei nº 8.666/1993",
		"  a  b  ",
		"educação: teoria & prática",
		"",
	}
	for _, input := range inputs {
		once := Clean(input)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestFirstAuthor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single author", "Robert Martin", "Robert Martin"},
		{"semicolon separated", "Silva, João; Souza, Maria", "Silva"},
		{"comma separated", "Martin, Robert C.", "Martin"},
		{"punctuation cleaned", "O'Neil; Smith", "O Neil"},
		{"only separators", ";,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstAuthor(tt.input); got != tt.want {
				t.Errorf("FirstAuthor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
