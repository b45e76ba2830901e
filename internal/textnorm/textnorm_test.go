package textnorm

import (
	"strings"
	"testing"
)

func TestVisibleText(t *testing.T) {
	html := `<html><head><title>ignore</title><style>.x{color:red}</style></head>
	<body><script>var x = 1;</script><p>Big   Sale</p>
	<div>Today only</div></body></html>`

	got := VisibleText(html, 0)
	if got != "Big Sale Today only" {
		t.Errorf("VisibleText = %q, want %q", got, "Big Sale Today only")
	}
}

func TestVisibleTextCap(t *testing.T) {
	html := "<p>" + strings.Repeat("word ", 100) + "</p>"
	got := VisibleText(html, 20)
	if len([]rune(got)) != 20 {
		t.Errorf("VisibleText cap: got %d runes, want 20", len([]rune(got)))
	}
}

func TestVisibleTextEmpty(t *testing.T) {
	if got := VisibleText("", 0); got != "" {
		t.Errorf("VisibleText(\"\") = %q, want \"\"", got)
	}
	if got := VisibleText("   \n ", 0); got != "" {
		t.Errorf("VisibleText(whitespace) = %q, want \"\"", got)
	}
}

func TestCleanBrandName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nykaa", "Nykaa"},
		{"noreply: Nykaa", "Nykaa"},
		{"Myntra Customer Support", "Myntra"},
		{"The Souled Store Emails", "The Souled Store"},
		{"Swiggy Instamart", "Swiggy Instamart"},
		{"Acme Labs Inc.", "Acme Labs"},
		{"Zomato via Gmail", "Zomato"},
		{"BIGBASKET team", "Bigbasket"},
		{"x", ""},
		{"!!", ""},
		{"  Pottery   Barn  ", "Pottery Barn"},
	}
	for _, tt := range tests {
		if got := CleanBrandName(tt.in); got != tt.want {
			t.Errorf("CleanBrandName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeBrandKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CaratLane - A Tata Product", "caratlane"},
		{"Pottery Barn Sale", "pottery barn"},
		{"Nykaa Black Friday", "nykaa"},
		{"West Elm Design Services", "west elm"},
		{"Ajio App Exclusive", "ajio"},
		{"Mia by Tanishq", "mia"},
		{"Levi's", "levi's"},
		{"  Sephora  ", "sephora"},
	}
	for _, tt := range tests {
		if got := NormalizeBrandKey(tt.in); got != tt.want {
			t.Errorf("NormalizeBrandKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("pottery BARN kids"); got != "Pottery Barn Kids" {
		t.Errorf("TitleCase = %q", got)
	}
}

func TestStripPunct(t *testing.T) {
	if got := StripPunct("Dot & Key!"); got != "dot key" {
		t.Errorf("StripPunct = %q, want %q", got, "dot key")
	}
	if got := StripPunct("net-a-porter"); got != "netaporter" {
		t.Errorf("StripPunct = %q, want %q", got, "netaporter")
	}
}

func TestSignificantWords(t *testing.T) {
	got := SignificantWords("The Bombay Shirt Co", 3)
	want := []string{"bombay", "shirt"}
	if len(got) != len(want) {
		t.Fatalf("SignificantWords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SignificantWords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
