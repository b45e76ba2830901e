package brand

import "testing"

func TestExtractKnownSender(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		sender string
		want   string
	}{
		{"Nykaa <no-reply@nykaa.com>", "Nykaa"},
		{"CaratLane - A Tata Product <offers@caratlane.com>", "Caratlane"},
		{"updates@em.potterybarn.com", "Pottery Barn"},
	}
	for _, tt := range tests {
		if got := e.Extract(tt.sender, "", ""); got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}
}

func TestExtractDisplayName(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract(`"Randomstartup" <hello@randomstartup.io>`, "", "")
	if got != "Randomstartup" {
		t.Errorf("Extract = %q, want Randomstartup", got)
	}
}

func TestExtractDomainFallback(t *testing.T) {
	e := NewExtractor(nil)

	// No display name, generic subdomain labels skipped.
	got := e.Extract("hello@mail.randomstartup.io", "", "")
	if got != "Randomstartup" {
		t.Errorf("Extract = %q, want Randomstartup", got)
	}
}

func TestExtractUnknown(t *testing.T) {
	e := NewExtractor(nil)

	if got := e.Extract("noreply@mail.com", "", ""); got != Unknown {
		t.Errorf("Extract = %q, want %q", got, Unknown)
	}
	if got := e.Extract("", "", ""); got != Unknown {
		t.Errorf("Extract empty = %q, want %q", got, Unknown)
	}
}

func TestExtractOGSiteNameBeatsDisplayName(t *testing.T) {
	e := NewExtractor(nil)

	html := `<html><head><meta property="og:site_name" content="Proper Cloth"></head><body></body></html>`
	got := e.Extract(`"Orders Desk" <orders@propercloth-mail.xyz>`, html, "")
	if got != "Proper Cloth" {
		t.Errorf("Extract = %q, want Proper Cloth", got)
	}
}

func TestExtractCopyrightFooter(t *testing.T) {
	e := NewExtractor(nil)

	html := `<html><body><p>Hello</p>
	<div class="footer">&copy; 2024 Acme Labs. All rights reserved.</div></body></html>`
	got := e.Extract("", html, "")
	if got != "Acme Labs" {
		t.Errorf("Extract = %q, want Acme Labs", got)
	}
}

func TestExtractKnownBrandInRunnerUp(t *testing.T) {
	e := NewExtractor(nil)

	// The og:site_name candidate outranks the copyright footer, but only the
	// footer name resolves against the brand table. The table hit wins.
	html := `<html><head><meta property="og:site_name" content="Zestful Curations"></head>
	<body><div class="footer">&copy; 2024 Sleepy Owl Beverages. All rights reserved.</div></body></html>`
	got := e.Extract("", html, "")
	if got != "Sleepy Owl Coffee" {
		t.Errorf("Extract = %q, want Sleepy Owl Coffee", got)
	}
}

func TestExtractSubjectPrefix(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("", "", "[Teabox] Your monthly brew is here")
	if got != "Teabox" {
		t.Errorf("Extract = %q, want Teabox", got)
	}
}

func TestCandidatesOrdering(t *testing.T) {
	e := NewExtractor(nil)

	html := `<html><head>
	<meta property="og:site_name" content="Sitebrand">
	<meta name="twitter:site" content="@tweetbrand">
	</head><body></body></html>`
	cands := e.Candidates(`"Headerbrand" <x@headerbrand-mail.xyz>`, html, "")

	if len(cands) < 3 {
		t.Fatalf("expected at least 3 candidates, got %d", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Confidence > cands[i-1].Confidence {
			t.Errorf("candidates not sorted: %v before %v", cands[i-1], cands[i])
		}
	}
	if cands[0].Name != "Sitebrand" || cands[0].Source != SourceOGSiteName {
		t.Errorf("top candidate = %+v, want og:site_name Sitebrand", cands[0])
	}
}

func TestDisplayNameParsing(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{`"Warby Parker" <hi@warbyparker.com>`, "Warby Parker"},
		{`Warby Parker <hi@warbyparker.com>`, "Warby Parker"},
		{`hi@warbyparker.com`, ""},
		{`<hi@warbyparker.com>`, ""},
	}
	for _, tt := range tests {
		if got := displayName(tt.sender); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}
}

func TestDomainToken(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{"x@nykaa.com", "nykaa"},
		{"x@em.nykaa.com", "nykaa"},
		{"x@mail.bigbasket.co.in", "bigbasket"},
		{"x@mail.com", ""},
		{"no-at-sign", ""},
	}
	for _, tt := range tests {
		if got := domainToken(tt.sender); got != tt.want {
			t.Errorf("domainToken(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}
}

func TestTrimCopyright(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Labs. All rights reserved", "Acme Labs"},
		{"Acme Labs, Inc", "Acme Labs"},
		{"Acme Labs", "Acme Labs"},
	}
	for _, tt := range tests {
		if got := trimCopyright(tt.in); got != tt.want {
			t.Errorf("trimCopyright(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
