// internal/app/system/htmlsanitize/htmlsanitize_test.go
package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/coderelay/internhub/internal/app/system/htmlsanitize"
)

func TestSanitizeEmpty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitizePlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Questions? Reach out to the program office."); got != "Questions? Reach out to the program office." {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitizeSafeHTML(t *testing.T) {
	input := "<p><strong>InternHub</strong> is run by the <em>program office</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitizeRemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	if got := htmlsanitize.Sanitize(input); got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitizeRemovesEventHandlers(t *testing.T) {
	input := `<button onclick="alert('xss')">Click</button>`
	if got := htmlsanitize.Sanitize(input); got == input {
		t.Error("expected onclick attribute to be removed")
	}
}

func TestSanitizeRemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	if got := htmlsanitize.Sanitize(input); got == input {
		t.Error("expected javascript: href to be removed")
	}
}

func TestSanitizeAllowsSafeLinks(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://example.com/handbook">Intern Handbook</a>`)
	if got == "" || !strings.Contains(got, "https://example.com/handbook") {
		t.Errorf("expected safe link preserved, got %q", got)
	}
}

func TestSanitizeAllowsTables(t *testing.T) {
	input := `<table><thead><tr><th>Contact</th></tr></thead><tbody><tr><td>office@example.com</td></tr></tbody></table>`
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected table preserved, got %q", got)
	}
}
