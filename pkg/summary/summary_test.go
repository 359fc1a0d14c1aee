package summary_test

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formstore/pkg/formstate"
	"github.com/goliatone/go-formstore/pkg/site"
	"github.com/goliatone/go-formstore/pkg/summary"
)

func TestRenderer_Contact(t *testing.T) {
	r, err := summary.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Contact(formstate.ContactForm{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Message:  "Admissions & fees",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"UNILORIN Nursery And Primary School - contact request",
		"Name:    Ada Lovelace",
		"Email:   ada@example.com",
		"Phone:   -",
		"Admissions & fees",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderer_TrademarkSlogan(t *testing.T) {
	cfg := site.Default()
	cfg.ProjectName = "Test School"
	r, err := summary.New(summary.WithSite(cfg))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Trademark(formstate.TrademarkInquiry{MarkName: "Acme", HasLogo: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Test School - trademark inquiry", "Mark:        Acme", "Logo:        yes", "Slogan:      none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	out, err = r.Trademark(formstate.TrademarkInquiry{HasSlogan: true, SloganText: "Built to last"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Slogan:      Built to last") {
		t.Fatalf("expected slogan text in output:\n%s", out)
	}
}

func TestRenderer_Record(t *testing.T) {
	r, err := summary.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	snap := formstate.Snapshot{Contact: formstate.ContactForm{Email: "a@b.com"}}

	out, err := r.Record(formstate.RecordContact, snap)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "a@b.com") {
		t.Fatalf("expected email in output:\n%s", out)
	}

	if _, err := r.Record("newsletter", snap); err == nil {
		t.Fatalf("expected error for unknown record")
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		summary.ContactTemplate: &fstest.MapFile{Data: []byte("{{ contact.Email }}")},
	}
	r, err := summary.New(summary.WithTemplates(fsys))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Contact(formstate.ContactForm{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "a@b.com\n" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := r.Trademark(formstate.TrademarkInquiry{}); err == nil {
		t.Fatalf("expected error for missing trademark template")
	}
}

func TestTemplatesFS_RootsBuiltInTemplates(t *testing.T) {
	for _, name := range []string{summary.ContactTemplate, summary.TrademarkTemplate} {
		if _, err := fs.Stat(summary.TemplatesFS(), name); err != nil {
			t.Fatalf("expected %s at the root of the template filesystem: %v", name, err)
		}
	}
}
