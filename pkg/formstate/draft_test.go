package formstate_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstore/pkg/formstate"
)

func TestDecodeDraft_YAML(t *testing.T) {
	src := `
contact:
  fullname: Ada Lovelace
  phone: "0801"
trademark:
  markName: Acme
  slogan: true
  slogan_name: Built to last
`
	draft, err := formstate.DecodeDraft(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	c := formstate.NewContainer()
	if err := c.ApplyDraft(draft); err != nil {
		t.Fatalf("apply draft: %v", err)
	}

	want := formstate.Snapshot{
		Contact: formstate.ContactForm{FullName: "Ada Lovelace", Phone: "0801"},
		Trademark: formstate.TrademarkInquiry{
			MarkName:   "Acme",
			HasSlogan:  true,
			SloganText: "Built to last",
		},
	}
	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDraft_JSON(t *testing.T) {
	draft, err := formstate.DecodeDraft(strings.NewReader(`{"contact": {"email": "a@b.com"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := draft.Contact["email"]; got != "a@b.com" {
		t.Fatalf("unexpected email %v", got)
	}
}

func TestDecodeDraft_Empty(t *testing.T) {
	draft, err := formstate.DecodeDraft(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if draft.Contact != nil || draft.Trademark != nil {
		t.Fatalf("expected empty draft, got %+v", draft)
	}
}

func TestDecodeDraft_UnknownSection(t *testing.T) {
	_, err := formstate.DecodeDraft(strings.NewReader("newsletter:\n  email: a@b.com\n"))
	if err == nil {
		t.Fatalf("expected error for unknown section")
	}
}

func TestApplyDraft_RejectsWholeDraft(t *testing.T) {
	c := formstate.NewContainer()
	draft := formstate.Draft{
		Contact:   map[string]any{"email": "a@b.com"},
		Trademark: map[string]any{"logo": "yes"},
	}

	err := c.ApplyDraft(draft)
	if !errors.Is(err, formstate.ErrFieldType) {
		t.Fatalf("expected ErrFieldType, got %v", err)
	}
	if got := c.ContactForm().Email; got != "" {
		t.Fatalf("contact applied despite rejected draft: %q", got)
	}
}

func TestOpenAPIDocument(t *testing.T) {
	doc := formstate.OpenAPIDocument("Form drafts", "1.0.0")
	if err := formstate.ValidateDocument(context.Background(), doc); err != nil {
		t.Fatalf("validate: %v", err)
	}

	contact := doc.Components.Schemas[formstate.ContactSchemaName].Value
	if diff := cmp.Diff(formstate.ContactFields(), contact.Required); diff != "" {
		t.Fatalf("contact required mismatch (-want +got):\n%s", diff)
	}
	if len(contact.Properties) != len(formstate.ContactFields()) {
		t.Fatalf("expected %d contact properties, got %d", len(formstate.ContactFields()), len(contact.Properties))
	}

	trademark := doc.Components.Schemas[formstate.TrademarkSchemaName].Value
	for _, name := range formstate.TrademarkFields() {
		if _, ok := trademark.Properties[name]; !ok {
			t.Fatalf("trademark schema missing property %q", name)
		}
	}
	if !trademark.Properties[formstate.FieldHasLogo].Value.Type.Is("boolean") {
		t.Fatalf("hasLogo should be boolean")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"additionalProperties":false`) {
		t.Fatalf("expected closed objects in %s", raw)
	}
}
