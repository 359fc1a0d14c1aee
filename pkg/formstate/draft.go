package formstate

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Draft is a saved or hand-written set of partial values for both records, as
// read from a YAML (or JSON) prefill file.
type Draft struct {
	Contact   map[string]any `yaml:"contact" json:"contact"`
	Trademark map[string]any `yaml:"trademark" json:"trademark"`
}

// DecodeDraft reads a Draft from r. YAML is a superset of JSON so both
// formats are accepted. Unknown top-level keys are rejected.
func DecodeDraft(r io.Reader) (Draft, error) {
	var draft Draft
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&draft); err != nil {
		if errors.Is(err, io.EOF) {
			return Draft{}, nil
		}
		return Draft{}, fmt.Errorf("formstate: decode draft: %w", err)
	}
	return draft, nil
}

// ApplyDraft validates both parts of d and then applies them. If either part
// is rejected neither record changes.
func (c *Container) ApplyDraft(d Draft) error {
	contact, err := ContactPatchFromValues(d.Contact)
	if err != nil {
		return fmt.Errorf("formstate: draft contact: %w", err)
	}
	trademark, err := TrademarkPatchFromValues(d.Trademark)
	if err != nil {
		return fmt.Errorf("formstate: draft trademark: %w", err)
	}
	c.SetContactForm(contact)
	c.SetTrademarkInquiry(trademark)
	return nil
}
