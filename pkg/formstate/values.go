package formstate

import (
	"fmt"
	"sort"
	"strings"
)

// contactAliases maps accepted keys onto canonical ContactForm field names.
// Lower-case and snake_case names written by earlier site builds are kept as
// aliases so old drafts still load.
var contactAliases = map[string]string{
	FieldFullName: FieldFullName,
	"fullname":    FieldFullName,
	"full_name":   FieldFullName,
	FieldEmail:    FieldEmail,
	FieldPhone:    FieldPhone,
	FieldMessage:  FieldMessage,
}

var trademarkAliases = map[string]string{
	FieldMarkName:            FieldMarkName,
	"markname":               FieldMarkName,
	FieldHasLogo:             FieldHasLogo,
	"logo":                   FieldHasLogo,
	FieldHasSlogan:           FieldHasSlogan,
	"slogan":                 FieldHasSlogan,
	FieldSloganText:          FieldSloganText,
	"slogan_name":            FieldSloganText,
	FieldBusinessName:        FieldBusinessName,
	"business_name":          FieldBusinessName,
	FieldBusinessIndustry:    FieldBusinessIndustry,
	"business_industry":      FieldBusinessIndustry,
	FieldBusinessDescription: FieldBusinessDescription,
	"business_description":   FieldBusinessDescription,
	FieldTrademarkCategory:   FieldTrademarkCategory,
}

// CanonicalContactField resolves key (canonical or legacy) to a ContactForm
// field name.
func CanonicalContactField(key string) (string, bool) {
	name, ok := contactAliases[strings.TrimSpace(key)]
	return name, ok
}

// CanonicalTrademarkField resolves key (canonical or legacy) to a
// TrademarkInquiry field name.
func CanonicalTrademarkField(key string) (string, bool) {
	name, ok := trademarkAliases[strings.TrimSpace(key)]
	return name, ok
}

// ContactPatchFromValues converts a decoded key/value map into a ContactPatch.
// Every key is checked before the patch is returned; unknown keys, duplicate
// fields and mistyped values fail the whole map.
func ContactPatchFromValues(values map[string]any) (ContactPatch, error) {
	var patch ContactPatch
	err := eachField(values, CanonicalContactField, func(field, key string, value any) error {
		s, err := stringValue(key, value)
		if err != nil {
			return err
		}
		switch field {
		case FieldFullName:
			patch.FullName = &s
		case FieldEmail:
			patch.Email = &s
		case FieldPhone:
			patch.Phone = &s
		case FieldMessage:
			patch.Message = &s
		}
		return nil
	})
	if err != nil {
		return ContactPatch{}, err
	}
	return patch, nil
}

// TrademarkPatchFromValues converts a decoded key/value map into a
// TrademarkPatch with the same rules as ContactPatchFromValues.
func TrademarkPatchFromValues(values map[string]any) (TrademarkPatch, error) {
	var patch TrademarkPatch
	err := eachField(values, CanonicalTrademarkField, func(field, key string, value any) error {
		switch field {
		case FieldHasLogo, FieldHasSlogan:
			b, err := boolValue(key, value)
			if err != nil {
				return err
			}
			if field == FieldHasLogo {
				patch.HasLogo = &b
			} else {
				patch.HasSlogan = &b
			}
			return nil
		}

		s, err := stringValue(key, value)
		if err != nil {
			return err
		}
		switch field {
		case FieldMarkName:
			patch.MarkName = &s
		case FieldSloganText:
			patch.SloganText = &s
		case FieldBusinessName:
			patch.BusinessName = &s
		case FieldBusinessIndustry:
			patch.BusinessIndustry = &s
		case FieldBusinessDescription:
			patch.BusinessDescription = &s
		case FieldTrademarkCategory:
			patch.TrademarkCategory = &s
		}
		return nil
	})
	if err != nil {
		return TrademarkPatch{}, err
	}
	return patch, nil
}

// ApplyContactValues applies a key/value map to the contact draft. On error
// the draft is unchanged.
func (c *Container) ApplyContactValues(values map[string]any) error {
	patch, err := ContactPatchFromValues(values)
	if err != nil {
		return err
	}
	c.SetContactForm(patch)
	return nil
}

// ApplyTrademarkValues applies a key/value map to the trademark draft. On
// error the draft is unchanged.
func (c *Container) ApplyTrademarkValues(values map[string]any) error {
	patch, err := TrademarkPatchFromValues(values)
	if err != nil {
		return err
	}
	c.SetTrademarkInquiry(patch)
	return nil
}

// ApplyValues dispatches a key/value map to the named record.
func (c *Container) ApplyValues(record Record, values map[string]any) error {
	switch record {
	case RecordContact:
		return c.ApplyContactValues(values)
	case RecordTrademark:
		return c.ApplyTrademarkValues(values)
	default:
		return fmt.Errorf("formstate: unknown record %q", record)
	}
}

// eachField walks values in sorted key order so error reporting is stable.
func eachField(values map[string]any, resolve func(string) (string, bool), fn func(field, key string, value any) error) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		field, ok := resolve(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		if prev, dup := seen[field]; dup {
			return fmt.Errorf("%w: %q and %q both set %s", ErrDuplicateField, prev, key, field)
		}
		seen[field] = key
		if err := fn(field, key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

func stringValue(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q expects a string, got %T", ErrFieldType, key, value)
	}
	return s, nil
}

func boolValue(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q expects a boolean, got %T", ErrFieldType, key, value)
	}
	return b, nil
}
