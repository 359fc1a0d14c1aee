package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formstore/pkg/formstate"
)

const maxSelectAttempts = 3

var labels = map[string]string{
	formstate.FieldFullName:            "Full name",
	formstate.FieldEmail:               "Email",
	formstate.FieldPhone:               "Phone",
	formstate.FieldMessage:             "Message",
	formstate.FieldMarkName:            "Mark name",
	formstate.FieldHasLogo:             "Does the mark include a logo?",
	formstate.FieldHasSlogan:           "Does the mark include a slogan?",
	formstate.FieldSloganText:          "Slogan",
	formstate.FieldBusinessName:        "Business name",
	formstate.FieldBusinessIndustry:    "Business industry",
	formstate.FieldBusinessDescription: "Business description",
	formstate.FieldTrademarkCategory:   "Trademark category",
}

// Option configures a Filler.
type Option func(*Filler)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithCategories offers a fixed list of trademark categories as a select
// instead of free text.
func WithCategories(categories []string) Option {
	return func(f *Filler) {
		f.categories = nil
		for _, category := range categories {
			if trimmed := strings.TrimSpace(category); trimmed != "" {
				f.categories = append(f.categories, trimmed)
			}
		}
	}
}

// Filler walks a visitor through a form and writes each answer to the
// container as soon as it is given, so observers see the draft grow field by
// field.
type Filler struct {
	container  *formstate.Container
	driver     Driver
	categories []string
}

// NewFiller returns a Filler writing to c. The survey driver is used unless
// WithDriver is given.
func NewFiller(c *formstate.Container, options ...Option) *Filler {
	f := &Filler{
		container: c,
		driver:    NewSurveyDriver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fill dispatches to FillContact or FillTrademark.
func (f *Filler) Fill(ctx context.Context, record formstate.Record) error {
	switch record {
	case formstate.RecordContact:
		return f.FillContact(ctx)
	case formstate.RecordTrademark:
		return f.FillTrademark(ctx)
	default:
		return fmt.Errorf("prompt: unknown record %q", record)
	}
}

// FillContact prompts for every contact field, offering the current value as
// the default.
func (f *Filler) FillContact(ctx context.Context) error {
	if f.container == nil {
		return ErrNoContainer
	}
	current := f.container.ContactForm()

	steps := []struct {
		field string
		value string
		set   func(string) formstate.ContactPatch
	}{
		{formstate.FieldFullName, current.FullName, func(v string) formstate.ContactPatch { return formstate.ContactPatch{FullName: &v} }},
		{formstate.FieldEmail, current.Email, func(v string) formstate.ContactPatch { return formstate.ContactPatch{Email: &v} }},
		{formstate.FieldPhone, current.Phone, func(v string) formstate.ContactPatch { return formstate.ContactPatch{Phone: &v} }},
	}
	for _, step := range steps {
		answer, err := f.driver.Input(ctx, InputConfig{Message: labels[step.field], Default: step.value})
		if err != nil {
			return err
		}
		f.container.SetContactForm(step.set(answer))
	}

	message, err := f.driver.TextArea(ctx, TextAreaConfig{
		Message: labels[formstate.FieldMessage],
		Default: current.Message,
	})
	if err != nil {
		return err
	}
	f.container.SetContactForm(formstate.ContactPatch{Message: &message})
	return nil
}

// FillTrademark prompts for the trademark inquiry. The slogan text is asked
// only when the visitor says the mark has a slogan.
func (f *Filler) FillTrademark(ctx context.Context) error {
	if f.container == nil {
		return ErrNoContainer
	}
	current := f.container.TrademarkInquiry()

	markName, err := f.input(ctx, formstate.FieldMarkName, current.MarkName)
	if err != nil {
		return err
	}
	f.container.SetTrademarkInquiry(formstate.TrademarkPatch{MarkName: &markName})

	hasLogo, err := f.driver.Confirm(ctx, ConfirmConfig{Message: labels[formstate.FieldHasLogo], Default: current.HasLogo})
	if err != nil {
		return err
	}
	f.container.SetTrademarkInquiry(formstate.TrademarkPatch{HasLogo: &hasLogo})

	hasSlogan, err := f.driver.Confirm(ctx, ConfirmConfig{Message: labels[formstate.FieldHasSlogan], Default: current.HasSlogan})
	if err != nil {
		return err
	}
	f.container.SetTrademarkInquiry(formstate.TrademarkPatch{HasSlogan: &hasSlogan})

	if hasSlogan {
		slogan, err := f.input(ctx, formstate.FieldSloganText, current.SloganText)
		if err != nil {
			return err
		}
		f.container.SetTrademarkInquiry(formstate.TrademarkPatch{SloganText: &slogan})
	}

	businessName, err := f.input(ctx, formstate.FieldBusinessName, current.BusinessName)
	if err != nil {
		return err
	}
	f.container.SetTrademarkInquiry(formstate.TrademarkPatch{BusinessName: &businessName})

	industry, err := f.input(ctx, formstate.FieldBusinessIndustry, current.BusinessIndustry)
	if err != nil {
		return err
	}
	f.container.SetTrademarkInquiry(formstate.TrademarkPatch{BusinessIndustry: &industry})

	description, err := f.driver.TextArea(ctx, TextAreaConfig{
		Message: labels[formstate.FieldBusinessDescription],
		Default: current.BusinessDescription,
	})
	if err != nil {
		return err
	}
	f.container.SetTrademarkInquiry(formstate.TrademarkPatch{BusinessDescription: &description})

	category, err := f.category(ctx, current.TrademarkCategory)
	if err != nil {
		return err
	}
	f.container.SetTrademarkInquiry(formstate.TrademarkPatch{TrademarkCategory: &category})
	return nil
}

func (f *Filler) input(ctx context.Context, field, current string) (string, error) {
	return f.driver.Input(ctx, InputConfig{Message: labels[field], Default: current})
}

func (f *Filler) category(ctx context.Context, current string) (string, error) {
	if len(f.categories) == 0 {
		return f.input(ctx, formstate.FieldTrademarkCategory, current)
	}
	for attempt := 1; ; attempt++ {
		idx, err := f.driver.Select(ctx, SelectConfig{
			Message:      labels[formstate.FieldTrademarkCategory],
			Options:      f.categories,
			DefaultIndex: indexOf(f.categories, current),
		})
		if err != nil {
			return "", err
		}
		if idx >= 0 && idx < len(f.categories) {
			return f.categories[idx], nil
		}
		if attempt >= maxSelectAttempts {
			return "", fmt.Errorf("%w: trademark category index %d", ErrInvalidSelection, idx)
		}
		if err := f.driver.Info(ctx, "Invalid trademark category selection"); err != nil {
			return "", err
		}
	}
}
