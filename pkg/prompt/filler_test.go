package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstore/pkg/formstate"
)

type stubDriver struct {
	inputs       []string
	confirm      []bool
	selectIdx    []int
	textAreas    []string
	infoMessages []string

	inputDefaults []string
	inputPos      int
	confirmPos    int
	selectPos     int
	textPos       int

	infoErr error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputDefaults = append(s.inputDefaults, cfg.Default)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return s.infoErr
}

func TestFillContact(t *testing.T) {
	c := formstate.NewContainer()
	c.SetContactForm(formstate.ContactPatch{Phone: formstate.String("0801")})

	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace", "ada@example.com", "0802"},
		textAreas: []string{"When does term start?"},
	}

	var changes int
	c.Subscribe(func(formstate.Change) { changes++ })

	if err := NewFiller(c, WithDriver(driver)).FillContact(context.Background()); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := formstate.ContactForm{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "0802",
		Message:  "When does term start?",
	}
	if diff := cmp.Diff(want, c.ContactForm()); diff != "" {
		t.Fatalf("contact mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "", "0801"}, driver.inputDefaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if changes != 4 {
		t.Fatalf("expected one notification per field, got %d", changes)
	}
}

func TestFillTrademark_WithoutSlogan(t *testing.T) {
	c := formstate.NewContainer()
	driver := &stubDriver{
		inputs:    []string{"Acme", "Acme Ltd", "Education", "Class 41"},
		confirm:   []bool{true, false},
		textAreas: []string{"After-school tutoring"},
	}

	if err := NewFiller(c, WithDriver(driver)).Fill(context.Background(), formstate.RecordTrademark); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := formstate.TrademarkInquiry{
		MarkName:            "Acme",
		HasLogo:             true,
		BusinessName:        "Acme Ltd",
		BusinessIndustry:    "Education",
		BusinessDescription: "After-school tutoring",
		TrademarkCategory:   "Class 41",
	}
	if diff := cmp.Diff(want, c.TrademarkInquiry()); diff != "" {
		t.Fatalf("trademark mismatch (-want +got):\n%s", diff)
	}
}

func TestFillTrademark_SloganAndCategorySelect(t *testing.T) {
	c := formstate.NewContainer()
	driver := &stubDriver{
		inputs:    []string{"Acme", "Built to last", "Acme Ltd", "Education"},
		confirm:   []bool{false, true},
		textAreas: []string{""},
		selectIdx: []int{-1, 1},
	}

	filler := NewFiller(c, WithDriver(driver), WithCategories([]string{"Class 16", " ", "Class 41"}))
	if err := filler.FillTrademark(context.Background()); err != nil {
		t.Fatalf("fill: %v", err)
	}

	got := c.TrademarkInquiry()
	if !got.HasSlogan || got.SloganText != "Built to last" {
		t.Fatalf("slogan not captured: %+v", got)
	}
	if got.TrademarkCategory != "Class 41" {
		t.Fatalf("unexpected category %q", got.TrademarkCategory)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one message for invalid selection, got %v", driver.infoMessages)
	}
}

func TestFillTrademark_GivesUpOnRepeatedInvalidCategory(t *testing.T) {
	c := formstate.NewContainer()
	driver := &stubDriver{
		inputs:    []string{"Acme", "Acme Ltd", "Education"},
		confirm:   []bool{false, false},
		textAreas: []string{""},
		selectIdx: []int{7, -1, 9, 0},
	}

	err := NewFiller(c, WithDriver(driver), WithCategories([]string{"Class 41"})).FillTrademark(context.Background())
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
	if driver.selectPos != 3 {
		t.Fatalf("expected 3 select attempts, got %d", driver.selectPos)
	}
	if got := c.TrademarkInquiry().TrademarkCategory; got != "" {
		t.Fatalf("category should stay unset, got %q", got)
	}
}

func TestFillTrademark_ReturnsInfoError(t *testing.T) {
	infoErr := errors.New("terminal closed")
	driver := &stubDriver{
		inputs:    []string{"Acme", "Acme Ltd", "Education"},
		confirm:   []bool{false, false},
		textAreas: []string{""},
		selectIdx: []int{-1, 0},
		infoErr:   infoErr,
	}

	err := NewFiller(formstate.NewContainer(), WithDriver(driver), WithCategories([]string{"Class 41"})).FillTrademark(context.Background())
	if !errors.Is(err, infoErr) {
		t.Fatalf("expected info error, got %v", err)
	}
	if driver.selectPos != 1 {
		t.Fatalf("expected select to stop after the failed message, got %d attempts", driver.selectPos)
	}
}

func TestFillContact_StopsOnDriverError(t *testing.T) {
	c := formstate.NewContainer()
	driver := &stubDriver{inputs: []string{"Ada"}}

	err := NewFiller(c, WithDriver(driver)).FillContact(context.Background())
	if err == nil {
		t.Fatalf("expected error when prompts run out")
	}
	if got := c.ContactForm().FullName; got != "Ada" {
		t.Fatalf("answers before the error should be kept, got %q", got)
	}
}

func TestFill_Errors(t *testing.T) {
	if err := NewFiller(nil, WithDriver(&stubDriver{})).FillContact(context.Background()); !errors.Is(err, ErrNoContainer) {
		t.Fatalf("expected ErrNoContainer, got %v", err)
	}
	if err := NewFiller(formstate.NewContainer(), WithDriver(&stubDriver{})).Fill(context.Background(), "newsletter"); err == nil {
		t.Fatalf("expected error for unknown record")
	}
}
