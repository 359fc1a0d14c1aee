package formstate

// ContactPatch is a partial update to ContactForm. Nil fields are left
// untouched; non-nil fields overwrite the stored value.
type ContactPatch struct {
	FullName *string
	Email    *string
	Phone    *string
	Message  *string
}

// TrademarkPatch is a partial update to TrademarkInquiry.
type TrademarkPatch struct {
	MarkName            *string
	HasLogo             *bool
	HasSlogan           *bool
	SloganText          *string
	BusinessName        *string
	BusinessIndustry    *string
	BusinessDescription *string
	TrademarkCategory   *string
}

// String returns a pointer to v for use in patches.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v for use in patches.
func Bool(v bool) *bool {
	return &v
}

// Fields returns the canonical names of the fields set in the patch.
func (p ContactPatch) Fields() []string {
	var out []string
	appendIf(&out, p.FullName != nil, FieldFullName)
	appendIf(&out, p.Email != nil, FieldEmail)
	appendIf(&out, p.Phone != nil, FieldPhone)
	appendIf(&out, p.Message != nil, FieldMessage)
	return out
}

// Empty reports whether the patch sets no field.
func (p ContactPatch) Empty() bool {
	return len(p.Fields()) == 0
}

func (p ContactPatch) applyTo(dst *ContactForm) {
	overwrite(&dst.FullName, p.FullName)
	overwrite(&dst.Email, p.Email)
	overwrite(&dst.Phone, p.Phone)
	overwrite(&dst.Message, p.Message)
}

func (p ContactPatch) sanitized(s Sanitizer) ContactPatch {
	if s == nil {
		return p
	}
	return ContactPatch{
		FullName: sanitizeString(s, p.FullName),
		Email:    sanitizeString(s, p.Email),
		Phone:    sanitizeString(s, p.Phone),
		Message:  sanitizeString(s, p.Message),
	}
}

// Fields returns the canonical names of the fields set in the patch.
func (p TrademarkPatch) Fields() []string {
	var out []string
	appendIf(&out, p.MarkName != nil, FieldMarkName)
	appendIf(&out, p.HasLogo != nil, FieldHasLogo)
	appendIf(&out, p.HasSlogan != nil, FieldHasSlogan)
	appendIf(&out, p.SloganText != nil, FieldSloganText)
	appendIf(&out, p.BusinessName != nil, FieldBusinessName)
	appendIf(&out, p.BusinessIndustry != nil, FieldBusinessIndustry)
	appendIf(&out, p.BusinessDescription != nil, FieldBusinessDescription)
	appendIf(&out, p.TrademarkCategory != nil, FieldTrademarkCategory)
	return out
}

// Empty reports whether the patch sets no field.
func (p TrademarkPatch) Empty() bool {
	return len(p.Fields()) == 0
}

func (p TrademarkPatch) applyTo(dst *TrademarkInquiry) {
	overwrite(&dst.MarkName, p.MarkName)
	overwrite(&dst.HasLogo, p.HasLogo)
	overwrite(&dst.HasSlogan, p.HasSlogan)
	overwrite(&dst.SloganText, p.SloganText)
	overwrite(&dst.BusinessName, p.BusinessName)
	overwrite(&dst.BusinessIndustry, p.BusinessIndustry)
	overwrite(&dst.BusinessDescription, p.BusinessDescription)
	overwrite(&dst.TrademarkCategory, p.TrademarkCategory)
}

func (p TrademarkPatch) sanitized(s Sanitizer) TrademarkPatch {
	if s == nil {
		return p
	}
	out := p
	out.MarkName = sanitizeString(s, p.MarkName)
	out.SloganText = sanitizeString(s, p.SloganText)
	out.BusinessName = sanitizeString(s, p.BusinessName)
	out.BusinessIndustry = sanitizeString(s, p.BusinessIndustry)
	out.BusinessDescription = sanitizeString(s, p.BusinessDescription)
	out.TrademarkCategory = sanitizeString(s, p.TrademarkCategory)
	return out
}

func overwrite[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func appendIf(out *[]string, cond bool, name string) {
	if cond {
		*out = append(*out, name)
	}
}

func sanitizeString(s Sanitizer, v *string) *string {
	if v == nil {
		return nil
	}
	cleaned := s.Sanitize(*v)
	return &cleaned
}
