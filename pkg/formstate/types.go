package formstate

// Record names one of the drafts held by a Container.
type Record string

const (
	// RecordContact identifies the contact form draft.
	RecordContact Record = "contact"
	// RecordTrademark identifies the trademark inquiry draft.
	RecordTrademark Record = "trademark"
)

// Canonical field names for ContactForm.
const (
	FieldFullName = "fullName"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldMessage  = "message"
)

// Canonical field names for TrademarkInquiry.
const (
	FieldMarkName            = "markName"
	FieldHasLogo             = "hasLogo"
	FieldHasSlogan           = "hasSlogan"
	FieldSloganText          = "sloganText"
	FieldBusinessName        = "businessName"
	FieldBusinessIndustry    = "businessIndustry"
	FieldBusinessDescription = "businessDescription"
	FieldTrademarkCategory   = "trademarkCategory"
)

// ContactForm is a visitor's contact submission draft.
type ContactForm struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Message  string `json:"message" yaml:"message"`
}

// TrademarkInquiry is a visitor's trademark registration inquiry draft.
type TrademarkInquiry struct {
	MarkName            string `json:"markName" yaml:"markName"`
	HasLogo             bool   `json:"hasLogo" yaml:"hasLogo"`
	HasSlogan           bool   `json:"hasSlogan" yaml:"hasSlogan"`
	SloganText          string `json:"sloganText" yaml:"sloganText"`
	BusinessName        string `json:"businessName" yaml:"businessName"`
	BusinessIndustry    string `json:"businessIndustry" yaml:"businessIndustry"`
	BusinessDescription string `json:"businessDescription" yaml:"businessDescription"`
	TrademarkCategory   string `json:"trademarkCategory" yaml:"trademarkCategory"`
}

// Snapshot carries both records at a point in time.
type Snapshot struct {
	Contact   ContactForm      `json:"contact" yaml:"contact"`
	Trademark TrademarkInquiry `json:"trademark" yaml:"trademark"`
}

// Change describes a successful update. Fields lists the canonical names
// written by the update, in record order.
type Change struct {
	Record Record
	Fields []string
}

// Observer is notified after every successful update.
type Observer func(Change)

// ContactFields returns the fixed field set of ContactForm in display order.
func ContactFields() []string {
	return []string{FieldFullName, FieldEmail, FieldPhone, FieldMessage}
}

// TrademarkFields returns the fixed field set of TrademarkInquiry in display
// order.
func TrademarkFields() []string {
	return []string{
		FieldMarkName,
		FieldHasLogo,
		FieldHasSlogan,
		FieldSloganText,
		FieldBusinessName,
		FieldBusinessIndustry,
		FieldBusinessDescription,
		FieldTrademarkCategory,
	}
}
