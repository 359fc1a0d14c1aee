// Package formstate holds the visitor form drafts for a single site session.
//
// A Container owns two fixed-shape records, ContactForm and TrademarkInquiry.
// Writes are shallow partial updates: every field present in a patch
// overwrites the stored value, absent fields are left alone, and the field set
// of a record never changes. Readers get snapshots by value and can register
// observers that fire after each successful update.
//
// Typed patches (ContactPatch, TrademarkPatch) cannot name unknown fields.
// Map-based updates (ApplyContactValues, ApplyTrademarkValues) reject unknown
// keys with ErrUnknownField and leave the record untouched.
package formstate
