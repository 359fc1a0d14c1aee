// Package summary renders plain-text summaries of form drafts from embedded
// pongo2 templates. Callers can swap the template set through WithTemplates;
// templates are named contact.txt and trademark.txt.
package summary
