// Package prompt fills form drafts from an interactive terminal session. The
// Driver interface keeps the prompting logic testable; SurveyDriver is the
// terminal implementation.
package prompt
