// Package site loads the static site metadata (title, head links, trademark
// categories) and the color/spacing theme, and exposes the theme as a
// go-theme manifest and renderer configuration.
package site
