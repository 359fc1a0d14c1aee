package site

import (
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// FaviconAsset is the manifest asset key of the site favicon.
const FaviconAsset = "favicon"

// ThemeVersion is stamped on generated manifests.
const ThemeVersion = "1.0.0"

// Tokens flattens the theme scales into design tokens: "primary",
// "secondary", "accent-<shade>", "height-<name>" and "z-<name>".
func (t ThemeConfig) Tokens() map[string]string {
	out := make(map[string]string, 2+len(t.Accent)+len(t.Heights)+len(t.ZIndex))
	if t.Primary != "" {
		out["primary"] = t.Primary
	}
	if t.Secondary != "" {
		out["secondary"] = t.Secondary
	}
	for shade, color := range t.Accent {
		out["accent-"+shade] = color
	}
	for name, value := range t.Heights {
		out["height-"+name] = value
	}
	for name, value := range t.ZIndex {
		out["z-"+name] = value
	}
	return out
}

// Manifest builds a go-theme manifest from the site theme.
func (c *Config) Manifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:    c.themeName(),
		Version: ThemeVersion,
		Tokens:  c.Theme.Tokens(),
		Assets: theme.Assets{
			Prefix: c.AssetPrefix,
			Files:  map[string]string{},
		},
	}
	if c.Favicon != "" {
		manifest.Assets.Files[FaviconAsset] = c.Favicon
	}
	if len(c.Theme.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(c.Theme.Variants))
		for name, tokens := range c.Theme.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: copyStringMap(tokens)}
		}
	}
	return manifest
}

// RendererConfig registers the manifest with a go-theme registry and resolves
// tokens, CSS custom properties and asset URLs for variant. Variant tokens
// overwrite base tokens of the same name. An empty variant selects the base
// theme.
func (c *Config) RendererConfig(variant string) (*theme.RendererConfig, error) {
	manifest := c.Manifest()

	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("site: register theme %q: %w", manifest.Name, err)
	}

	tokens := copyStringMap(manifest.Tokens)
	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("site: theme %q has no variant %q", manifest.Name, variant)
		}
		for name, value := range v.Tokens {
			tokens[name] = value
		}
	}

	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)
	return &theme.RendererConfig{
		Theme:   manifest.Name,
		Variant: variant,
		Tokens:  tokens,
		CSSVars: CSSVars(tokens),
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") {
				return file
			}
			return path.Join("/", prefix, file)
		},
	}, nil
}

// CSSVars maps tokens to CSS custom property names.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for name, value := range tokens {
		out["--"+name] = value
	}
	return out
}

// CSSVarsStyle renders vars as a :root block with properties sorted by name.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func (c *Config) themeName() string {
	if name := strings.TrimSpace(c.Theme.Name); name != "" {
		return name
	}
	return "default"
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
