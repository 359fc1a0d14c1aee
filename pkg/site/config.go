package site

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Link is a <link> element declared in the site head.
type Link struct {
	Rel         string `yaml:"rel" json:"rel"`
	Href        string `yaml:"href" json:"href"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	CrossOrigin string `yaml:"crossorigin,omitempty" json:"crossorigin,omitempty"`
}

// ThemeConfig carries the color and spacing scales.
type ThemeConfig struct {
	Name      string `env:"SITE_THEME_NAME" env-default:"unilorin" yaml:"name"`
	Primary   string `env:"SITE_THEME_PRIMARY" env-default:"#250372" yaml:"primary"`
	Secondary string `env:"SITE_THEME_SECONDARY" env-default:"#b78d46" yaml:"secondary"`
	// Accent maps shade (100..900) to a color.
	Accent  map[string]string `yaml:"accent"`
	Heights map[string]string `yaml:"heights"`
	ZIndex  map[string]string `yaml:"zIndex"`
	// Variants holds token overrides keyed by variant name.
	Variants map[string]map[string]string `yaml:"variants"`
}

// Config is the site configuration.
type Config struct {
	Title       string `env:"SITE_TITLE" env-default:"UNILORIN Nursery And Primary School" yaml:"title"`
	ProjectName string `env:"SITE_PROJECT_NAME" yaml:"projectName"`
	Lang        string `env:"SITE_LANG" env-default:"en" yaml:"lang"`
	Description string `env:"SITE_DESCRIPTION" yaml:"description"`
	// AssetPrefix is prepended to theme asset paths such as the favicon.
	AssetPrefix string `env:"SITE_ASSET_PREFIX" env-default:"/" yaml:"assetPrefix"`
	Favicon     string `env:"SITE_FAVICON" env-default:"images/unilorin.png" yaml:"favicon"`

	Links               []Link      `yaml:"links"`
	TrademarkCategories []string    `yaml:"trademarkCategories"`
	Theme               ThemeConfig `yaml:"theme"`
}

// Load reads the YAML file at path, applies SITE_* environment overrides and
// fills anything still empty from Default. An empty path reads the
// environment only.
func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if strings.TrimSpace(path) == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("site: could not read config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration of the school site as shipped.
func Default() *Config {
	cfg := &Config{
		Title:       "UNILORIN Nursery And Primary School",
		Lang:        "en",
		AssetPrefix: "/",
		Favicon:     "images/unilorin.png",
		Theme: ThemeConfig{
			Name:      "unilorin",
			Primary:   "#250372",
			Secondary: "#b78d46",
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ProjectName == "" {
		c.ProjectName = c.Title
	}
	if c.Links == nil {
		c.Links = defaultLinks()
	}
	if c.Theme.Accent == nil {
		c.Theme.Accent = defaultAccent()
	}
	if c.Theme.Heights == nil {
		c.Theme.Heights = defaultHeights()
	}
	if c.Theme.ZIndex == nil {
		c.Theme.ZIndex = defaultZIndex()
	}
}

func defaultLinks() []Link {
	return []Link{
		{Rel: "preconnect", Href: "https://fonts.googleapis.com"},
		{Rel: "preconnect", Href: "https://fonts.gstatic.com", CrossOrigin: "anonymous"},
		{Rel: "stylesheet", Href: "https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;500;600;700&display=swap"},
		{Rel: "icon", Type: "image/png", Href: "images/unilorin.png"},
	}
}

func defaultAccent() map[string]string {
	return map[string]string{
		"100": "#f7f1e4",
		"200": "#eeddc1",
		"300": "#e3c896",
		"400": "#d7b46f",
		"500": "#b78d46",
		"600": "#9e7536",
		"700": "#845b2b",
		"800": "#6a451f",
		"900": "#523416",
	}
}

func defaultHeights() map[string]string {
	out := make(map[string]string)
	for _, vh := range []string{"40", "50", "60", "70", "75", "80", "85", "90"} {
		out["screen-"+vh] = vh + "vh"
	}
	return out
}

func defaultZIndex() map[string]string {
	out := map[string]string{"auto": "auto"}
	for i := 10; i <= 150; i += 10 {
		v := fmt.Sprint(i)
		out[v] = v
	}
	return out
}
