package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/izebair/Rezepte/internal/common"
	"github.com/izebair/Rezepte/internal/router"
	"github.com/spf13/viper"
)

// Config carries everything the pipeline and the OneNote sink need. Loaded
// once at startup; configuration problems fail fast here, before any recipe
// text is parsed.
type Config struct {
	// Input and routing.
	InputFile         string
	Notebook          string
	DefaultSection    string
	Separator         string
	PrefixSubcategory bool
	// CategoryMap is either an inline mapping (JSON or "k=v;k2=v2") or a
	// path to a file containing one.
	CategoryMap string

	// Graph / auth.
	ClientID  string
	TenantID  string
	Authority string
	TokenFile string

	// Local state.
	DBPath string

	// PageDelay is the pause between page creations to stay under Graph
	// throttling limits.
	PageDelay time.Duration

	mapping router.Mapping
}

// Load reads the configuration from viper and normalizes paths.
func Load() (*Config, error) {
	c := &Config{
		InputFile:         ExpandPath(viper.GetString("input_file")),
		Notebook:          viper.GetString("notebook"),
		DefaultSection:    viper.GetString("section"),
		Separator:         viper.GetString("category_separator"),
		PrefixSubcategory: viper.GetBool("prefix_subcategory"),
		CategoryMap:       viper.GetString("category_map"),
		ClientID:          viper.GetString("client_id"),
		TenantID:          viper.GetString("tenant_id"),
		Authority:         viper.GetString("authority"),
		TokenFile:         ExpandPath(viper.GetString("token_file")),
		DBPath:            ExpandPath(viper.GetString("db_path")),
		PageDelay:         viper.GetDuration("page_delay"),
	}

	if c.Separator == "" {
		c.Separator = "/"
	}
	if c.TokenFile == "" {
		c.TokenFile = ExpandPath("~/.config/rezepte/token.json")
	}
	if c.DBPath == "" {
		c.DBPath = ExpandPath("~/.local/share/rezepte/rezepte.db")
	}
	if c.PageDelay <= 0 {
		c.PageDelay = 400 * time.Millisecond
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	mapping, err := c.loadMapping()
	if err != nil {
		return nil, err
	}
	c.mapping = mapping

	return c, nil
}

func (c *Config) validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("%w: category separator must be a single character, got %q", common.ErrInvalidConfig, c.Separator)
	}
	return nil
}

// RequireInput ensures an input file is configured. Commands that read
// recipe text call this before doing anything else.
func (c *Config) RequireInput() error {
	if c.InputFile == "" {
		return fmt.Errorf("%w: input_file (REZEPTE_INPUT_FILE)", common.ErrMissingConfig)
	}
	return nil
}

// RequireGraph ensures the Graph credentials needed for an actual import are
// present. A tenant is only required when no authority override is set.
func (c *Config) RequireGraph() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id (REZEPTE_CLIENT_ID)")
	}
	if c.TenantID == "" && c.Authority == "" {
		missing = append(missing, "tenant_id (REZEPTE_TENANT_ID)")
	}
	if c.DefaultSection == "" {
		missing = append(missing, "section (REZEPTE_SECTION)")
	}
	if c.Notebook == "" {
		missing = append(missing, "notebook (REZEPTE_NOTEBOOK)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// Mapping returns the category mapping loaded at startup.
func (c *Config) Mapping() router.Mapping {
	return c.mapping
}

// RouterConfig derives the router configuration.
func (c *Config) RouterConfig() router.Config {
	return router.Config{
		Separator:         c.Separator,
		DefaultSection:    c.DefaultSection,
		PrefixSubcategory: c.PrefixSubcategory,
	}
}

// loadMapping resolves the category_map setting, which holds either an
// inline mapping or a file path.
func (c *Config) loadMapping() (router.Mapping, error) {
	s := strings.TrimSpace(c.CategoryMap)
	if s == "" {
		return router.Mapping{}, nil
	}
	if strings.HasPrefix(s, "{") || strings.Contains(s, "=") {
		return router.ParseMapping(s)
	}
	return router.LoadMapping(ExpandPath(s))
}
