package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

const defaultAPIURL = "https://api.escuelajs.co/api/v1/products"

// Config holds runtime settings for the CLI app.
type Config struct {
	APIURL   string `env:"API_URL" envDefault:"https://api.escuelajs.co/api/v1/products" validate:"required,url"`
	PageSize int    `env:"PAGE_SIZE" envDefault:"10" validate:"oneof=5 10 20 50"`
	Locale   string `env:"LOCALE" envDefault:"en" validate:"required"`
	LogPath  string `env:"LOG_PATH" envDefault:"storefront.log"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`

	// ImagePreview draws product images inline in the detail pane via chafa.
	ImagePreview  bool   `env:"IMAGE_PREVIEW" envDefault:"false"`
	MarkdownStyle string `env:"MARKDOWN_STYLE" envDefault:"dark" validate:"oneof=dark light notty ascii pink dracula"`
}

func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "STOREFRONT_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if strings.TrimSpace(cfg.APIURL) == "" {
		cfg.APIURL = defaultAPIURL
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%s failed %q validation: %v", fe.Field(), fe.Tag(), fe.Value())
		}
		return err
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("APIURL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("APIURL must use http or https: %s", c.APIURL)
	}
	if _, err := c.LanguageTag(); err != nil {
		return err
	}
	return nil
}

// LanguageTag returns the collation locale used for name sorting.
func (c Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("Locale must be a BCP 47 tag: %s", c.Locale)
	}
	return tag, nil
}
