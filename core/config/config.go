package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"sptid/core/language"
	"sptid/core/logger"
	"sptid/core/server"
	"sptid/feature/items"
	"sptid/feature/locale"
	"sptid/feature/overrides"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the local lookup API.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Data holds the runtime table locations and the active language.
	Data items.Config `mapstructure:"data"`
	// Build holds the inputs and output of the table build.
	Build locale.Config `mapstructure:"build"`
	// Workspace holds the override file search settings.
	Workspace overrides.Config `mapstructure:"workspace"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATA_LANGUAGE -> data.language)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("language", validateLanguage)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	return v
}

func validateLanguage(fl validator.FieldLevel) bool {
	return language.IsSupported(fl.Field().String())
}

// Validate checks every section against its `validate` tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, describe(e))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// describe renders a field error using the config key, e.g. data.language.
func describe(e validator.FieldError) string {
	key := e.Namespace()
	if i := strings.Index(key, "."); i >= 0 {
		key = key[i+1:]
	}
	switch e.Tag() {
	case "required":
		return key + " is required"
	case "language":
		return fmt.Sprintf("%s: unsupported language %q", key, e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", key, e.Param())
	case "numeric":
		return key + " must be numeric"
	case "gte", "lte":
		return fmt.Sprintf("%s must be %s %s", key, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", key, e.Tag())
	}
}
