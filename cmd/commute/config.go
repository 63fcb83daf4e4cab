package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// configValidate checks Config tags and reports fields by their YAML key.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	configValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	})
}

// Config is the CLI configuration. Flags override file values.
type Config struct {
	// Structure selects the ambient structure, e.g. "dihedral"
	Structure string `yaml:"structure" validate:"required"`
	// Order parametrises the structure (polygon sides, degree, modulus)
	Order int `yaml:"order" validate:"min=1"`
	// Pivots lists centralizer pivots in the structure's element syntax
	Pivots []string `yaml:"pivots"`
	// MaxExponent bounds the power-law checks
	MaxExponent int `yaml:"max_exponent" validate:"gte=0"`
	// Samples bounds the elements used by the law checker (0 = all)
	Samples int `yaml:"samples" validate:"gte=0"`
	// Parallelism bounds goroutines per membership scan (≤ 1 = sequential)
	Parallelism int `yaml:"parallelism"`
	// Output is "text" or "yaml"
	Output string `yaml:"output" validate:"oneof=text yaml"`
	// LogLevel is debug, info, warn or error
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Structure:   "dihedral",
		Order:       4,
		MaxExponent: 6,
		Samples:     24,
		Parallelism: 1,
		Output:      "text",
		LogLevel:    "info",
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	err := configValidate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
