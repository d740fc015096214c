// Package xconfig loads configuration from YAML files and the environment.
// Files are merged in order, then environment variables override; fields a
// source does not mention keep their previous value.
package xconfig

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Options struct {
	files     []string
	envPrefix string
}

type Option func(*Options)

// WithFiles appends YAML files to load. Missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

// WithEnv enables environment overrides with the given prefix: a field tagged
// `yaml:"threshold"` inside a struct tagged `yaml:"split"` is overridden by
// PREFIX_SPLIT_THRESHOLD.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// Load fills config, which must be a pointer to a struct, from the configured
// sources.
func Load(config interface{}, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	v := reflect.ValueOf(config)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xconfig: config must be a non-nil pointer to a struct")
	}

	for _, filename := range opts.files {
		if err := loadFromFile(config, filename); err != nil {
			return fmt.Errorf("xconfig: failed to load file %s: %w", filename, err)
		}
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(v.Elem(), strings.ToUpper(opts.envPrefix)); err != nil {
			return fmt.Errorf("xconfig: failed to load from environment: %w", err)
		}
	}

	return nil
}

func loadFromFile(config interface{}, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, config)
}

func loadFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		tagName := fieldTagName(fieldType)
		if tagName == "" {
			continue
		}

		envKey := prefix + "_" + strings.ToUpper(tagName)

		if field.Kind() == reflect.Struct {
			if err := loadFromEnv(field, envKey); err != nil {
				return err
			}
			continue
		}

		raw, ok := os.LookupEnv(envKey)
		if !ok {
			continue
		}

		if err := setField(field, raw); err != nil {
			return fmt.Errorf("%s: %w", envKey, err)
		}
	}

	return nil
}

func fieldTagName(fieldType reflect.StructField) string {
	tag := fieldType.Tag.Get("yaml")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}

	return nil
}
