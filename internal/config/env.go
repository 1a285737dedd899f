// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var durationType = reflect.TypeOf(time.Duration(0))

// setting is one environment-overridable leaf of Config.
type setting struct {
	key   string
	field reflect.Value
}

// settings walks cfg section by section and returns its overridable leaves.
// A leaf key is PREFIX_SECTION_FIELD unless the field carries an explicit
// `env:"KEY"` tag; `env:"-"` and map fields (the line palette) are file-only.
func settings(cfg *Config) []setting {
	var out []setting
	collect(reflect.ValueOf(cfg).Elem(), EnvPrefix, &out)

	return out
}

func collect(v reflect.Value, prefix string, out *[]setting) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field, meta := v.Field(i), t.Field(i)
		tag := meta.Tag.Get("env")
		if !field.CanSet() || tag == "-" || field.Kind() == reflect.Map {
			continue
		}

		key := envKey(prefix, meta.Name)
		if tag != "" {
			key = tag
		}
		if field.Kind() == reflect.Struct && field.Type() != durationType {
			collect(field, key, out)
			continue
		}
		*out = append(*out, setting{key: key, field: field})
	}
}

func envKey(prefix, name string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Keys lists every environment variable Load consults, sorted.
func Keys() []string {
	var keys []string
	for _, s := range settings(Default()) {
		keys = append(keys, s.key)
	}
	keys = append(keys, PathEnv)
	sort.Strings(keys)

	return keys
}

// readFile decodes the YAML document at path over cfg; absent keys keep their values.
func readFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: decode yaml: %w", err)
	}

	return nil
}

// applyEnv overrides cfg from lookup and returns the keys that were set. A
// variable that is present but empty still overrides.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) ([]string, error) {
	var applied []string
	for _, s := range settings(cfg) {
		raw, ok := lookup(s.key)
		if !ok {
			continue
		}
		if err := assign(s.field, raw); err != nil {
			return applied, fmt.Errorf("config: parse %s: %w", s.key, err)
		}
		applied = append(applied, s.key)
	}

	return applied, nil
}

func assign(field reflect.Value, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(parsed)
	case reflect.Int, reflect.Int64:
		parsed, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(parsed)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}

	return nil
}
