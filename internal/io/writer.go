// Package io provides serialization of Series data to CSV and JSON, as
// text or written synchronously to a file. The CSV form is a single
// column: a literal header line with the column name, then one raw value
// per line. Values containing the delimiter are NOT escaped; this is a
// documented limitation of the format, which is why the encoding/csv
// writer (which would quote them) is not used here.
package io

import (
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/go-tabby/tabby/internal/config"
	"github.com/go-tabby/tabby/internal/value"
)

// logger is a no-op unless wired up by the host application.
var logger = zerolog.Nop()

// SetLogger installs the logger used for file-write debug events.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// CSVOptions configures CSV output.
type CSVOptions struct {
	Name string // column name; the configured default when empty
}

// JSONOptions configures JSON output.
type JSONOptions struct {
	Name     string // object key; the configured default when empty
	Prettify *bool  // tab indentation; the configured default when nil
}

func csvName(opts []CSVOptions) string {
	if len(opts) > 0 && opts[0].Name != "" {
		return opts[0].Name
	}
	return config.GetGlobalConfig().ColumnName
}

func jsonSettings(opts []JSONOptions) (string, bool) {
	cfg := config.GetGlobalConfig()
	name := cfg.ColumnName
	prettify := cfg.PrettyJSON
	if len(opts) > 0 {
		if opts[0].Name != "" {
			name = opts[0].Name
		}
		if opts[0].Prettify != nil {
			prettify = *opts[0].Prettify
		}
	}
	return name, prettify
}

// CSVText builds the single-column CSV text for the values: the header
// line, then one formatted value per line, with no trailing newline.
func CSVText(values []any, opts ...CSVOptions) string {
	var b strings.Builder
	b.WriteString(csvName(opts))
	for _, v := range values {
		b.WriteByte('\n')
		b.WriteString(value.Format(v))
	}
	return b.String()
}

// WriteCSVFile writes the CSV text to a file, whole content in one
// synchronous call.
func WriteCSVFile(path string, values []any, opts ...CSVOptions) error {
	text := CSVText(values, opts...)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return err
	}
	logger.Debug().
		Str("path", path).
		Int("rows", len(values)).
		Msg("wrote series CSV")
	return nil
}

// JSONText builds `{ "<name>": [<values>] }`, pretty-printed with tab
// indentation unless disabled.
func JSONText(values []any, opts ...JSONOptions) (string, error) {
	name, prettify := jsonSettings(opts)
	doc := map[string][]any{name: values}

	var (
		data []byte
		err  error
	)
	if prettify {
		data, err = json.MarshalIndent(doc, "", "\t")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteJSONFile writes the JSON text to a file, whole content in one
// synchronous call.
func WriteJSONFile(path string, values []any, opts ...JSONOptions) error {
	text, err := JSONText(values, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return err
	}
	logger.Debug().
		Str("path", path).
		Int("rows", len(values)).
		Msg("wrote series JSON")
	return nil
}
