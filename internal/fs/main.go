package fs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/wrike/promabbix/internal/logging"
	"github.com/wrike/promabbix/internal/util"
	"gopkg.in/yaml.v3"
)

// DataLoader reads configuration documents that may be authored as
// YAML or JSON; the format is sniffed, not declared.
type DataLoader struct {
	// In is the stream LoadFromStdin reads. It defaults to os.Stdin.
	In io.Reader
}

func NewDataLoader() *DataLoader {
	return &DataLoader{In: os.Stdin}
}

// LoadFromFile reads and parses the document at path. A leading "~"
// is expanded to the user's home directory.
func (l *DataLoader) LoadFromFile(path string) (any, error) {
	raw, err := os.ReadFile(util.ExpandUser(path))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return parseData(raw)
}

// LoadFromStdin parses a document from the input stream. Empty input
// is not an error; it loads as an empty document.
func (l *DataLoader) LoadFromStdin() (any, error) {
	raw, err := io.ReadAll(l.In)
	if err != nil {
		return nil, fmt.Errorf("error reading from STDIN: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		log.Log.Warn("No data received from STDIN")
		return map[string]any{}, nil
	}
	return parseData(raw)
}

// parseData tries YAML first and falls back to JSON. YAML covers most
// JSON documents too; the fallback catches JSON that YAML rejects,
// like tab-indented files.
func parseData(raw []byte) (any, error) {
	var fromYAML any
	yamlErr := yaml.Unmarshal(raw, &fromYAML)
	if yamlErr == nil && fromYAML != nil {
		return fromYAML, nil
	}
	yamlCause := "parser returned an empty document"
	if yamlErr != nil {
		yamlCause = yamlErr.Error()
	}

	var fromJSON any
	jsonErr := json.Unmarshal(raw, &fromJSON)
	if jsonErr == nil {
		return fromJSON, nil
	}
	return nil, fmt.Errorf("failed to parse as YAML (%s) or JSON (%s)", yamlCause, jsonErr)
}

// DataSaver writes generated output, choosing the on-disk format from
// the destination's extension.
type DataSaver struct {
	// Out is the stream SaveToStdout writes. It defaults to os.Stdout.
	Out io.Writer
}

func NewDataSaver() *DataSaver {
	return &DataSaver{Out: os.Stdout}
}

// SaveToFile writes data to path: indented JSON for .json, YAML for
// .yaml/.yml, and a plain-text passthrough for anything else. String
// data that does not parse as the target format is written as-is.
func (s *DataSaver) SaveToFile(data any, path string) error {
	expanded := util.ExpandUser(path)
	formatted := formatForExtension(data, strings.ToLower(filepath.Ext(expanded)))
	if err := os.WriteFile(expanded, []byte(formatted), 0o644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	log.Log.Infof("Data saved to %s", expanded)
	return nil
}

// SaveToStdout writes data to the output stream, pretty-printing JSON
// text and always terminating with a newline.
func (s *DataSaver) SaveToStdout(data any) error {
	var output string
	switch v := data.(type) {
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			output = jsonIndent(parsed)
		} else {
			output = v
		}
	case map[string]any, []any:
		output = jsonIndent(v)
	default:
		output = fmt.Sprintf("%v", v)
	}

	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	_, err := io.WriteString(s.Out, output)
	return err
}

func formatForExtension(data any, ext string) string {
	switch ext {
	case ".json":
		return formatAsJSON(data)
	case ".yaml", ".yml":
		return formatAsYAML(data)
	default:
		return formatAsDefault(data)
	}
}

func formatAsJSON(data any) string {
	if text, ok := data.(string); ok {
		var parsed any
		if err := json.Unmarshal([]byte(text), &parsed); err != nil {
			log.Log.Warn("String is not valid data format, saving as plain text")
			return text
		}
		return jsonIndent(parsed)
	}
	return jsonIndent(data)
}

func formatAsYAML(data any) string {
	if text, ok := data.(string); ok {
		var parsed any
		if err := yaml.Unmarshal([]byte(text), &parsed); err != nil {
			log.Log.Warn("String is not valid data format, saving as plain text")
			return text
		}
		if parsed == nil {
			return text
		}
		data = parsed
	}
	out, err := util.YamlStrRepr(data, 2)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return out
}

func formatAsDefault(data any) string {
	switch v := data.(type) {
	case string:
		return v
	case map[string]any, []any:
		return jsonIndent(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func jsonIndent(data any) string {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(out)
}
