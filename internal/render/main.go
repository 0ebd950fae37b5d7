// Package render turns validated configurations into Zabbix template
// export documents via text templates. Templates resolve from a search
// path first, then from the bundled set.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/wrike/promabbix/internal/util"
)

type Render struct {
	searchPath    string
	exportVersion string
}

// NewRender builds a renderer targeting the given Zabbix version.
// searchPath may be empty, in which case only bundled templates
// resolve.
func NewRender(searchPath, zabbixVersion string) (*Render, error) {
	exportVersion, err := ParseExportVersion(zabbixVersion)
	if err != nil {
		return nil, err
	}
	return &Render{
		searchPath:    util.ExpandUser(searchPath),
		exportVersion: exportVersion,
	}, nil
}

// RenderFile executes the named template against data. Missing keys
// are rendering errors rather than silent blanks.
func (r *Render) RenderFile(name string, data map[string]any) (string, error) {
	source, err := r.templateSource(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Funcs(r.funcMap()).Option("missingkey=error").Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out.String(), nil
}

func (r *Render) templateSource(name string) (string, error) {
	if r.searchPath != "" {
		path := filepath.Join(r.searchPath, name)
		if util.IsFile(path) {
			raw, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("failed to read template %s: %w", path, err)
			}
			return string(raw), nil
		}
	}
	if source, ok := bundledTemplates[name]; ok {
		return source, nil
	}
	if r.searchPath == "" {
		return "", fmt.Errorf("template %s not found", name)
	}
	return "", fmt.Errorf("template %s not found in %s", name, r.searchPath)
}

func (r *Render) funcMap() template.FuncMap {
	funcs := FuncMap()
	funcs["zbxExportVersion"] = func() string { return r.exportVersion }
	return funcs
}
