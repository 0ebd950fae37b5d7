package generatetemplate

import (
	"fmt"

	"github.com/wrike/promabbix/internal/fs"
	"github.com/wrike/promabbix/internal/render"
	"github.com/wrike/promabbix/internal/validation"
)

// Options carries the command-line parameters for one run.
type Options struct {
	// ConfigPath is the unified configuration source, "-" for STDIN.
	ConfigPath string
	// OutputPath is the template destination, "-" for STDOUT.
	OutputPath string
	// TemplatesDir overrides the bundled template set when non-empty.
	TemplatesDir string
	// TemplateName selects the template to render.
	TemplateName string
	// SchemaPath overrides the bundled validation schema when non-empty.
	SchemaPath string
	// ZabbixVersion is the target export format version.
	ZabbixVersion string
	ValidateOnly  bool
	JSONOutput    bool
}

// Run loads and validates the configuration and, unless ValidateOnly is
// set, renders it into a Zabbix template export document.
//
// Validation phases:
// - Schema validation: required fields, value kinds, enums, patterns
// - Cross-reference validation: alert names against wiki documentation,
//   skipped when the config has no alerting rules or no wiki knowledgebase
//
// The returned error covers infrastructure failures (unreadable input,
// rendering, saving). Validation problems land in the report with
// Success set to false.
func Run(opts Options) (*ValidationReport, error) {
	config, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	progress := NewProgressPrinter(opts.JSONOutput)
	report := NewValidationReport(configLabel(opts.ConfigPath))

	runValidation(opts.SchemaPath, config, report, progress)

	if opts.JSONOutput {
		OutputJSON(report)
	}
	if !report.Success || opts.ValidateOnly {
		if !opts.JSONOutput {
			OutputHuman(report)
		}
		return report, nil
	}

	renderer, err := render.NewRender(opts.TemplatesDir, opts.ZabbixVersion)
	if err != nil {
		return report, err
	}

	progress.Printf("Rendering template %s... ", opts.TemplateName)
	content, err := renderer.RenderFile(opts.TemplateName, config)
	if err != nil {
		progress.Println("FAILED")
		return report, err
	}
	progress.Println("OK")

	saver := fs.NewDataSaver()
	if opts.OutputPath == "-" {
		return report, saver.SaveToStdout(content)
	}
	return report, saver.SaveToFile(content, opts.OutputPath)
}

func loadConfig(path string) (map[string]any, error) {
	loader := fs.NewDataLoader()

	var (
		data any
		err  error
	)
	if path == "-" {
		data, err = loader.LoadFromStdin()
	} else {
		data, err = loader.LoadFromFile(path)
	}
	if err != nil {
		return nil, err
	}

	config, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("configuration root must be a mapping, got %T", data)
	}
	return config, nil
}

func runValidation(schemaPath string, config map[string]any, report *ValidationReport, progress *ProgressPrinter) {
	progress.Print("Validating configuration schema... ")
	validator, err := validation.NewConfigValidator(schemaPath)
	if err != nil {
		progress.Println("FAILED")
		report.AddCheck(CheckResult{
			Name:    "Schema validation",
			Passed:  false,
			Message: err.Error(),
		})
		return
	}
	if err := validator.ValidateSchema(config); err != nil {
		progress.Println("FAILED")
		report.AddCheck(CheckResult{
			Name:    "Schema validation",
			Passed:  false,
			Message: err.Error(),
		})
		return
	}
	progress.Println("OK")
	report.AddCheck(CheckResult{Name: "Schema validation", Passed: true})

	progress.Print("Validating cross-references... ")
	if !validator.ShouldValidateCrossReferences(config) {
		progress.Println("SKIPPED")
		report.AddCheck(CheckResult{
			Name:    "Cross-reference validation",
			Passed:  true,
			Skipped: true,
			Message: "config has no alerting rules or no wiki knowledgebase",
		})
		return
	}
	if err := validator.ValidateCrossReferences(config); err != nil {
		progress.Println("FAILED")
		report.AddCheck(CheckResult{
			Name:    "Cross-reference validation",
			Passed:  false,
			Message: err.Error(),
		})
		return
	}
	progress.Println("OK")
	report.AddCheck(CheckResult{Name: "Cross-reference validation", Passed: true})
}

func configLabel(path string) string {
	if path == "-" {
		return "STDIN"
	}
	return path
}
