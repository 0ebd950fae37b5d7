package generatetemplate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wrike/promabbix/internal/render"
)

const validConfigYAML = `---
groups:
  - name: alerting_rules
    rules:
      - alert: ServiceDown
        expr: up == 0
        labels:
          __zbx_priority: HIGH
zabbix:
  template: service_postgres
  hosts:
    - host_name: postgres-prod
      host_groups: [Prometheus pseudo hosts]
      link_templates: [templ_module_promt_service_postgres]
wiki:
  knowledgebase:
    alerts:
      alertings:
        ServiceDown:
          title: Service down
`

const recordingOnlyYAML = `---
groups:
  - name: recording_rules
    rules:
      - record: service_up
        expr: up
zabbix:
  template: service_minimal
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func defaultOptions(configPath, outputPath string) Options {
	return Options{
		ConfigPath:    configPath,
		OutputPath:    outputPath,
		TemplateName:  render.DefaultTemplateName,
		ZabbixVersion: render.DefaultExportVersion,
	}
}

func TestRunGeneratesTemplate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "template.json")
	opts := defaultOptions(writeConfig(t, validConfigYAML), output)

	report, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !report.Success {
		t.Fatalf("Run() report = %+v, want success", report)
	}

	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output file was not written: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := doc["zabbix_export"]; !ok {
		t.Errorf("output lacks zabbix_export: %s", raw)
	}

	passed, failed, skipped := report.CountResults()
	if passed != 2 || failed != 0 || skipped != 0 {
		t.Errorf("CountResults() = %d/%d/%d, want both phases passed", passed, failed, skipped)
	}
}

func TestRunValidateOnly(t *testing.T) {
	output := filepath.Join(t.TempDir(), "template.json")
	opts := defaultOptions(writeConfig(t, validConfigYAML), output)
	opts.ValidateOnly = true

	report, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !report.Success {
		t.Fatalf("Run() report = %+v, want success", report)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("validate-only run wrote an output file")
	}
}

func TestRunSchemaViolation(t *testing.T) {
	config := writeConfig(t, "groups: []\n")
	output := filepath.Join(t.TempDir(), "template.json")

	report, err := Run(defaultOptions(config, output))
	if err != nil {
		t.Fatalf("Run() returned an infrastructure error for a validation failure: %v", err)
	}
	if report.Success {
		t.Fatal("Run() reported success for a config without zabbix")
	}
	if len(report.Checks) != 1 {
		t.Fatalf("Checks = %+v, want the failed schema phase only", report.Checks)
	}
	check := report.Checks[0]
	if check.Name != "Schema validation" || check.Passed {
		t.Errorf("check = %+v, want a failed schema validation", check)
	}
	if !strings.Contains(check.Message, "'zabbix' is a required property") {
		t.Errorf("check message = %q, want the missing-zabbix violation", check.Message)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("failed validation still wrote an output file")
	}
}

func TestRunCrossReferenceSkipped(t *testing.T) {
	report, err := Run(defaultOptions(writeConfig(t, recordingOnlyYAML), filepath.Join(t.TempDir(), "out.json")))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !report.Success {
		t.Fatalf("Run() report = %+v, want success", report)
	}

	if len(report.Checks) != 2 {
		t.Fatalf("Checks = %+v, want schema and cross-reference entries", report.Checks)
	}
	crossRef := report.Checks[1]
	if crossRef.Name != "Cross-reference validation" || !crossRef.Skipped {
		t.Errorf("cross-reference check = %+v, want it skipped for a recording-only config", crossRef)
	}

	_, _, skipped := report.CountResults()
	if skipped != 1 {
		t.Errorf("CountResults() skipped = %d, want 1", skipped)
	}
}

func TestRunCrossReferenceFailure(t *testing.T) {
	config := strings.Replace(validConfigYAML, "ServiceDown:", "OtherAlert:", 1)

	report, err := Run(defaultOptions(writeConfig(t, config), filepath.Join(t.TempDir(), "out.json")))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if report.Success {
		t.Fatal("Run() reported success for an undocumented alert")
	}
	if len(report.Checks) != 2 {
		t.Fatalf("Checks = %+v, want both phases recorded", report.Checks)
	}
	crossRef := report.Checks[1]
	if crossRef.Passed || crossRef.Skipped {
		t.Errorf("cross-reference check = %+v, want a failure", crossRef)
	}
	if !strings.Contains(crossRef.Message, "Alerts missing wiki documentation: ServiceDown") {
		t.Errorf("check message = %q, want the undocumented alert named", crossRef.Message)
	}
}

func TestRunInfrastructureErrors(t *testing.T) {
	t.Run("MissingConfigFile", func(t *testing.T) {
		_, err := Run(defaultOptions(filepath.Join(t.TempDir(), "absent.yaml"), "-"))
		if err == nil || !strings.Contains(err.Error(), "error reading file") {
			t.Errorf("Run() error = %v, want a read failure", err)
		}
	})

	t.Run("NonMappingConfig", func(t *testing.T) {
		config := writeConfig(t, "- just\n- a list\n")
		_, err := Run(defaultOptions(config, "-"))
		if err == nil || !strings.Contains(err.Error(), "configuration root must be a mapping") {
			t.Errorf("Run() error = %v, want a root-type error", err)
		}
	})

	t.Run("UnsupportedZabbixVersion", func(t *testing.T) {
		opts := defaultOptions(writeConfig(t, validConfigYAML), filepath.Join(t.TempDir(), "out.json"))
		opts.ZabbixVersion = "4.0"
		_, err := Run(opts)
		if err == nil || !strings.Contains(err.Error(), "not supported") {
			t.Errorf("Run() error = %v, want a version rejection", err)
		}
	})

	t.Run("UnknownTemplateName", func(t *testing.T) {
		opts := defaultOptions(writeConfig(t, validConfigYAML), filepath.Join(t.TempDir(), "out.json"))
		opts.TemplateName = "absent.tmpl"
		_, err := Run(opts)
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("Run() error = %v, want a template lookup failure", err)
		}
	})
}

func TestValidationReportBookkeeping(t *testing.T) {
	report := NewValidationReport("config.yaml")
	if !report.Success {
		t.Fatal("a fresh report must start successful")
	}

	report.AddCheck(CheckResult{Name: "Schema validation", Passed: true})
	if !report.Success {
		t.Error("a passing check flipped Success")
	}

	report.AddCheck(CheckResult{Name: "Cross-reference validation", Passed: true, Skipped: true})
	if !report.Success {
		t.Error("a skipped check flipped Success")
	}

	report.AddCheck(CheckResult{Name: "Schema validation", Passed: false, Message: "boom"})
	if report.Success {
		t.Error("a failed check did not flip Success")
	}

	passed, failed, skipped := report.CountResults()
	if passed != 1 || failed != 1 || skipped != 1 {
		t.Errorf("CountResults() = %d/%d/%d, want 1/1/1", passed, failed, skipped)
	}
}
