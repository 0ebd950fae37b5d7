package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/wrike/promabbix/internal/cmd/generatetemplate"
	"github.com/wrike/promabbix/internal/render"

	helpers "github.com/wrike/promabbix/internal/cmd"
	log "github.com/wrike/promabbix/internal/logging"
)

// generateTemplateCmd represents the generateTemplate command
var generateTemplateCmd = &cobra.Command{
	Use:   "generateTemplate CONFIG_FILE",
	Short: "Generate a Zabbix template from a unified alert configuration",
	Long: `Validate a unified Prometheus/Zabbix configuration and render it into
a Zabbix template export document.

CONFIG_FILE may be a YAML or JSON file, or "-" to read from STDIN.
The output path may also be "-" to write the template to STDOUT.`,
	Args: func(_ *cobra.Command, args []string) error {
		// Check that there is exactly one arg
		if len(args) == 1 {
			return nil
		}

		// Check if there is data coming from stdin
		if len(args) == 0 && helpers.IsDataFromStdin() {
			return errors.New(`reading from stdin requires "-" as the config argument`)
		}

		return errors.New("you must provide exactly one config file argument")
	},
	Run: generateTemplateHandler,
}

func init() {
	rootCmd.AddCommand(generateTemplateCmd)
	generateTemplateCmd.Flags().StringP("output", "o", "/tmp/zbx_template.json", `Path to save the generated Zabbix template (use "-" for STDOUT)`)
	generateTemplateCmd.Flags().StringP("templates", "t", "", "Path to a directory with template files")
	generateTemplateCmd.Flags().String("template-name", render.DefaultTemplateName, "Template file name")
	generateTemplateCmd.Flags().String("schema", "", "Path to a validation schema overriding the bundled one")
	generateTemplateCmd.Flags().String("zabbix-version", render.DefaultExportVersion, "Target Zabbix export format version")
	generateTemplateCmd.Flags().Bool("validate-only", false, "Only validate the configuration without generating a template")
	generateTemplateCmd.Flags().Bool("json", false, "Output validation results in JSON format")
}

func generateTemplateHandler(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")
	templates, _ := cmd.Flags().GetString("templates")
	templateName, _ := cmd.Flags().GetString("template-name")
	schema, _ := cmd.Flags().GetString("schema")
	zabbixVersion, _ := cmd.Flags().GetString("zabbix-version")
	validateOnly, _ := cmd.Flags().GetBool("validate-only")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	result, err := generatetemplate.Run(generatetemplate.Options{
		ConfigPath:    args[0],
		OutputPath:    output,
		TemplatesDir:  templates,
		TemplateName:  templateName,
		SchemaPath:    schema,
		ZabbixVersion: zabbixVersion,
		ValidateOnly:  validateOnly,
		JSONOutput:    jsonOutput,
	})
	if err != nil {
		log.Log.Fatal(err)
	}

	if !result.Success {
		os.Exit(1)
	}
}
