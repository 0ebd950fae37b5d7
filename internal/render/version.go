package render

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

const (
	// MinExportVersion is the oldest export format the bundled
	// template can produce. Zabbix 5.4 is the first release whose
	// export format carries template UUIDs.
	MinExportVersion = "5.4"
	// DefaultExportVersion is the export format used when no target
	// version is given.
	DefaultExportVersion = "6.0"
)

// ParseExportVersion validates a target Zabbix version and normalizes
// it to the major.minor form the export format expects.
func ParseExportVersion(value string) (string, error) {
	v, err := semver.NewVersion(value)
	if err != nil {
		return "", fmt.Errorf("invalid Zabbix version %q: %w", value, err)
	}
	if v.LessThan(semver.MustParse(MinExportVersion)) {
		return "", fmt.Errorf("Zabbix version %s is not supported, export format requires at least %s", value, MinExportVersion)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()), nil
}
