package generatetemplate

// CheckResult represents the result of a single validation phase
type CheckResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Skipped bool   `json:"skipped,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValidationReport represents the overall validation result for one
// configuration document
type ValidationReport struct {
	Success bool          `json:"success"`
	Config  string        `json:"config"`
	Checks  []CheckResult `json:"checks"`
}

// NewValidationReport creates a report for the given configuration source
func NewValidationReport(config string) *ValidationReport {
	return &ValidationReport{
		Success: true,
		Config:  config,
		Checks:  []CheckResult{},
	}
}

// AddCheck appends a check result and downgrades overall success on failure
func (r *ValidationReport) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	if !check.Passed && !check.Skipped {
		r.Success = false
	}
}

// CountResults returns counts of passed, failed, and skipped checks
func (r *ValidationReport) CountResults() (passed, failed, skipped int) {
	for _, check := range r.Checks {
		switch {
		case check.Skipped:
			skipped++
		case check.Passed:
			passed++
		default:
			failed++
		}
	}
	return
}
