package types

// ExportFormat selects the run-file serialization written alongside the
// spreadsheet report.
type ExportFormat string

const (
	ExportNone ExportFormat = ""
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// ScreenConfig holds settings for the screen command. It covers output
// placement only; the keyword rules are an explicit RuleSet value passed
// into the screener and are not configurable here.
type ScreenConfig struct {
	// OutputPath is the spreadsheet report path
	// (default "articles_classification.xlsx").
	OutputPath string `json:"output" yaml:"output"`

	// Export optionally selects a run-file format: yaml or json. Empty
	// means no run file is written.
	Export ExportFormat `json:"export,omitempty" yaml:"export,omitempty"`
}
