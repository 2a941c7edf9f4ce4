package model

// Result is what every analysis request produces, success or failure. On
// failure Analysis is nil and AnalysisError carries the reason.
type Result struct {
	Error         ErrorRecord `json:"error" yaml:"error"`
	Analysis      *Analysis   `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	AnalysisError string      `json:"analysis_error,omitempty" yaml:"analysis_error,omitempty"`
}

// Failed reports whether the analysis itself failed.
func (r *Result) Failed() bool {
	return r != nil && r.AnalysisError != ""
}
