package model

// Analysis is the structured form of a raw AI completion: the extracted
// sections plus the untouched raw text for callers that render it themselves.
type Analysis struct {
	Explanation string   `json:"explanation" yaml:"explanation"`
	Causes      string   `json:"causes" yaml:"causes"`
	Fixes       string   `json:"fixes" yaml:"fixes"`
	References  []string `json:"references,omitempty" yaml:"references,omitempty"`
	Raw         string   `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// ErrorRecord is the normalized form of the error under analysis.
type ErrorRecord struct {
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message    string `json:"message" yaml:"message"`
	StackTrace string `json:"stack_trace,omitempty" yaml:"stack_trace,omitempty"`
}
