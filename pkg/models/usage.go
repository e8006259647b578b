package models

// UsageSnapshot is the aggregated token usage over the trailing window.
// It is computed once per process and never persisted.
type UsageSnapshot struct {
	Input    int64 `json:"input"`
	Output   int64 `json:"output"`
	Sessions int64 `json:"sessions"`
}

// Total returns input plus output tokens.
func (s UsageSnapshot) Total() int64 {
	return s.Input + s.Output
}

// IsZero reports whether no usage was recorded.
func (s UsageSnapshot) IsZero() bool {
	return s.Input == 0 && s.Output == 0 && s.Sessions == 0
}

// SecurityStatus is a projection of the assistant settings' policy fields.
type SecurityStatus struct {
	DenyCount int  `json:"denyCount"`
	HasHook   bool `json:"hasHook"`
}
