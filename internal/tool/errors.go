package tool

// Kind classifies tool-level failures for the calling agent.
type Kind string

const (
	// KindInvalidCategory: the category is outside the closed enum.
	KindInvalidCategory Kind = "invalid_category"
	// KindInvalidCount: the count is not a positive integer.
	KindInvalidCount Kind = "invalid_count"
	// KindUpstreamUnavailable: network/status failure; may be transient.
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	// KindUnexpectedPageStructure: the listing container is missing,
	// which signals upstream markup drift rather than a transient fault.
	KindUnexpectedPageStructure Kind = "unexpected_page_structure"
)

// ToolError is the only error type that crosses the tool boundary.
type ToolError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *ToolError) Error() string {
	return string(e.Kind) + ": " + e.Message
}
