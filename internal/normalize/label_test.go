package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLabelStaticTable(t *testing.T) {
	tests := map[string]string{
		"PACING":            "Pacing",
		"PACING_START":      "Pacing Start",
		"PACING-START":      "Pacing Start",
		"PACING_END":        "Pacing End",
		"RECUMBENT_STOPPED": "Recumbent Stopped",
		"SELF_DIRECTED":     "Self-directed",
		"SELF-DIRECTED":     "Self-directed",
		"SELF_DIRECTED_END": "Self-directed End",
		"NON_RECUMBENT":     "Non-recumbent",
		"NON-RECUMBENT":     "Non-recumbent",
		"OUT_OF_VIEW":       "Out of View",
		"FEEDING":           "Feeding",
	}
	for code, want := range tests {
		assert.Equal(t, want, DisplayLabel(code), "code %q", code)
	}
}

func TestDisplayLabelCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Pacing", DisplayLabel("pacing"))
	assert.Equal(t, "Self-directed", DisplayLabel("self_directed"))
}

func TestDisplayLabelFallbackTitleCases(t *testing.T) {
	tests := map[string]string{
		"FOO-BAR":        "Foo Bar",
		"FOO_BAR_START":  "Foo Bar Start",
		"tail_flicking":  "Tail Flicking",
		"TRUNK-SWINGING": "Trunk Swinging",
	}
	for code, want := range tests {
		assert.Equal(t, want, DisplayLabel(code), "code %q", code)
	}
}

func TestDisplayLabelSelfDirectedSpelling(t *testing.T) {
	// Unseen phase combos still keep the hyphenated house spelling.
	assert.Equal(t, "Self-directed Grooming", DisplayLabel("SELF_DIRECTED_GROOMING"))
}

func TestDisplayLabelEmpty(t *testing.T) {
	assert.Equal(t, "Unknown", DisplayLabel(""))
	assert.Equal(t, "Unknown", DisplayLabel("  "))
}
