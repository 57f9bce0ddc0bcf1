package normalize

import (
	"strings"
)

// Display vocabulary for the behavior codes the recognition pipeline is
// known to emit. Irregular spellings ("Self-directed", "Out of View")
// live here so the generic fallback never invents a variant of them.
var baseLabels = map[string]string{
	"PACING":        "Pacing",
	"RECUMBENT":     "Recumbent",
	"NON_RECUMBENT": "Non-recumbent",
	"SELF_DIRECTED": "Self-directed",
	"FEEDING":       "Feeding",
	"FORAGING":      "Foraging",
	"DRINKING":      "Drinking",
	"RESTING":       "Resting",
	"STANDING":      "Standing",
	"WALKING":       "Walking",
	"SWAYING":       "Swaying",
	"HEAD_BOBBING":  "Head Bobbing",
	"GROOMING":      "Grooming",
	"SOCIAL":        "Social",
	"OUT_OF_VIEW":   "Out of View",
	"NOT_VISIBLE":   "Not Visible",
}

// Phase suffixes appended by the event segmenter.
var labelSuffixes = map[string]string{
	"_START":   " Start",
	"_END":     " End",
	"_STOPPED": " Stopped",
}

// displayLabels is the full static table: every base code in both its
// hyphen and underscore spelling, bare and with each phase suffix.
var displayLabels = map[string]string{}

func init() {
	for code, label := range baseLabels {
		for _, c := range codeVariants(code) {
			displayLabels[c] = label
			for sfx, word := range labelSuffixes {
				for _, s := range codeVariants(sfx) {
					displayLabels[c+s] = label + word
				}
			}
		}
	}
}

func codeVariants(code string) []string {
	hyphen := strings.ReplaceAll(code, "_", "-")
	if hyphen == code {
		return []string{code}
	}
	return []string{code, hyphen}
}

// DisplayLabel maps a raw behavior code to its dashboard display label.
// Unknown codes degrade to a title-cased reading of the code so new
// pipeline vocabulary still renders something sensible.
func DisplayLabel(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "Unknown"
	}
	if label, ok := displayLabels[code]; ok {
		return label
	}
	if label, ok := displayLabels[strings.ToUpper(code)]; ok {
		return label
	}
	return titleizeCode(code)
}

func titleizeCode(code string) string {
	parts := strings.FieldsFunc(code, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	label := strings.Join(parts, " ")
	// Keep the hyphenated house spelling even for unseen phase combos.
	if label == "Self Directed" || strings.HasPrefix(label, "Self Directed ") {
		label = "Self-directed" + strings.TrimPrefix(label, "Self Directed")
	}
	return label
}
