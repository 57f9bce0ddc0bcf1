package stats

import (
	"fmt"
	"hash/fnv"
)

// Chart palette in assignment order. Labels beyond the palette get a
// stable color derived from the label itself.
var defaultPalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// ColorAssigner hands out chart colors per behavior label on first
// sight. Callers build a fresh assigner per response from the summary's
// label order, so assignment is deterministic for a given window and no
// state leaks between requests.
type ColorAssigner struct {
	colors map[string]string
	next   int
}

func NewColorAssigner() *ColorAssigner {
	return &ColorAssigner{colors: make(map[string]string)}
}

func (a *ColorAssigner) Color(label string) string {
	if c, ok := a.colors[label]; ok {
		return c
	}
	var c string
	if a.next < len(defaultPalette) {
		c = defaultPalette[a.next]
		a.next++
	} else {
		h := fnv.New32a()
		h.Write([]byte(label))
		c = fmt.Sprintf("#%06x", h.Sum32()&0xffffff)
	}
	a.colors[label] = c
	return c
}

// Legend assigns colors to the given labels in order.
func (a *ColorAssigner) Legend(labels []string) map[string]string {
	legend := make(map[string]string, len(labels))
	for _, label := range labels {
		legend[label] = a.Color(label)
	}
	return legend
}
