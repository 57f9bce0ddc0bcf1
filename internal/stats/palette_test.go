package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorAssignerFirstSeenOrder(t *testing.T) {
	a := NewColorAssigner()
	assert.Equal(t, defaultPalette[0], a.Color("Pacing"))
	assert.Equal(t, defaultPalette[1], a.Color("Feeding"))
	assert.Equal(t, defaultPalette[0], a.Color("Pacing"))
}

func TestColorAssignerDeterministicAcrossInstances(t *testing.T) {
	labels := []string{"Pacing", "Feeding", "Recumbent"}
	first := NewColorAssigner().Legend(labels)
	second := NewColorAssigner().Legend(labels)
	assert.Equal(t, first, second)
}

func TestColorAssignerOverflowIsStable(t *testing.T) {
	a := NewColorAssigner()
	for i := 0; i < len(defaultPalette); i++ {
		a.Color(fmt.Sprintf("label-%d", i))
	}

	c1 := a.Color("Swaying")
	assert.Equal(t, c1, a.Color("Swaying"))
	assert.Len(t, c1, 7)
	assert.Equal(t, uint8('#'), c1[0])

	b := NewColorAssigner()
	for i := 0; i < len(defaultPalette); i++ {
		b.Color(fmt.Sprintf("label-%d", i))
	}
	assert.Equal(t, c1, b.Color("Swaying"))
}
