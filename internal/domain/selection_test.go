package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrag_ForwardSelection(t *testing.T) {
	drag := StartDrag("drv-1", 10)
	drag = drag.Move("drv-1", 15)

	sel := drag.Selection()
	assert.Equal(t, "drv-1", sel.ResourceID)
	assert.Equal(t, 10, sel.Start)
	assert.Equal(t, 15, sel.End)
	assert.Equal(t, 6, sel.Width())
}

func TestDrag_BackwardSelectionNormalized(t *testing.T) {
	drag := StartDrag("drv-1", 15)
	drag = drag.Move("drv-1", 10)

	sel := drag.Selection()
	assert.Equal(t, 10, sel.Start)
	assert.Equal(t, 15, sel.End)
}

func TestDrag_SingleSlot(t *testing.T) {
	sel := StartDrag("drv-1", 7).Selection()
	assert.Equal(t, 7, sel.Start)
	assert.Equal(t, 7, sel.End)
	assert.Equal(t, 1, sel.Width())
}

func TestDrag_IgnoresOtherResourceRows(t *testing.T) {
	drag := StartDrag("drv-1", 10)
	drag = drag.Move("drv-1", 14)
	drag = drag.Move("drv-2", 30)

	sel := drag.Selection()
	assert.Equal(t, "drv-1", sel.ResourceID)
	assert.Equal(t, 10, sel.Start)
	assert.Equal(t, 14, sel.End)
}

func TestDrag_ClampsToGrid(t *testing.T) {
	drag := StartDrag("drv-1", -5)
	assert.Equal(t, 0, drag.Anchor)

	drag = drag.Move("drv-1", 90)
	assert.Equal(t, MaxSlotIndex, drag.Current)

	sel := drag.Selection()
	assert.Equal(t, 0, sel.Start)
	assert.Equal(t, 47, sel.End)
	assert.Equal(t, SlotsPerDay, sel.Width())
}
