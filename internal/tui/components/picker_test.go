package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickerChoosesOption(t *testing.T) {
	p := NewPicker()
	p.Show(PickDistributor, "Distributor", []string{"Arrow", "Criterion"}, -1)
	assert.True(t, p.IsVisible())

	p.HandleKey("j")
	p.HandleKey("j")
	handled, confirmed, chosen := p.HandleKey("enter")

	assert.True(t, handled)
	assert.True(t, confirmed)
	assert.Equal(t, 1, chosen)
	assert.False(t, p.IsVisible())
}

func TestPickerAnyAndCancel(t *testing.T) {
	p := NewPicker()
	p.Show(PickFormat, "Format", []string{"DVD"}, 0)
	p.HandleKey("k")
	_, confirmed, chosen := p.HandleKey("enter")
	assert.True(t, confirmed)
	assert.Equal(t, -1, chosen)

	p.Show(PickFormat, "Format", []string{"DVD"}, 0)
	handled, confirmed, _ := p.HandleKey("esc")
	assert.True(t, handled)
	assert.False(t, confirmed)
}

func TestPickerIgnoresKeysWhenHidden(t *testing.T) {
	p := NewPicker()
	handled, _, _ := p.HandleKey("enter")
	assert.False(t, handled)
}
