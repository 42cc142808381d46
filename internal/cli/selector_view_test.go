package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/larder/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectorDriver(t *testing.T, capacity int) (*App, *teatest.Driver) {
	t.Helper()
	app := testApp(t)
	app.Initialize(context.Background())
	sel := app.Kitchen.OpenSelection(capacity)
	return app, teatest.New(t, newSelectorModel(app.Kitchen, sel))
}

func selectorState(t *testing.T, d *teatest.Driver) selectorModel {
	t.Helper()
	m, ok := d.Model().(selectorModel)
	require.True(t, ok)
	return m
}

func TestSelector_ShowsKitchenFirst(t *testing.T) {
	_, d := newSelectorDriver(t, 3)

	view := d.View()
	assert.Contains(t, view, "2/3 selected")
	assert.Less(t, strings.Index(view, "Vegetable Curry"), strings.Index(view, "Overnight Oats"))
	assert.Less(t, strings.Index(view, "Tomato Soup"), strings.Index(view, "Trail Mix"))
}

func TestSelector_ToggleUntilLimit(t *testing.T) {
	_, d := newSelectorDriver(t, 3)

	// Rows: soup, curry (selected) then oats, nuts.
	d.PressDown()
	d.PressDown()
	d.PressEnter()
	assert.Contains(t, d.View(), "3/3 selected")

	d.PressDown()
	d.PressDown()
	d.PressEnter()
	assert.Contains(t, d.View(), "limit reached")
	assert.Equal(t, 3, selectorState(t, d).sel.Len())
}

func TestSelector_RaisingLimitClearsWarning(t *testing.T) {
	_, d := newSelectorDriver(t, 2)

	d.PressDown()
	d.PressDown()
	d.PressEnter()
	require.True(t, selectorState(t, d).sel.CapacityExceeded())

	d.PressRight()
	m := selectorState(t, d)
	assert.Equal(t, 3, m.sel.Capacity())
	assert.False(t, m.sel.CapacityExceeded())
}

func TestSelector_LimitStaysWithinCatalog(t *testing.T) {
	_, d := newSelectorDriver(t, 4)

	d.PressRight()
	assert.Equal(t, 4, selectorState(t, d).sel.Capacity())

	for range 6 {
		d.PressLeft()
	}
	assert.Equal(t, 1, selectorState(t, d).sel.Capacity())
}

func TestSelector_SearchFilters(t *testing.T) {
	_, d := newSelectorDriver(t, 3)

	d.Type("mix")
	view := d.View()
	assert.Contains(t, view, "Trail Mix")
	assert.NotContains(t, view, "Overnight Oats")

	d.PressEnter()
	assert.True(t, selectorState(t, d).sel.IsSelected("nuts-1"))
}

func TestSelector_RandomAndClear(t *testing.T) {
	_, d := newSelectorDriver(t, 3)

	d.PressCtrl('r')
	assert.Equal(t, 3, selectorState(t, d).sel.Len())

	d.PressCtrl('x')
	assert.Equal(t, 0, selectorState(t, d).sel.Len())
	assert.Contains(t, d.View(), "0/3 selected")
}

func TestSelector_SaveCommits(t *testing.T) {
	app, d := newSelectorDriver(t, 3)

	d.PressCtrl('x')
	d.PressDown()
	d.PressDown()
	d.PressEnter()
	d.PressCtrl('s')

	require.True(t, d.Quit)
	m := selectorState(t, d)
	require.True(t, m.committed)

	require.NoError(t, app.Kitchen.CommitSelection(context.Background(), m.sel))
	assert.Equal(t, []string{"Vegetable Curry"}, kitchenNames(app))
}

func TestSelector_EscDiscards(t *testing.T) {
	app, d := newSelectorDriver(t, 3)

	d.PressCtrl('x')
	d.PressEsc()

	require.True(t, d.Quit)
	assert.False(t, selectorState(t, d).committed)
	assert.Len(t, kitchenNames(app), 2)
}
