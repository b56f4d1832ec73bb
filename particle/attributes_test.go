package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableResizeFillsDefaults(t *testing.T) {
	table := NewTable()
	charge := NewAttribute("charge", 2.5)
	Require(table, charge)

	table.Resize(3)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, View(table, charge))

	table.Resize(1)
	assert.Equal(t, []float64{2.5}, View(table, charge))

	table.Resize(2)
	assert.Equal(t, []float64{2.5, 2.5}, View(table, charge))
}

func TestTableRequireIsIdempotent(t *testing.T) {
	table := NewTable()
	charge := NewAttribute("charge", 1.0)
	table.Resize(2)

	Require(table, charge)
	View(table, charge)[0] = 9
	Require(table, charge)

	assert.Equal(t, []float64{9, 1}, View(table, charge))
}

func TestTableLateAttributeBackfillsDefaults(t *testing.T) {
	table := NewTable()
	table.Resize(3)

	radius := NewAttribute("radius", 1.5)
	Require(table, radius)

	assert.Equal(t, []float64{1.5, 1.5, 1.5}, View(table, radius))
}

func TestTableViewPanicsOnUnregisteredAttribute(t *testing.T) {
	table := NewTable()
	ghost := NewAttribute("ghost", 0.0)

	assert.Panics(t, func() { View(table, ghost) })
}

func TestTableViewAliasesBackingStorage(t *testing.T) {
	table := NewTable()
	mass := NewAttribute("mass", 1.0)
	Require(table, mass)
	table.Resize(2)

	view := View(table, mass)
	view[0] = 42

	require.Equal(t, 42.0, View(table, mass)[0])
}

func TestDistinctAttributesWithSameNameDoNotAlias(t *testing.T) {
	table := NewTable()
	a := NewAttribute("x", 1.0)
	b := NewAttribute("x", 1.0)
	table.Resize(1)
	Require(table, a)
	Require(table, b)

	View(table, a)[0] = 7
	assert.Equal(t, 1.0, View(table, b)[0])
}
