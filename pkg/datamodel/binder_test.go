package datamodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_DoesNotReplaceExistingSlot(t *testing.T) {
	target := &Model{GetRowCount: func() int { return 7 }}
	Bind(target, Model{GetRowCount: func() int { return 99 }}, false)
	assert.Equal(t, 7, target.GetRowCount())
}

func TestBind_OverwriteReplacesExistingSlot(t *testing.T) {
	target := &Model{GetRowCount: func() int { return 7 }}
	Bind(target, Model{GetRowCount: func() int { return 99 }}, true)
	assert.Equal(t, 99, target.GetRowCount())
}

func TestBind_FillsOnlyEmptySlots(t *testing.T) {
	target := NewModel(newPartial())
	Bind(target, Bundle(Fallbacks), false)

	assert.Equal(t, 2, target.GetRowCount(), "provider row count survives fallbacks")
	assert.False(t, target.IsDrillDown(0), "fallback fills missing IsDrillDown")
	assert.Equal(t, 2, target.GetColumnCount())
}

func TestBind_IsIdempotent(t *testing.T) {
	once := NewModel(newPartial())
	Bind(once, Bundle(Fallbacks), false)

	twice := NewModel(newPartial())
	Bind(twice, Bundle(Fallbacks), false)
	afterFirst := twice.Capabilities()
	Bind(twice, Bundle(Fallbacks), false)

	assert.Equal(t, afterFirst, twice.Capabilities())
	assert.Equal(t, once.Capabilities(), twice.Capabilities())
	assert.Equal(t, once.GetData(), twice.GetData())
}

func TestBind_ListShapedSourceIsIgnored(t *testing.T) {
	tests := []struct {
		name   string
		source any
	}{
		{"slice of models", []Model{{GetRowCount: func() int { return 1 }}}},
		{"slice of funcs", []func() int{func() int { return 1 }}},
		{"array", [1]Model{{Apply: func() {}}}},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &Model{}
			Bind(target, tt.source, false)
			assert.Empty(t, target.Capabilities())
		})
	}
}

func TestBind_InstallsItselfOnTarget(t *testing.T) {
	target := &Model{}
	Bind(target, Model{Apply: func() {}}, false)
	require.NotNil(t, target.Install)

	target.Install(Model{GetRowCount: func() int { return 3 }}, false)
	assert.Equal(t, 3, target.GetRowCount())
}

func TestBind_KeepsExistingInstall(t *testing.T) {
	calls := 0
	target := &Model{Install: func(any, bool) { calls++ }}
	Bind(target, Model{Install: func(any, bool) {}}, true)
	target.Install(nil, false)
	assert.Equal(t, 1, calls)
}

func TestBind_BundleClosesOverTarget(t *testing.T) {
	target := &Model{GetSchema: func() Schema { return Schema{{Name: "a"}, {Name: "b"}, {Name: "c"}} }}
	Bind(target, Bundle(Fallbacks), false)
	assert.Equal(t, 3, target.GetColumnCount())
}

func TestBind_CapturesArbitraryProvider(t *testing.T) {
	target := &Model{}
	Bind(target, newPartial(), false)
	assert.ElementsMatch(t,
		[]string{"Install", "GetSchema", "GetRowCount", "GetRow"},
		target.Capabilities())
}

func TestCapture_ReadsOnlyImplementedMethods(t *testing.T) {
	m := Capture(newPartial())
	assert.NotNil(t, m.GetSchema)
	assert.NotNil(t, m.GetRow)
	assert.Nil(t, m.Click)
	assert.Nil(t, m.DispatchEvent)
}

func TestNewModel_RemembersProvidedSlots(t *testing.T) {
	m := NewModel(newPartial())
	InjectFallbacks(m, nil)

	assert.NotNil(t, m.SetValue)
	assert.False(t, m.Provides("SetValue"))
	assert.True(t, m.Provides("GetSchema"))
	assert.True(t, m.Provides("GetRow"))
}

func TestSchema_Index(t *testing.T) {
	s := Schema{{Name: "a"}, {Name: "b"}}
	assert.Equal(t, 1, s.Index("b"))
	assert.Equal(t, -1, s.Index("z"))
}

func TestRow_TreeAccessors(t *testing.T) {
	leaf := Row{DepthKey: 2}
	exp, open := leaf.Expandable()
	assert.Equal(t, 2, leaf.Depth())
	assert.False(t, exp)
	assert.False(t, open)

	branch := Row{ExpandedKey: true}
	exp, open = branch.Expandable()
	assert.True(t, exp)
	assert.True(t, open)
}
