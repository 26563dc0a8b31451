package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorMatchesCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.css")
	defer teardown()
	//
	q := Element("button").WithID("ok").WithClass("primary").WithPseudoClass("hover")
	for _, tc := range []struct {
		sel   Selector
		match bool
	}{
		{Any(), true},
		{Element("button"), true},
		{Element("label"), false},
		{Any().WithClass("primary"), true},
		{Any().WithClass("primary").WithClass("large"), false},
		{Element("button").WithPseudoClass("hover"), true},
		{Element("button").WithPseudoClass("active"), false},
		{Any().WithID("ok"), true},
		{Any().WithID("cancel"), false},
	} {
		assert.Equal(t, tc.match, tc.sel.Matches(q), "%v matches %v", tc.sel, q)
	}
}

func TestSelectorRelations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.css")
	defer teardown()
	//
	window := Element("window").WithClass("dark")
	panel := Element("panel").ChildOf(window)
	label := Element("label").ChildOf(panel)
	//
	assert.True(t, Element("label").Within(Ancestor, Element("window")).Matches(label))
	assert.True(t, Element("label").ChildOf(Element("panel")).Matches(label))
	assert.False(t, Element("label").ChildOf(Element("window")).Matches(label))
	assert.True(t, Element("label").Within(Ancestor, Any().WithClass("dark")).Matches(label))
	assert.False(t, Element("label").Within(Ancestor, Element("dialog")).Matches(label))
	// no ancestry, no match
	assert.False(t, Element("label").ChildOf(Element("panel")).Matches(Element("label")))
}

func TestSelectorSpecificity(t *testing.T) {
	assert.Equal(t, Specificity{0, 0, 0}, Any().Specificity())
	assert.Equal(t, Specificity{0, 0, 1}, Element("button").Specificity())
	assert.Equal(t, Specificity{1, 2, 1},
		Element("button").WithID("ok").WithClass("a").WithPseudoClass("hover").Specificity())
	assert.Equal(t, Specificity{0, 1, 2},
		Element("label").ChildOf(Element("panel").WithClass("x")).Specificity())
	assert.True(t, Specificity{0, 9, 9}.Less(Specificity{1, 0, 0}))
	assert.False(t, Specificity{0, 1, 0}.Less(Specificity{0, 1, 0}))
}

func TestSelectorBuildersCopy(t *testing.T) {
	base := Element("button").WithClass("a")
	other := base.WithClass("b")
	assert.Equal(t, []string{"a"}, base.Classes)
	assert.Equal(t, []string{"a", "b"}, other.Classes)
	assert.Equal(t, []string{"b"}, other.WithoutClass("a").Classes)
	assert.Equal(t, "button.a.b:hover", other.WithPseudoClass("hover").String())
	assert.True(t, Any().IsEmpty())
}

func TestParseSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.css")
	defer teardown()
	//
	sels, err := ParseSelectors("button.primary:hover, #main > label, window  panel *.x")
	require.NoError(t, err)
	require.Len(t, sels, 3)
	want := []Selector{
		Element("button").WithClass("primary").WithPseudoClass("hover"),
		Element("label").ChildOf(Any().WithID("main")),
		Any().WithClass("x").Within(Ancestor, Element("panel").Within(Ancestor, Element("window"))),
	}
	if diff := cmp.Diff(want, sels); diff != "" {
		t.Errorf("selectors differ (-want +got):\n%s", diff)
	}
	for _, bad := range []string{"", "> a", "a >", "a,,b", "a.", "a:1", "a[x]"} {
		_, err := ParseSelectors(bad)
		assert.ErrorIs(t, err, ErrSelector, "selector %q", bad)
	}
}
