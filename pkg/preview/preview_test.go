package preview

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-screengen/pkg/interpret"
	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/render"
	"github.com/goliatone/go-screengen/pkg/schema"
	"github.com/goliatone/go-screengen/pkg/testsupport"
)

func el(t ir.ComponentType, props ir.Properties) ir.DesignElement {
	return ir.DesignElement{ID: "e1", Type: t, Width: 100, Height: 50, Properties: props}
}

func TestRender_Button(t *testing.T) {
	got := Render(el(ir.TypeButton, ir.Properties{
		"text": "Login", "color": "#FFEB3B", "rounded": false, "navigateTo": "screen-2",
	}), false)

	want := Node{
		Kind: KindButton,
		ID:   "e1",
		Text: "Login",
		Style: map[string]string{
			StyleBackground:   "#FFEB3B",
			StyleColor:        "#000000",
			StylePadding:      "16px",
			StyleFontWeight:   "600",
			StyleBorderRadius: "8px",
		},
		Attrs: map[string]string{"navigateTo": "screen-2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("button mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_OutlineAndSecondaryButtons(t *testing.T) {
	outline := Render(el(ir.TypeButton, ir.Properties{"variant": "outline", "color": "#4CAF50"}), false)
	assert.Equal(t, "transparent", outline.Style[StyleBackground])
	assert.Equal(t, "#4CAF50", outline.Style[StyleColor])
	assert.Equal(t, "1px solid #4CAF50", outline.Style[StyleBorder])

	secondary := Render(el(ir.TypeButton, ir.Properties{"variant": "secondary"}), true)
	assert.Equal(t, "#374151", secondary.Style[StyleBackground])
	assert.Equal(t, "#FFFFFF", secondary.Style[StyleColor])
}

func TestRender_FlexAlignment(t *testing.T) {
	got := Render(el(ir.TypeRow, ir.Properties{
		"mainAxisAlignment": "spaceBetween", "crossAxisAlignment": "stretch",
	}), false)

	assert.Equal(t, "row", got.Style[StyleFlexDirection])
	assert.Equal(t, "space-between", got.Style[StyleJustifyContent])
	assert.Equal(t, "stretch", got.Style[StyleAlignItems])
	require.Len(t, got.Children, 3)
	assert.Equal(t, "30px", got.Children[0].Style[StyleWidth])

	column := Render(el(ir.TypeColumn, ir.Properties{"mainAxisAlignment": "bogus"}), false)
	assert.Equal(t, "column", column.Style[StyleFlexDirection])
	assert.Equal(t, "flex-start", column.Style[StyleJustifyContent])
	assert.Equal(t, "100px", column.Children[0].Style[StyleWidth])
}

func TestRender_StackAlignment(t *testing.T) {
	got := Render(el(ir.TypeStack, ir.Properties{"alignment": "bottomRight"}), false)
	assert.Equal(t, "flex-end", got.Style[StyleJustifyContent])
	assert.Equal(t, "flex-end", got.Style[StyleAlignItems])

	fallback := Render(el(ir.TypeStack, ir.Properties{"alignment": "nowhere"}), false)
	assert.Equal(t, "topLeft", fallback.Attrs["alignment"])
}

func TestRender_DropdownFallsBackOnBadOptions(t *testing.T) {
	got := Render(el(ir.TypeDropdown, ir.Properties{"options": "not json", "value": "option2"}), false)

	sel, ok := got.Find(KindSelect)
	require.True(t, ok)
	assert.Equal(t, "option2", sel.Attrs["value"])
	var labels []string
	for _, opt := range sel.Children {
		labels = append(labels, opt.Text)
	}
	if diff := cmp.Diff([]string{"Option 1", "Option 2"}, labels); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_TableStripesAndFallback(t *testing.T) {
	got := Render(el(ir.TypeDynamicTable, nil), false)
	grid, ok := got.Find(KindTable)
	require.True(t, ok)
	// header plus three default rows
	require.Len(t, grid.Children, 4)
	assert.Equal(t, "true", grid.Children[0].Attrs["header"])
	assert.Equal(t, "#ffffff", grid.Children[1].Style[StyleBackground])
	assert.Equal(t, "#f9fafb", grid.Children[2].Style[StyleBackground])
	assert.Equal(t, "John Doe", grid.Children[1].Children[0].Text)

	broken := Render(el(ir.TypeDynamicTable, ir.Properties{"columns": "{", "showHeader": false}), false)
	grid, _ = broken.Find(KindTable)
	require.Len(t, grid.Children, 2)
	assert.Equal(t, "Jane Smith", grid.Children[1].Children[0].Text)
}

func TestRender_ListUsesGlyphs(t *testing.T) {
	got := Render(el(ir.TypeList, ir.Properties{
		"data": `[{"title":"A","icon":"home"},{"title":"B","icon":"rocket"}]`,
	}), false)

	require.Equal(t, 2, got.Count(KindItem))
	assert.Equal(t, "🏠", got.Children[0].Children[0].Text)
	assert.Equal(t, "⚪", got.Children[1].Children[0].Text)
	assert.Equal(t, "Description 2", got.Children[1].Children[2].Text)
}

func TestRender_ChatMessage(t *testing.T) {
	got := Render(el(ir.TypeChatMessage, ir.Properties{
		"text": "hi", "isUser": true, "avatar": true, "timestamp": true,
	}), false)

	assert.Equal(t, "flex-end", got.Style[StyleAlignSelf])
	require.Len(t, got.Children, 2)
	bubble := got.Children[0]
	assert.Equal(t, KindBubble, bubble.Kind)
	assert.Equal(t, "#90CAF9", bubble.Style[StyleBackground])
	assert.Equal(t, interpret.SampleTimestamp, bubble.Children[1].Text)
	assert.Equal(t, KindIcon, got.Children[1].Kind)
}

func TestRender_LabelledControls(t *testing.T) {
	got := Render(el(ir.TypeRadioWithLabel, ir.Properties{
		"label": "Pick", "value": true, "groupValue": "option1", "labelPosition": "right", "disabled": true,
	}), true)

	require.Len(t, got.Children, 2)
	assert.Equal(t, KindRadio, got.Children[0].Kind)
	assert.Equal(t, "true", got.Children[0].Attrs["checked"])
	assert.Equal(t, "Pick", got.Children[1].Text)
	assert.Equal(t, "0.6", got.Style[StyleOpacity])
}

func TestRender_CardShadow(t *testing.T) {
	got := Render(el(ir.TypeCard, ir.Properties{"elevation": 3, "subtitle": ""}), false)
	assert.Equal(t, "0 3px 6px rgba(0, 0, 0, 0.1)", got.Style[StyleBoxShadow])
	assert.Equal(t, 2, got.Count(KindText))
}

func TestRender_EveryTypeProducesANode(t *testing.T) {
	for _, typ := range ir.AllTypes() {
		for _, dark := range []bool{false, true} {
			got := Render(schema.Place(typ, 10, 10), dark)
			if got.Kind == "" {
				t.Fatalf("%s (dark=%v): empty node", typ, dark)
			}
		}
	}
}

func TestRenderScreen_Devices(t *testing.T) {
	screen := ir.Screen{ID: "s", Name: "S", Elements: []ir.DesignElement{
		{ID: "a", Type: ir.TypeContainer, X: 20, Y: 40, Width: 100, Height: 60},
		{ID: "b", Type: ir.TypeIcon, X: 0, Y: 0, Width: 24, Height: 24},
	}}

	frame := RenderScreen(screen, true, WithDevice("Pixel6"))
	assert.Equal(t, "pixel6", frame.Device.Name)
	assert.Equal(t, "#121212", frame.Background)
	require.Len(t, frame.Elements, 2)
	assert.Equal(t, "a", frame.Elements[0].ID)
	assert.Equal(t, 10.0, frame.Elements[0].Left)
	assert.Equal(t, 30.0, frame.Elements[0].Height)

	unknown := RenderScreen(screen, false, WithDevice("nokia"))
	assert.Equal(t, DefaultDevice, unknown.Device.Name)
}

func TestRenderer_Golden(t *testing.T) {
	project := ir.Project{Screens: []ir.Screen{{ID: "home", Name: "Home", Elements: []ir.DesignElement{
		{ID: "b1", Type: ir.TypeButton, X: 20, Y: 50, Width: 120, Height: 40},
	}}}}

	data, err := New().Render(context.Background(), project, render.RenderOptions{})
	require.NoError(t, err)

	testsupport.Golden(t).Assert(t, "home_frames", data)
}
