package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-screengen/pkg/ir"
)

func validProject() ir.Project {
	return ir.Project{
		Screens: []ir.Screen{
			{
				ID: "home", Name: "Home",
				Elements: []ir.DesignElement{
					{ID: "b1", Type: ir.TypeButton, X: 10, Y: 10, Width: 120, Height: 40,
						Properties: ir.Properties{"text": "Go", "navigateTo": "cart"}},
					{ID: "d1", Type: ir.TypeDropdown, X: 10, Y: 80, Width: 200, Height: 56,
						Properties: ir.Properties{"options": []any{"a", "b"}}},
				},
			},
			{ID: "cart", Name: "Cart"},
		},
	}
}

func fields(result Result) []string {
	out := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		out = append(out, issue.Field)
	}
	return out
}

func TestValidateProject_Valid(t *testing.T) {
	result := ValidateProject(validProject(), Options{})
	assert.True(t, result.Valid, "%v", result.Issues)
	assert.Empty(t, result.Issues)
}

func TestValidateProject_NoScreens(t *testing.T) {
	result := ValidateProject(ir.Project{}, Options{})
	require.False(t, result.Valid)
	assert.Equal(t, "/screens", result.Issues[0].Path)
}

func TestValidateProject_Identity(t *testing.T) {
	project := validProject()
	project.Screens[1].ID = "home"
	project.Screens[0].Elements[1].ID = "b1"

	result := ValidateProject(project, Options{})
	require.False(t, result.Valid)
	assert.Contains(t, result.Issues, Issue{
		Path: "/screens/1/id", Screen: "home", Field: "id", Message: `duplicate screen id "home"`,
	})
	assert.Contains(t, result.Issues, Issue{
		Path: "/screens/0/elements/1/id", Screen: "home", Element: "b1", Field: "id", Message: `duplicate element id "b1"`,
	})
}

func TestValidateProject_ElementProblems(t *testing.T) {
	project := validProject()
	home := project.Screens[0].Elements
	home[0].Properties["navigateTo"] = "checkout"
	home[0].Properties["color"] = "blue"
	home[0].Properties["padding"] = "wide"
	home[1].X = 300
	home[1].Height = 10
	project.Screens[1].Elements = []ir.DesignElement{{ID: "c1", Type: "carousel", Width: 100, Height: 100}}

	result := ValidateProject(project, Options{})
	require.False(t, result.Valid)
	got := fields(result)
	assert.Contains(t, got, "navigateTo")
	assert.Contains(t, got, "color")
	assert.Contains(t, got, "padding")
	assert.Contains(t, got, "type")

	var geometry int
	for _, issue := range result.Issues {
		if issue.Element == "d1" && issue.Field == "" {
			geometry++
			assert.Equal(t, "/screens/0/elements/1", issue.Path)
		}
	}
	assert.Equal(t, 2, geometry)
}

func TestValidateDocument(t *testing.T) {
	yamlDoc := []byte(`
screens:
  - id: home
    name: Home
    elements:
      - id: s1
        type: switch
        x: 10
        y: 10
        width: 60
        height: 40
        properties:
          activeColor: "#00FF00"
`)
	result := ValidateDocument(yamlDoc, Options{})
	assert.True(t, result.Valid, "%v", result.Issues)

	result = ValidateDocument([]byte("screens: [unterminated"), Options{})
	require.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Message, "decode project")
}
