package screengen_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	screengen "github.com/goliatone/go-screengen"
	"github.com/goliatone/go-screengen/pkg/ir"
)

func sampleProject() screengen.Project {
	return screengen.Project{
		Screens: []screengen.Screen{
			{ID: "home", Name: "Home", Elements: []screengen.DesignElement{
				{ID: "s1", Type: ir.TypeSwitch, X: 20, Y: 40, Width: 60, Height: 30, Properties: ir.Properties{"value": true, "interactive": true}},
			}},
			{ID: "settings", Name: "Settings"},
		},
	}
}

func TestGenerate(t *testing.T) {
	out, err := screengen.Generate(context.Background(), sampleProject())
	require.NoError(t, err)

	code := string(out)
	assert.Contains(t, code, "class HomeScreen extends StatefulWidget")
	assert.Contains(t, code, "bool _switch0 = true;")
	assert.Contains(t, code, "'/settings': (context) => const SettingsScreen(),")
}

func TestGenerateFromDocument(t *testing.T) {
	doc := []byte(`{"screens":[{"id":"a","name":"A","elements":[{"type":"icon","x":"12","y":8}]}]}`)

	out, err := screengen.GenerateFromDocument(context.Background(), doc, screengen.RendererFlutter, screengen.RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "left: 12.0")
}

func TestPreview(t *testing.T) {
	project := sampleProject()
	project.DarkMode = true

	frames := screengen.Preview(project, screengen.RenderOptions{ScreenIDs: []string{"settings"}})
	require.Len(t, frames, 1)
	assert.Equal(t, "settings", frames[0].Screen)
	assert.True(t, frames[0].Dark)
	assert.Empty(t, frames[0].Elements)

	assert.Nil(t, screengen.Preview(project, screengen.RenderOptions{ScreenIDs: []string{"none"}}))
}

func TestSanitizeAndImportBatch(t *testing.T) {
	got := screengen.Sanitize([]any{map[string]any{"type": "button", "y": 700, "height": 5}})
	require.Len(t, got, 1)
	assert.Equal(t, 30, got[0].Height)
	assert.Equal(t, 610, got[0].Y)

	imported, err := screengen.ImportBatch([]byte("```yaml\n- type: card\n```"))
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, ir.TypeCard, imported[0].Type)
	assert.NotEmpty(t, imported[0].ID)

	_, err = screengen.ImportBatch([]byte("nothing useful"))
	assert.Error(t, err)
}

func TestEmbeddedTemplates(t *testing.T) {
	var names []string
	err := fs.WalkDir(screengen.EmbeddedTemplates(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tpl") {
			names = append(names, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, names, "templates/app.tpl")
	assert.Contains(t, names, "templates/widgets/button.tpl")
}
