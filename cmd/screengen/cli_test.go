package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/preview"
	"github.com/goliatone/go-screengen/pkg/prompt"
	"github.com/goliatone/go-screengen/pkg/sanitize"
)

const shopProject = `{
  "name": "Shop",
  "screens": [
    {
      "id": "home",
      "name": "Home",
      "elements": [
        {"id": "b1", "type": "button", "x": 10, "y": 20, "width": 120, "height": 48,
         "properties": {"text": "Go", "navigateTo": "cart"}}
      ]
    },
    {"id": "cart", "name": "Cart", "elements": []}
  ]
}`

// answerDriver returns scripted Input answers and the defaults otherwise.
type answerDriver struct {
	inputs map[string]string
}

func (d answerDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if v, ok := d.inputs[cfg.Message]; ok {
		return v, nil
	}
	return cfg.Default, nil
}

func (answerDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (answerDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	return cfg.DefaultIndex, nil
}

func (answerDriver) MultiSelect(_ context.Context, cfg prompt.SelectConfig) ([]int, error) {
	return cfg.Defaults, nil
}

func (answerDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	return cfg.Default, nil
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(t *testing.T, state *app, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := buildRootCmd(state)
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestGenerateCommand_WritesFlutterApp(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)
	out := filepath.Join(t.TempDir(), "main.dart")

	_, err := executeCommand(t, &app{}, "", "generate", project, "-o", out)
	require.NoError(t, err)

	code, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(code), "class HomeScreen extends StatefulWidget")
	assert.Contains(t, string(code), "initialRoute: '/home'")
}

func TestGenerateCommand_ReadsStdinAndSelectsRenderer(t *testing.T) {
	stdout, err := executeCommand(t, &app{}, shopProject,
		"generate", "-", "--renderer", "preview", "--dark", "--screens", "cart")
	require.NoError(t, err)

	var frames []preview.Frame
	require.NoError(t, json.Unmarshal([]byte(stdout), &frames))
	require.Len(t, frames, 1)
	assert.Equal(t, "cart", frames[0].Screen)
	assert.True(t, frames[0].Dark)
}

func TestGenerateCommand_RejectsUnknownRenderer(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)

	_, err := executeCommand(t, &app{}, "", "generate", project, "--renderer", "swiftui")
	require.Error(t, err)
}

func TestPreviewCommand_Tree(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)

	stdout, err := executeCommand(t, &app{}, "", "preview", project, "--tree", "--device", "pixel6")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Home (home)")
	assert.Contains(t, stdout, "Pixel 6 412x915")
	assert.Contains(t, stdout, "b1")
	assert.Contains(t, stdout, "(empty)")
}

func TestSanitizeCommand_Batch(t *testing.T) {
	batch := "```json\n[{\"type\":\"button\",\"x\":10,\"y\":10},{\"type\":\"carousel\"},{\"type\":\"button\",\"width\":\"160\"}]\n```"

	stdout, err := executeCommand(t, &app{}, batch, "sanitize", "-", "--ids")
	require.NoError(t, err)

	var elements []ir.DesignElement
	require.NoError(t, json.Unmarshal([]byte(stdout), &elements))
	require.Len(t, elements, 3)
	assert.Equal(t, ir.TypeButton, elements[0].Type)
	assert.Equal(t, sanitize.DefaultWidth, elements[0].Width)
	assert.Equal(t, sanitize.DefaultHeight, elements[0].Height)
	assert.Equal(t, 10, elements[0].X)
	assert.Equal(t, ir.TypeContainer, elements[1].Type)
	assert.Equal(t, 160, elements[2].Width)
	assert.NotEmpty(t, elements[0].ID)
	assert.NotEqual(t, elements[0].ID, elements[1].ID)
}

func TestSanitizeCommand_AppendsToProject(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)
	batch := `[{"type":"button","properties":{"text":"<b>Total</b>"}}]`

	stdout, err := executeCommand(t, &app{}, batch, "sanitize", "-", "--project", project, "--screen", "cart")
	require.NoError(t, err)

	var updated ir.Project
	require.NoError(t, json.Unmarshal([]byte(stdout), &updated))
	cart, ok := updated.Screen("cart")
	require.True(t, ok)
	require.Len(t, cart.Elements, 1)
	assert.Equal(t, "Total", cart.Elements[0].Properties["text"])
	assert.NotEmpty(t, cart.Elements[0].ID)
}

func TestSanitizeCommand_ProjectNeedsScreen(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)

	_, err := executeCommand(t, &app{}, "[]", "sanitize", "-", "--project", project)
	require.ErrorContains(t, err, "--screen")
}

func TestSchemaCommand(t *testing.T) {
	stdout, err := executeCommand(t, &app{}, "", "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "button")
	assert.Contains(t, schemas, "dynamicTable")

	stdout, err = executeCommand(t, &app{}, "", "schema", "button")
	require.NoError(t, err)
	var summary componentSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 120, summary.Width)
	assert.Equal(t, "Button", summary.Defaults["text"])
	assert.Equal(t, "navigateTo", summary.Descriptors[len(summary.Descriptors)-1].Name)

	_, err = executeCommand(t, &app{}, "", "schema", "carousel")
	require.ErrorContains(t, err, "unknown component type")
}

func TestEditCommand(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)
	state := &app{driver: answerDriver{inputs: map[string]string{
		"Text":    "<em>Checkout</em>",
		"Padding": "24",
	}}}

	stdout, err := executeCommand(t, state, "", "edit", project, "--screen", "home", "--element", "b1")
	require.NoError(t, err)

	var updated ir.Project
	require.NoError(t, json.Unmarshal([]byte(stdout), &updated))
	home, _ := updated.Screen("home")
	el, ok := home.Element("b1")
	require.True(t, ok)
	assert.Equal(t, "Checkout", el.Properties["text"])
	assert.Equal(t, float64(24), el.Properties["padding"])
	assert.Equal(t, "cart", el.Properties["navigateTo"])
}

func TestEditCommand_UnknownElement(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)

	_, err := executeCommand(t, &app{driver: answerDriver{}}, "", "edit", project, "--screen", "home", "--element", "zz")
	require.ErrorContains(t, err, `element "zz" not found`)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	cfg := writeFixture(t, "screengen.yaml", "renderer: swiftui\n")
	project := writeFixture(t, "shop.json", shopProject)

	_, err := executeCommand(t, &app{}, "", "--config", cfg, "generate", project)
	require.Error(t, err)
}

func TestLintCommand(t *testing.T) {
	project := writeFixture(t, "shop.json", shopProject)

	stdout, err := executeCommand(t, &app{}, "", "lint", project)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok")

	broken := strings.Replace(shopProject, `"navigateTo": "cart"`, `"navigateTo": "checkout"`, 1)
	stdout, err = executeCommand(t, &app{}, broken, "lint", "-")
	require.ErrorContains(t, err, "1 issue(s)")
	assert.Contains(t, stdout, "/screens/0/elements/0/properties/navigateTo")
	assert.Contains(t, stdout, `navigation target "checkout" is not a screen`)
}

func TestGenerateCommand_ListsRenderers(t *testing.T) {
	stdout, err := executeCommand(t, &app{}, "", "generate", "--list")
	require.NoError(t, err)
	assert.Equal(t, "flutter\ttext/x-dart; charset=utf-8\npreview\tapplication/json\n", stdout)
}
