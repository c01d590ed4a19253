package engines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templateText = `machine={{ .MachineName }}
box={{ .Box }}
addr={{ hostAddr .MachineOrdinal }}`

const (
	templateFileName = "Vagrantfile.vl.template"
	resultFileName   = "Vagrantfile"
	fileMode         = os.FileMode(0o640)
)

func TestTemplateFileRender(t *testing.T) {
	workDir := t.TempDir()

	srcFileName := filepath.Join(workDir, templateFileName)
	require.NoError(t, os.WriteFile(srcFileName, []byte(templateText), fileMode))

	dstFileName := filepath.Join(workDir, resultFileName)
	data := map[string]string{
		"MachineName":    "web",
		"Box":            "debian/bookworm64",
		"MachineOrdinal": "2",
	}

	engine := GoTextEngine{}
	require.NoError(t, engine.RenderFile(srcFileName, dstFileName, data))

	// Check generated file permissions equal to origin.
	stat, err := os.Stat(dstFileName)
	if err != nil {
		t.Errorf("error getting info for %s: %s", dstFileName, err)
	}
	if stat.Mode() != fileMode {
		t.Errorf("%s file permissions are changed. Expected %o, actual %o",
			dstFileName, fileMode, stat.Mode())
	}

	// Check file content.
	var buf []byte
	buf, err = os.ReadFile(dstFileName)
	require.NoError(t, err)

	const expected = `machine=web
box=debian/bookworm64
addr=192.168.56.12`
	require.Equal(t, expected, string(buf))
}

func TestTemplateFileRenderMissingValues(t *testing.T) {
	workDir := t.TempDir()

	srcFileName := filepath.Join(workDir, templateFileName)
	require.NoError(t, os.WriteFile(srcFileName, []byte(templateText), 0o666))

	dstFileName := filepath.Join(workDir, resultFileName)
	data := map[string]string{"MachineName": "web"} // Box & MachineOrdinal are missing.
	engine := GoTextEngine{}
	require.EqualError(t, engine.RenderFile(srcFileName, dstFileName, data), "template execution "+
		"failed: template: Vagrantfile.vl.template:2:7: executing \"Vagrantfile.vl.template\" at "+
		"<.Box>: map has no entry for key \"Box\"")
}

func TestTextRendering(t *testing.T) {
	templateText := `{{.hello}} {{.world}}!`
	expectedText := `Hello world!`
	data := map[string]string{
		"hello": "Hello",
		"world": "world",
	}
	engine := GoTextEngine{}
	actualText, err := engine.RenderText(templateText, data)
	require.NoError(t, err)
	assert.Equal(t, expectedText, actualText)

	// Test missing key.
	delete(data, "hello")
	_, err = engine.RenderText(templateText, data)
	require.EqualError(t, err, "template execution failed: template: file:1:2: "+
		"executing \"file\" at <.hello>: map has no entry for key \"hello\"")

	// Test builtin functions.
	templateText = `{{hostAddr "1"}}`
	expectedText = "192.168.56.11"
	actualText, err = engine.RenderText(templateText, nil)
	require.NoError(t, err)
	assert.Equal(t, expectedText, actualText)

	templateText = `{{atoi "5"}} machines`
	expectedText = "5 machines"
	actualText, err = engine.RenderText(templateText, nil)
	require.NoError(t, err)
	assert.Equal(t, expectedText, actualText)

	templateText = `{{ToLower "VLab"}}`
	expectedText = "vlab"
	actualText, err = engine.RenderText(templateText, nil)
	require.NoError(t, err)
	assert.Equal(t, expectedText, actualText)

	templateText = `{{hostAddr "300"}}`
	_, err = engine.RenderText(templateText, nil)
	require.Error(t, err)
}
