package steps

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

func TestPrintFollowUpMessage(t *testing.T) {
	var buffer bytes.Buffer
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{}
	projectCtx := project.NewCtx()
	projectCtx.ProjectPath = "/work/demo"
	projectCtx.Vars = map[string]string{"ProjectName": "demo"}

	printFollowUpMsg := PrintFollowUpMessage{Writer: &buffer}
	require.NoError(t, printFollowUpMsg.Run(&scaffoldCtx, &projectCtx))

	output := buffer.String()
	assert.Contains(t, output, "Project 'demo' is ready.")
	assert.Contains(t, output, "alias demo-up='cd /work/demo && ./start-vms.sh'")
	assert.Contains(t, output, "alias demo-halt='cd /work/demo && ./stop-vms.sh'")
}
