package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/vagrantlab/vlab/cli/errcode"
	scaffold_ctx "github.com/vagrantlab/vlab/cli/scaffold/context"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
	"github.com/vagrantlab/vlab/cli/util"
)

// Directory names of the project skeleton.
const (
	ImagesDirName   = "images"
	MachinesDirName = "machines"
	gitKeepFileName = ".gitkeep"
)

// CreateProjectLayout represents a step creating the project skeleton
// directories.
type CreateProjectLayout struct {
}

// Run creates the images and machines directories. The images directory
// gets a .gitkeep file so that the empty directory survives a git clone.
func (CreateProjectLayout) Run(ctx *scaffold_ctx.ScaffoldCtx, projectCtx *project.Ctx) error {
	imagesPath := filepath.Join(projectCtx.ProjectPath, ImagesDirName)
	machinesPath := filepath.Join(projectCtx.ProjectPath, MachinesDirName)
	for _, dirName := range []string{imagesPath, machinesPath} {
		if err := util.CreateDirectory(dirName, defaultDirPermissions); err != nil {
			return errcode.Wrap(errcode.KindLayoutFailure, err)
		}
		log.Debugf("'%s' directory is created.", dirName)
	}

	gitKeepPath := filepath.Join(imagesPath, gitKeepFileName)
	if err := os.WriteFile(gitKeepPath, []byte{}, os.FileMode(0644)); err != nil {
		return errcode.Wrap(errcode.KindLayoutFailure,
			fmt.Errorf("error creating %s: %s", gitKeepPath, err))
	}
	projectCtx.MachinesPath = machinesPath

	return nil
}
