package steps

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/vagrantlab/vlab/cli/errcode"
	"github.com/vagrantlab/vlab/cli/scaffold/internal/project"
)

// templateFileNamePattern matches file names to be rendered by the engine.
var templateFileNamePattern = regexp.MustCompile(`^(.*)\.vl\.template$`)

func renderFile(projectCtx *project.Ctx, vars map[string]string, filePath string,
	fileInfo os.FileInfo,
) error {
	if fileInfo.Mode().IsDir() {
		return nil
	}

	if matches := templateFileNamePattern.FindStringSubmatch(fileInfo.Name()); matches != nil {
		// File name matches template pattern. Render the file.
		resultFilePath := path.Join(path.Dir(filePath), matches[1])
		if err := projectCtx.Engine.RenderFile(filePath, resultFilePath, vars); err != nil {
			return err
		}
		// Remove original template file.
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error removing %s: %s", filePath, err)
		}
		filePath = resultFilePath
	}

	// Render file name.
	newFileName, err := projectCtx.Engine.RenderText(filePath, vars)
	if err != nil {
		return fmt.Errorf("failed file name processing %s: %s", filePath, err)
	}
	if newFileName != filePath {
		if err = os.Rename(filePath, newFileName); err != nil {
			return fmt.Errorf("error renaming %s to %s: %s", filePath, newFileName, err)
		}
	}

	return nil
}

// renderTree renders all template files under dirPath with vars. Directories
// named in skipDirNames are not descended into.
func renderTree(projectCtx *project.Ctx, dirPath string, vars map[string]string,
	skipDirNames ...string,
) error {
	skip := make(map[string]bool, len(skipDirNames))
	for _, dirName := range skipDirNames {
		skip[dirName] = true
	}

	err := filepath.Walk(dirPath,
		func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fileInfo.IsDir() && filePath != dirPath && skip[fileInfo.Name()] {
				return filepath.SkipDir
			}
			return renderFile(projectCtx, vars, filePath, fileInfo)
		})
	if err != nil {
		return errcode.Wrap(errcode.KindRenderFailure,
			fmt.Errorf("template instantiation error: %s", err))
	}
	return nil
}
