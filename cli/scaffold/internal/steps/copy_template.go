package steps

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"github.com/vagrantlab/vlab/cli/errcode"
	"github.com/vagrantlab/vlab/cli/scaffold/builtin_templates"
	"github.com/vagrantlab/vlab/cli/util"
)

const defaultDirPermissions = os.FileMode(0755)

// copyTemplateRoot instantiates the template root named rootName in dstPath.
// Template roots found in search paths take priority over the builtin ones.
func copyTemplateRoot(searchPaths []string, rootName, dstPath string) error {
	for _, templatesLocation := range searchPaths {
		templatePath := filepath.Join(templatesLocation, rootName)
		if util.IsDir(templatePath) {
			log.Debugf("Using template from %s", templatePath)
			if err := copy.Copy(templatePath, dstPath); err != nil {
				return errcode.Wrap(errcode.KindRenderFailure,
					fmt.Errorf("template copying failed: %s", err))
			}
			return nil
		}
	}

	return copyBuiltinTemplateRoot(rootName, dstPath)
}

// copyBuiltinTemplateRoot instantiates an embedded template root in dstPath.
// Embedded files lose their modes, so the modes come from generated tables.
func copyBuiltinTemplateRoot(rootName, dstPath string) error {
	fileModes, ok := builtin_templates.FileModes[rootName]
	if !ok {
		return errcode.New(errcode.KindTemplateMissing,
			"template '%s' is not found", rootName)
	}
	log.Debugf("Using builtin template '%s'", rootName)

	rootPath := path.Join("templates", rootName)
	err := fs.WalkDir(builtin_templates.TemplatesFs, rootPath,
		func(srcPath string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			targetPath := dstPath
			if srcPath != rootPath {
				relPath := strings.TrimPrefix(srcPath, rootPath+"/")
				targetPath = filepath.Join(dstPath, filepath.FromSlash(relPath))
			}
			if entry.IsDir() {
				return util.CreateDirectory(targetPath, defaultDirPermissions)
			}

			fileMode := os.FileMode(0644)
			if mode, found := fileModes[strings.TrimPrefix(srcPath, rootPath+"/")]; found {
				fileMode = os.FileMode(mode)
			}
			return util.FsCopyFileChangePerms(builtin_templates.TemplatesFs,
				srcPath, targetPath, fileMode)
		})
	if err != nil {
		return errcode.Wrap(errcode.KindTemplateMissing,
			fmt.Errorf("failed to instantiate builtin template '%s': %s", rootName, err))
	}

	return nil
}
