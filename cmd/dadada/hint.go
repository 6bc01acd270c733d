package main

import (
	"context"
	"errors"

	dadada "github.com/alnah/go-dadada"
	"github.com/alnah/go-dadada/internal/assets"
	"github.com/alnah/go-dadada/internal/config"
	"github.com/alnah/go-dadada/internal/hints"
	"github.com/alnah/go-dadada/internal/workspace"
)

// hintFor returns the hint appended to an error message, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, dadada.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configNameHint))
	case errors.Is(err, dadada.ErrStyleNotFound):
		return hints.ForAssetNotFound(assets.StyleNames())
	case errors.Is(err, dadada.ErrTemplateSetNotFound):
		return hints.ForAssetNotFound(assets.TemplateSetNames())
	case errors.Is(err, workspace.ErrManifestNotFound):
		return hints.ForWorkspace()
	case errors.Is(err, dadada.ErrOutputAccess):
		return hints.ForOutputDirectory()
	case errors.Is(err, dadada.ErrFileAccess), errors.Is(err, dadada.ErrDecode):
		return hints.ForInputFile()
	}
	return ""
}

// configNameHint is the example config name shown in search path hints.
const configNameHint = "dadada"
