package commands

import (
	"context"
	"fmt"

	"github.com/BishwashGurung/GCM/fledge/generator"
	"github.com/BishwashGurung/GCM/fledge/output"
	"github.com/BishwashGurung/GCM/internal/catalog"
	"github.com/BishwashGurung/GCM/internal/config"
	"github.com/BishwashGurung/GCM/internal/generators/cmakelists"
	"github.com/BishwashGurung/GCM/internal/generators/presets"
	"github.com/BishwashGurung/GCM/internal/generators/scripts"
	"github.com/BishwashGurung/GCM/internal/platform"
	"github.com/BishwashGurung/GCM/internal/project"
)

// generate renders every artifact of mode and writes the files in catalog
// order into the working directory.
func generate(ctx context.Context, host platform.Host, cfg *config.Config, mode catalog.Mode) error {
	ws, err := project.FromWorkingDir(host)
	if err != nil {
		return err
	}

	output.Verbose(fmt.Sprintf("Project name: %s", ws.Name))
	output.Verbose(fmt.Sprintf("Mode: %s", mode.Name))
	output.Verbose(fmt.Sprintf("CMake version: %s", config.CMakeVersionString(cfg.CMakeVersion)))

	var ops []generator.Operation
	for _, artifact := range mode.Artifacts {
		artifactOps, err := operations(host, cfg, ws, artifact)
		if err != nil {
			return err
		}
		ops = append(ops, artifactOps...)
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: cfg.DryRun,
		Writer: output.Stdout(),
	}); err != nil {
		return err
	}

	if cfg.DryRun {
		output.Info("Dry run: no files were written")
	}
	return nil
}

// operations returns the write operations for one artifact.
func operations(host platform.Host, cfg *config.Config, ws project.Workspace, artifact catalog.Artifact) ([]generator.Operation, error) {
	switch artifact {
	case catalog.ArtifactCMakeLists:
		return cmakelists.New(ws.Dir, cfg.CMakeVersion).Generate(ws.Name, host)

	case catalog.ArtifactPresets:
		return presets.New(ws.Dir, cfg.CMakeVersion).Generate(host)

	case catalog.ArtifactUnixScripts:
		g, err := scripts.New(ws.Dir, scripts.Unix, cfg.UnixCompiler)
		if err != nil {
			return nil, err
		}
		return g.Generate(ws.Name, host)

	case catalog.ArtifactWindowsScripts:
		g, err := scripts.New(ws.Dir, scripts.Windows, cfg.WindowsCompiler)
		if err != nil {
			return nil, err
		}
		return g.Generate(ws.Name, host)
	}

	return nil, fmt.Errorf("unknown artifact %q", artifact)
}
