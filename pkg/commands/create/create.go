package create

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/skaff/pkg/config"
	"github.com/arthur-debert/skaff/pkg/docgen"
	"github.com/arthur-debert/skaff/pkg/editor"
	"github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/filesystem"
	"github.com/arthur-debert/skaff/pkg/logging"
	"github.com/arthur-debert/skaff/pkg/materialize"
	"github.com/arthur-debert/skaff/pkg/paths"
	"github.com/arthur-debert/skaff/pkg/templates"
	"github.com/arthur-debert/skaff/pkg/types"
)

// Options defines the inputs for one create run.
type Options struct {
	// Targets are the project directories to materialize, one skeleton
	// each. Each target is processed independently.
	Targets []string

	// Language is the project-language key.
	Language string

	// License is the license key signed into the skeleton.
	License string

	// Authors are signed into licenses and documentation stubs.
	Authors []string

	// Quiet suppresses the interactive editor passes.
	Quiet bool

	// Policy controls handling of pre-existing destination paths.
	Policy materialize.OverwritePolicy

	// ManualFor, when set, is the executable path a manual page is
	// generated for (plus a compressed copy).
	ManualFor string

	// FileSystem is the filesystem to use (optional, defaults to the OS
	// filesystem).
	FileSystem types.FS

	// Generator produces the derived documentation artifacts (optional,
	// defaults to a generator over FileSystem and the real environment).
	Generator *docgen.Generator

	// Confirm, when set and not in quiet mode, gates the interactive
	// editor pass per project.
	Confirm func(root string) bool
}

// ProjectResult describes the outcome for a single target directory.
type ProjectResult struct {
	Skeleton  *types.ProjectSkeleton
	Conflicts []types.ConflictRecord
	Artifacts []types.GeneratedArtifact
	Skipped   []types.SkippedArtifact

	// Warnings collects soft failures: editor problems, tool fallbacks.
	// They degrade the result but never abort it.
	Warnings []string
}

// Result is the aggregate outcome of a create run.
type Result struct {
	Projects []ProjectResult
	Message  string
}

// Run materializes a skeleton for every target, signs the license and
// documentation stubs, and layers on the optional editor pass and derived
// documentation artifacts. Materialization failures are hard errors;
// editor and doc-generation failures are reported as warnings on the
// affected project.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.create")

	if len(opts.Targets) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no target directory given")
	}
	if !templates.IsLanguage(opts.Language) {
		return nil, errors.Newf(errors.ErrTemplateNotFound,
			"unknown project language %q (supported: %v)", opts.Language, templates.Languages())
	}
	if !templates.IsLicense(opts.License) {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unknown license %q (supported: %v)", opts.License, templates.Licenses())
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	result := &Result{}
	for _, target := range opts.Targets {
		log.Debug().Str("target", target).Msg("Scaffolding project")
		project, err := runOne(ctx, fsys, target, opts)
		if err != nil {
			return result, err
		}
		result.Projects = append(result.Projects, *project)
	}

	if len(result.Projects) == 1 {
		result.Message = fmt.Sprintf("Project %s created.", opts.Targets[0])
	} else {
		result.Message = fmt.Sprintf("%d projects created.", len(result.Projects))
	}
	return result, nil
}

func runOne(ctx context.Context, fsys types.FS, target string, opts Options) (*ProjectResult, error) {
	name := projectName(target)

	set, err := templates.Resolve(opts.Language)
	if err != nil {
		return nil, err
	}

	// The include subdirectory named after the project is the one
	// project-specific path in the tree.
	set.Entries = append(set.Entries, types.TemplateEntry{
		RelPath: "include/" + name,
		Dir:     true,
		Mode:    0o755,
	})

	// Stubs and the manifest go through the materializer so they follow
	// the same conflict policy and rollback as every template entry.
	stubs, err := stubEntries(name, opts)
	if err != nil {
		return nil, err
	}
	set.Entries = append(set.Entries, stubs...)

	skeleton, conflicts, err := materialize.Materialize(fsys, target, set, opts.Policy)
	if err != nil {
		return nil, err
	}

	project := &ProjectResult{Skeleton: skeleton, Conflicts: conflicts}

	if !opts.Quiet && (opts.Confirm == nil || opts.Confirm(skeleton.Root)) {
		editPass(ctx, skeleton, "CMakeLists.txt", project)
	}

	generateDocs(ctx, fsys, skeleton, name, opts, project)

	return project, nil
}

// stubEntries builds the signed license, README, CHANGELOG, and project
// manifest as template entries, so they are journaled and conflict-checked
// like the rest of the skeleton.
func stubEntries(name string, opts Options) ([]types.TemplateEntry, error) {
	year := time.Now().Year()
	authors := strings.Join(opts.Authors, ", ")

	licenseText, err := templates.LicenseText(opts.License)
	if err != nil {
		return nil, err
	}
	licenseBody := licenseText
	if templates.NeedsSigning(opts.License) {
		header := fmt.Sprintf("Copyright (c) %d, %s\n", year, authors)
		licenseBody = append([]byte(header), licenseText...)
	}

	licenseMarkdown, err := templates.LicenseMarkdown(opts.License)
	if err != nil {
		return nil, err
	}
	readme := fmt.Sprintf("![%s](img/banner.png)\n\n## Overview\n\n## License\nCopyright &copy; %d %s\n%s",
		name, year, authors, licenseMarkdown)

	changelog := fmt.Sprintf("# Change Log\nThis document records all notable changes to %s.  \n"+
		"This project adheres to [Semantic Versioning](http://semver.org/).\n\n"+
		"## 0.1 (Upcoming)\n* New feature here\n", titleOf(name))

	manifest, err := config.EncodeManifest(&config.Manifest{
		Name:      name,
		Language:  opts.Language,
		License:   opts.License,
		Authors:   opts.Authors,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return []types.TemplateEntry{
		{RelPath: "LICENSE.txt", Mode: 0o644, Content: licenseBody},
		{RelPath: "README.md", Mode: 0o644, Content: []byte(readme)},
		{RelPath: "CHANGELOG.md", Mode: 0o644, Content: []byte(changelog)},
		{RelPath: paths.ProjectManifestName, Mode: 0o644, Content: manifest},
	}, nil
}

// editPass runs one interactive editor session over a file in the
// skeleton. Failures are warnings; the generated default stays in place.
func editPass(ctx context.Context, skeleton *types.ProjectSkeleton, rel string, project *ProjectResult) {
	log := logging.GetLogger("commands.create")
	session := editor.NewSession()
	result, err := session.Edit(ctx, filepath.Join(skeleton.Root, rel))
	if err != nil {
		project.Warnings = append(project.Warnings,
			fmt.Sprintf("editing %s failed: %v", rel, err))
		return
	}
	log.Debug().
		Str("file", rel).
		Str("result", result.String()).
		Msg("Editor pass finished")
}

// generateDocs runs the doc-generation pipeline. When doxygen is absent
// the embedded fallback Doxyfile is copied instead; the component-level
// skip is still recorded.
func generateDocs(ctx context.Context, fsys types.FS, skeleton *types.ProjectSkeleton, name string, opts Options, project *ProjectResult) {
	kinds := []types.ArtifactKind{types.ArtifactDoxyfile}
	if opts.ManualFor != "" {
		kinds = append(kinds, types.ArtifactManualPage, types.ArtifactCompressedManual)
	}

	gen := opts.Generator
	if gen == nil {
		gen = docgen.New(fsys)
	}
	outcomes := gen.Generate(ctx, skeleton, docgen.Options{
		ProgramName: name,
		ProgramPath: opts.ManualFor,
	}, kinds...)

	doxyfilePath := filepath.Join(skeleton.Root, "Doxyfile")
	doxyfileGenerated := false
	for _, outcome := range outcomes {
		if outcome.Generated() {
			project.Artifacts = append(project.Artifacts, *outcome.Artifact)
			if outcome.Artifact.Kind == types.ArtifactDoxyfile {
				doxyfileGenerated = true
			}
			continue
		}
		project.Skipped = append(project.Skipped, *outcome.Skipped)
		project.Warnings = append(project.Warnings,
			fmt.Sprintf("%s skipped: %s", outcome.Skipped.Kind, outcome.Skipped.Reason))
	}

	if !doxyfileGenerated {
		if _, err := fsys.Stat(doxyfilePath); os.IsNotExist(err) {
			if err := fsys.WriteFile(doxyfilePath, templates.FallbackDoxyfile(), 0o644); err == nil {
				project.Warnings = append(project.Warnings,
					"doxygen unavailable, copied fallback Doxyfile")
				skeleton.CreatedPaths = append(skeleton.CreatedPaths, "Doxyfile")
			}
		}
	}

	// The edit pass covers the fallback copy as well, so gate on the
	// Doxyfile being present rather than on how it got there.
	if !opts.Quiet {
		if _, err := fsys.Stat(doxyfilePath); err == nil && (opts.Confirm == nil || opts.Confirm(skeleton.Root)) {
			editPass(ctx, skeleton, "Doxyfile", project)
		}
	}
}

func projectName(target string) string {
	return filepath.Base(filepath.Clean(target))
}

func titleOf(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
