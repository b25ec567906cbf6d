package scaffold

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thingssdk/thingssdk-cli/internal/devices"
	"github.com/thingssdk/thingssdk-cli/internal/manifest"
)

//go:embed templates
var templateFS embed.FS

const (
	templateRoot     = "templates"
	scriptsDir       = "scripts"
	packageFile      = "package.json"
	entryTemplate    = "main.js"
	ignoreTemplate   = "dot-gitignore"
	ignoreFile       = ".gitignore"
	generatedPerm    = 0644
	generatedDirPerm = 0755
)

// Materialize writes the project files into opts.Destination, creating it if
// needed. The runtime's script templates are listed before anything is
// written, so an unknown runtime leaves the destination untouched.
//
// Independent files are written concurrently while the user answers the
// device questions. A failed device capture is not fatal: devices.json is
// skipped and a warning recorded.
func Materialize(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.normalized()
	logger := opts.logger()
	dest := opts.Destination

	scripts, err := scriptTemplates(opts.Runtime.Name)
	if err != nil {
		return nil, err
	}

	projectName, err := manifest.ProjectName(dest)
	if err != nil {
		return nil, err
	}
	pkgData, err := manifest.Marshal(manifest.Build(projectName, opts.Runtime))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", packageFile, err)
	}

	if err := os.MkdirAll(filepath.Join(dest, scriptsDir), generatedDirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Join(dest, scriptsDir), err)
	}

	result := &Result{Destination: dest}
	result.Warnings = append(result.Warnings, validationWarnings(packageFile, manifest.ValidatePackage, pkgData)...)

	var (
		doc        *devices.Document
		captureErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range scripts {
		src := path.Join(templateRoot, opts.Runtime.Name, scriptsDir, name)
		dst := filepath.Join(dest, scriptsDir, name)
		g.Go(func() error { return copyTemplate(src, dst) })
	}
	g.Go(func() error { return writeFile(filepath.Join(dest, packageFile), pkgData) })
	g.Go(func() error {
		return copyTemplate(path.Join(templateRoot, entryTemplate), filepath.Join(dest, entryTemplate))
	})
	g.Go(func() error {
		return copyTemplate(path.Join(templateRoot, ignoreTemplate), filepath.Join(dest, ignoreFile))
	})
	g.Go(func() error {
		doc, captureErr = opts.deviceBuilder().Build(gctx, opts.Runtime.Name)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, name := range scripts {
		result.Files = append(result.Files, path.Join(scriptsDir, name))
	}
	result.Files = append(result.Files, packageFile, entryTemplate, ignoreFile)

	if captureErr != nil {
		logger.Warn("device configuration not captured", zap.Error(captureErr))
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s was not written: %v", devices.FileName, captureErr))
		return result, nil
	}

	warnings, err := writeDevices(dest, doc)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, warnings...)
	result.Files = append(result.Files, devices.FileName)
	result.DevicesWritten = true

	logger.Info("project scaffolded", zap.String("destination", dest), zap.Strings("files", result.Files))
	return result, nil
}

// CaptureDevices asks for the device settings again and rewrites devices.json
// in an existing project. Unlike Materialize, a capture failure is returned.
func CaptureDevices(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.normalized()
	doc, err := opts.deviceBuilder().Build(ctx, opts.Runtime.Name)
	if err != nil {
		return nil, err
	}

	warnings, err := writeDevices(opts.Destination, doc)
	if err != nil {
		return nil, err
	}
	return &Result{
		Destination:    opts.Destination,
		Files:          []string{devices.FileName},
		DevicesWritten: true,
		Warnings:       warnings,
	}, nil
}

// Runtimes returns the runtime names that have a template subtree.
func Runtimes() []string {
	entries, err := fs.ReadDir(templateFS, templateRoot)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// scriptTemplates lists the file names in a runtime's scripts template
// directory, sorted.
func scriptTemplates(runtimeName string) ([]string, error) {
	dir := path.Join(templateRoot, runtimeName, scriptsDir)
	entries, err := fs.ReadDir(templateFS, dir)
	if err != nil {
		return nil, fmt.Errorf("%w for runtime %q: %w", ErrTemplate, runtimeName, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func writeDevices(dest string, doc *devices.Document) ([]string, error) {
	data, err := manifest.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", devices.FileName, err)
	}
	if err := writeFile(filepath.Join(dest, devices.FileName), data); err != nil {
		return nil, err
	}
	return validationWarnings(devices.FileName, manifest.ValidateDevices, data), nil
}

// validationWarnings turns schema issues into warnings. Generated documents
// are written regardless; a warning tells the user what npm or the deployer
// will object to.
func validationWarnings(file string, validate func([]byte) (*manifest.ValidationResult, error), data []byte) []string {
	res, err := validate(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", file, err)}
	}
	var out []string
	for _, issue := range res.Issues {
		out = append(out, fmt.Sprintf("%s: %s", file, issue))
	}
	return out
}

func copyTemplate(src, dst string) error {
	data, err := fs.ReadFile(templateFS, src)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", src, err)
	}
	return writeFile(dst, data)
}

func writeFile(dst string, data []byte) error {
	if err := os.WriteFile(dst, data, generatedPerm); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
