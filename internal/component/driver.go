// Package component walks a component's source tree and applies the
// import rule chains to every file in it.
package component

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/umbrellacheck/internal/config"
	"github.com/Sumatoshi-tech/umbrellacheck/internal/extractor"
	"github.com/Sumatoshi-tech/umbrellacheck/internal/rules"
)

// Driver checks one component tree: the root module in src, each
// upper-case-named nested component recursively, and the examples
// tree. Checking is sequential; violations are collected, structural
// problems (missing src, unreadable files) abort the run.
type Driver struct {
	cfg *config.Config
	log *slog.Logger
}

// NewDriver creates a Driver for the given configuration.
func NewDriver(cfg *config.Config, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}

	return &Driver{cfg: cfg, log: log}
}

// IsSubmoduleName reports whether a directory name marks a nested
// component: the convention is an upper-case first character.
func IsSubmoduleName(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(first)
}

// Check validates the component rooted at root and every nested
// component below it. The component name is the root directory's base
// name.
func (d *Driver) Check(root string) (*Result, error) {
	name := filepath.Base(root)
	result := &Result{Component: name, Components: 1}

	d.log.Debug("checking component", "component", name, "root", root)

	srcDir := filepath.Join(root, d.cfg.SourceDir)

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("list source dir: %w", err)
	}

	var submodules []string

	for _, entry := range entries {
		if entry.IsDir() && IsSubmoduleName(entry.Name()) {
			submodules = append(submodules, entry.Name())
		}
	}

	moduleFiles, err := listModuleFiles(srcDir, submodules)
	if err != nil {
		return nil, err
	}

	checker := rules.NewSourceChecker(name, d.cfg.Naming())

	checkErr := d.checkFiles(moduleFiles, checker, result)
	if checkErr != nil {
		return nil, checkErr
	}

	for _, submodule := range submodules {
		nested, nestedErr := d.Check(filepath.Join(srcDir, submodule))
		if nestedErr != nil {
			return nil, nestedErr
		}

		result.merge(nested)
	}

	examplesErr := d.checkExamples(root, result)
	if examplesErr != nil {
		return nil, examplesErr
	}

	return result, nil
}

// checkExamples validates the optional examples tree with the general
// checker. Examples legitimately import the component's own umbrella
// header, so the own-umbrella guards do not apply.
func (d *Driver) checkExamples(root string, result *Result) error {
	examplesDir := filepath.Join(root, d.cfg.ExamplesDir)

	info, statErr := os.Stat(examplesDir)
	if statErr != nil || !info.IsDir() {
		return nil
	}

	files, err := listTreeFiles(examplesDir)
	if err != nil {
		return err
	}

	checker := rules.NewGeneralChecker(d.cfg.Naming())

	return d.checkFiles(files, checker, result)
}

// checkFiles runs one rule chain over every file, collecting all
// violations. The files themselves double as the module file list for
// the same-module filter.
func (d *Driver) checkFiles(files []string, checker rules.Chain, result *Result) error {
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read source file: %w", err)
		}

		ctx := rules.Context{File: file, ModuleFiles: files}
		result.Files++

		for target := range extractor.Imports(string(data)) {
			if msg := checker.Check(target, ctx); msg != "" {
				d.log.Debug("violation", "file", file, "import", target)

				result.Violations = append(result.Violations, Violation{File: file, Message: msg})
			}
		}
	}

	return nil
}

// listModuleFiles collects the files belonging to the root module of
// srcDir: everything under it except the nested component directories
// immediately below it, which are checked independently.
func listModuleFiles(srcDir string, submodules []string) ([]string, error) {
	skip := make(map[string]bool, len(submodules))
	for _, submodule := range submodules {
		skip[filepath.Join(srcDir, submodule)] = true
	}

	var files []string

	err := filepath.WalkDir(srcDir, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if skip[path] {
				return filepath.SkipDir
			}

			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", srcDir, err)
	}

	return files, nil
}

// listTreeFiles collects every file under root, flat.
func listTreeFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if !entry.IsDir() {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}
