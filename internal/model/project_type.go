// Package model defines the data structures shared by the test generation pipeline.
package model

import (
	"fmt"
	"strings"
)

// ProjectType classifies the dominant source ecosystem of a workspace.
// The zero value is Undetected.
type ProjectType uint8

const (
	// Undetected means no supported source files were found.
	Undetected ProjectType = iota
	// Python projects are tested with pytest.
	Python
	// Java projects are tested with JUnit.
	Java
	// NodeJS projects are tested with Jest.
	NodeJS
)

// CommandStep is a single shell command of a test-runner sequence.
type CommandStep struct {
	Command string
	// SkipIfSucceeds is a probe command. The step is skipped when the probe exits zero.
	SkipIfSucceeds string
	// SkipIfExists is a workspace-relative path. The step is skipped when it exists.
	SkipIfExists string
}

// BootstrapFile is a shared setup file written once at the root of the test tree.
type BootstrapFile struct {
	Name    string
	Content string
}

type projectTypeTraits struct {
	name            string
	language        string
	framework       string
	extension       string
	testSuffix      string
	packageInit     string
	resolvesImports bool
	commentPrefix   string
	apiTestFile     string
	bootstrap       *BootstrapFile
	sourceRoots     []string
	importRoots     []string
	runEnv          map[string]string
	runSteps        []CommandStep
}

const pytestBootstrap = `import os
import sys

# Add project root to Python path
project_root = os.path.dirname(os.path.dirname(os.path.abspath(__file__)))
sys.path.insert(0, project_root)

# Import common test fixtures and configurations
import pytest
from unittest.mock import Mock, patch
`

// projectTypeTable holds every per-ecosystem convention, indexed by ProjectType.
var projectTypeTable = [...]projectTypeTraits{
	Undetected: {name: "undetected"},
	Python: {
		name:            "python",
		language:        "Python",
		framework:       "pytest",
		extension:       ".py",
		testSuffix:      "_test",
		packageInit:     "__init__.py",
		resolvesImports: true,
		commentPrefix:   "#",
		apiTestFile:     "api_tests.py",
		bootstrap:       &BootstrapFile{Name: "conftest.py", Content: pytestBootstrap},
		sourceRoots:     []string{"src", "app", "lib", "main", "core"},
		runEnv:          map[string]string{"PYTHONPATH": "{source_root}"},
		runSteps: []CommandStep{
			{Command: "python -m pip install pytest", SkipIfSucceeds: "python -m pytest --version"},
			{Command: "python -m pytest tests/ -v"},
		},
	},
	Java: {
		name:            "java",
		language:        "Java",
		framework:       "JUnit 5",
		extension:       ".java",
		testSuffix:      "Test",
		resolvesImports: true,
		importRoots:     []string{"src/main/java", "src/test/java"},
		commentPrefix:   "//",
		apiTestFile:     "ApiTests.java",
		runSteps: []CommandStep{
			{Command: "mvn -q test"},
		},
	},
	NodeJS: {
		name:          "nodejs",
		language:      "JavaScript",
		framework:     "Jest",
		extension:     ".js",
		testSuffix:    ".test",
		commentPrefix: "//",
		apiTestFile:   "api.test.js",
		runSteps: []CommandStep{
			{Command: "npm install", SkipIfExists: "node_modules"},
			{Command: "npm install --save-dev jest", SkipIfExists: "node_modules/jest"},
			{Command: "npx jest tests/"},
		},
	},
}

// SupportedProjectTypes returns the detectable project types in tie-break priority order.
func SupportedProjectTypes() []ProjectType {
	return []ProjectType{Python, Java, NodeJS}
}

// ParseProjectType converts a name such as "python" or "nodejs" to a ProjectType.
func ParseProjectType(value string) (ProjectType, error) {
	name := strings.ToLower(strings.TrimSpace(value))

	switch name {
	case "js", "javascript", "node", "jest":
		name = NodeJS.String()
	case "py", "pytest":
		name = Python.String()
	case "junit":
		name = Java.String()
	}

	for _, pt := range SupportedProjectTypes() {
		if pt.String() == name {
			return pt, nil
		}
	}

	return Undetected, fmt.Errorf("unsupported project type %q", value)
}

// ProjectTypeForExtension returns the project type owning a source file extension.
func ProjectTypeForExtension(ext string) (ProjectType, bool) {
	ext = strings.ToLower(ext)
	for _, pt := range SupportedProjectTypes() {
		if pt.Extension() == ext {
			return pt, true
		}
	}

	return Undetected, false
}

func (pt ProjectType) traits() projectTypeTraits {
	if int(pt) >= len(projectTypeTable) {
		return projectTypeTable[Undetected]
	}

	return projectTypeTable[pt]
}

// String returns the canonical lowercase name.
func (pt ProjectType) String() string {
	return pt.traits().name
}

// IsDetected reports whether pt is a supported ecosystem.
func (pt ProjectType) IsDetected() bool {
	return pt != Undetected && int(pt) < len(projectTypeTable)
}

// Language returns the human readable language label used in prompts.
func (pt ProjectType) Language() string {
	return pt.traits().language
}

// Framework returns the test framework generated tests target.
func (pt ProjectType) Framework() string {
	return pt.traits().framework
}

// Extension returns the source file extension including the leading dot.
func (pt ProjectType) Extension() string {
	return pt.traits().extension
}

// TestSuffix returns the suffix appended to a source base name to name its test.
func (pt ProjectType) TestSuffix() string {
	return pt.traits().testSuffix
}

// TestFileName returns the test file name for a source base name without extension.
func (pt ProjectType) TestFileName(base string) string {
	return base + pt.TestSuffix() + pt.Extension()
}

// PackageInit returns the package marker file name used when resolving imports, if any.
func (pt ProjectType) PackageInit() string {
	return pt.traits().packageInit
}

// ResolvesImports reports whether imported modules are looked up on disk.
func (pt ProjectType) ResolvesImports() bool {
	return pt.traits().resolvesImports
}

// CommentPrefix returns the single line comment marker of the language.
func (pt ProjectType) CommentPrefix() string {
	return pt.traits().commentPrefix
}

// APITestFileName returns the file name used for contract based API tests.
func (pt ProjectType) APITestFileName() string {
	return pt.traits().apiTestFile
}

// Bootstrap returns the shared bootstrap file, if the ecosystem needs one.
func (pt ProjectType) Bootstrap() (BootstrapFile, bool) {
	b := pt.traits().bootstrap
	if b == nil {
		return BootstrapFile{}, false
	}

	return *b, true
}

// SourceRoots returns candidate production directories, in preference order.
func (pt ProjectType) SourceRoots() []string {
	return append([]string(nil), pt.traits().sourceRoots...)
}

// ImportRoots returns slash-separated directories, relative to a workspace
// root, that also anchor module lookups.
func (pt ProjectType) ImportRoots() []string {
	return append([]string(nil), pt.traits().importRoots...)
}

// RunEnv returns environment variable templates applied to runner steps.
func (pt ProjectType) RunEnv() map[string]string {
	env := make(map[string]string, len(pt.traits().runEnv))
	for k, v := range pt.traits().runEnv {
		env[k] = v
	}

	return env
}

// RunSteps returns the test-runner command sequence.
func (pt ProjectType) RunSteps() []CommandStep {
	return append([]CommandStep(nil), pt.traits().runSteps...)
}
