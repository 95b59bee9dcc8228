package domain

import (
	"fmt"
	"path"
	"strings"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

var apiFocus = []string{
	"Happy path requests",
	"Error scenarios",
	"Path parameter validation",
	"Request body validation",
	"Authorization header handling",
	"Response status codes",
	"Response body validation",
	"Error handling",
}

// BuildUnitTestPrompt renders the generation request for one source file.
func BuildUnitTestPrompt(pt m.ProjectType, task m.GenerationTask) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write thorough unit tests for the following %s code using %s. The tests must cover:\n", pt.Language(), pt.Framework())
	b.WriteString("- every function and method\n")
	b.WriteString("- edge cases and error paths\n")
	b.WriteString("- mocks for external dependencies where needed\n")
	b.WriteString("- a clear description for each test\n")
	b.WriteString("- setup and teardown when required\n\n")

	rel := string(task.Source.RelPath)

	b.WriteString("Import rules:\n")
	b.WriteString("- never use placeholder module names such as \"your_module\"\n")
	fmt.Fprintf(&b, "- the file under test is located at %s relative to the project root\n", rel)

	if modulePath := modulePathFor(rel); modulePath != "" && pt == m.Python {
		fmt.Fprintf(&b, "- import it by its module path, for example \"from %s import ...\"\n", modulePath)
	} else {
		b.WriteString("- import it using the path that matches the project layout\n")
	}

	b.WriteString("- import every other module by its full path from the project root\n\n")

	if task.Structure != "" {
		b.WriteString("Project structure:\n")
		b.WriteString(task.Structure)
		b.WriteString("\n")
	}

	b.WriteString("Code to test:\n\n")
	b.Write(task.Source.Content)
	b.WriteString("\n")

	if imported := formatImports(pt, task.Imports); imported != "" {
		b.WriteString("\nContent of imported files that may help with the tests:\n")
		b.WriteString(imported)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nReturn the tests as a single %s file. Reply with the test code only, with explanatory comments inside the code and no other text.\n", pt.Language())

	return b.String()
}

// BuildAPITestPrompt renders the generation request for an API contract.
// contract is the contract rendered as indented JSON.
func BuildAPITestPrompt(pt m.ProjectType, contract, structure string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write %s API tests using %s for the OpenAPI contract below. Cover edge cases, validation and error scenarios.\n", pt.Language(), apiFramework(pt))
	b.WriteString("Focus on:\n")

	for _, item := range apiFocus {
		fmt.Fprintf(&b, "- %s\n", item)
	}

	if structure != "" {
		b.WriteString("\nProject structure, for resolving imports:\n")
		b.WriteString(structure)
	}

	switch pt {
	case m.Java:
		b.WriteString("\nUse RestAssured for the HTTP calls and include every needed import.\n")
	case m.NodeJS:
		b.WriteString("\nInclude setup, teardown and mocking where needed, and every needed import.\n")
	}

	b.WriteString("\nContract:\n")
	b.WriteString(contract)
	b.WriteString("\n")

	fmt.Fprintf(&b, "\nReply with the %s test code only, with explanatory comments inside the code and no other text.\n", pt.Language())

	return b.String()
}

// BuildAnalysisPrompt renders the request for a markdown test report.
// coverage is optional.
func BuildAnalysisPrompt(results, coverage string) string {
	var b strings.Builder

	b.WriteString("Analyze the following JUnit XML test results and write a markdown report with these sections:\n\n")
	b.WriteString("1. Test Summary: total, passed and failed test counts and the pass rate.\n")
	b.WriteString("2. Failed Tests Analysis: each failed test, its error message and stack trace, likely causes and suggested fixes.\n")
	b.WriteString("3. Test Coverage Analysis: covered and uncovered areas when coverage data is available.\n")
	b.WriteString("4. Performance Insights: slow tests and time spent per suite.\n")
	b.WriteString("5. Recommendations: concrete next steps to improve the suite.\n\n")
	b.WriteString("Test results:\n")
	b.WriteString(results)
	b.WriteString("\n")

	if coverage != "" {
		b.WriteString("\nCoverage data:\n")
		b.WriteString(coverage)
		b.WriteString("\n")
	}

	return b.String()
}

func apiFramework(pt m.ProjectType) string {
	switch pt {
	case m.Java:
		return "JUnit 5 and Mockito"
	case m.NodeJS:
		return "Jest and Supertest"
	default:
		return pt.Framework()
	}
}

// formatImports renders resolved imports as comment-headed blocks.
func formatImports(pt m.ProjectType, imports []m.ResolvedImport) string {
	blocks := make([]string, 0, len(imports))

	for _, imp := range imports {
		blocks = append(blocks, fmt.Sprintf("\n%s Content of imported file: %s\n%s", pt.CommentPrefix(), imp.Path, imp.Content))
	}

	return strings.Join(blocks, "\n\n")
}

// modulePathFor converts app/services/billing.py to app.services.billing.
func modulePathFor(rel string) string {
	rel = sanitizeRelPath(rel)
	rel = strings.TrimSuffix(rel, path.Ext(rel))

	return strings.ReplaceAll(rel, "/", ".")
}
