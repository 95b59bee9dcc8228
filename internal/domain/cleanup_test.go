package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"testgenie.dev/pkg/testgenie/internal/domain"
)

func TestCleanGeneratedCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain code", in: "def test_a():\n    assert True\n", want: "def test_a():\n    assert True"},
		{name: "fenced with language", in: "```python\nimport pytest\n```", want: "import pytest"},
		{name: "fenced without language", in: "```\nconst a = 1;\n```\n", want: "const a = 1;"},
		{name: "language with dash", in: "```objective-c\nx\n```", want: "x"},
		{name: "leading blank lines", in: "\n\n```java\nclass ATest {}\n```\n\n", want: "class ATest {}"},
		{name: "crlf fences", in: "```js\r\nlet a;\r\n```\r\n", want: "let a;"},
		{name: "inner fences kept", in: "```py\n'''\n```\n'''\n```", want: "'''\n```\n'''"},
		{name: "only fences", in: "```python\n```", want: ""},
		{name: "lone opening fence with language", in: "```python", want: ""},
		{name: "lone opening fence with padding", in: "\n```java \r", want: ""},
		{name: "lone bare fence", in: "```", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "whitespace", in: "  \n\t", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CleanGeneratedCode(tt.in))
		})
	}
}

func TestStripAllFences(t *testing.T) {
	in := "```python\nimport requests\n```\n\n```python\ndef test_get():\n    pass\n```"

	assert.Equal(t, "import requests\n\ndef test_get():\n    pass", domain.StripAllFences(in))
}
