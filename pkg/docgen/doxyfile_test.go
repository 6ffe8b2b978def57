// pkg/docgen/doxyfile_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test Doxyfile attribute rewriting

package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteDoxyfileLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "project_name_quoted_and_titled",
			line: "PROJECT_NAME           = \"My Project\"",
			want: "PROJECT_NAME           = \"Hello World\"",
		},
		{
			name: "output_directory",
			line: "OUTPUT_DIRECTORY       =",
			want: "OUTPUT_DIRECTORY       = ./doc",
		},
		{
			name: "extract_all",
			line: "EXTRACT_ALL            = NO",
			want: "EXTRACT_ALL            = YES",
		},
		{
			name: "indented_key",
			line: "  TAB_SIZE = 4",
			want: "  TAB_SIZE = 8",
		},
		{
			name: "comment_untouched",
			line: "# PROJECT_NAME is the title",
			want: "# PROJECT_NAME is the title",
		},
		{
			name: "blank_untouched",
			line: "",
			want: "",
		},
		{
			name: "unrelated_key_untouched",
			line: "GENERATE_LATEX         = YES",
			want: "GENERATE_LATEX         = YES",
		},
		{
			name: "prefix_key_not_confused",
			line: "PROJECT_NAME_SUFFIX    = x",
			want: "PROJECT_NAME_SUFFIX    = x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewriteDoxyfileLine(tt.line, "hello-world"))
		})
	}
}

func TestRewriteDoxyfilePreservesStructure(t *testing.T) {
	input := []byte("# Doxyfile 1.9.1\n\nPROJECT_NAME = \"My Project\"\nOUTPUT_DIRECTORY =\nGENERATE_HTML = YES\n")
	want := "# Doxyfile 1.9.1\n\nPROJECT_NAME = \"Widget\"\nOUTPUT_DIRECTORY = ./doc\nGENERATE_HTML = YES\n"

	assert.Equal(t, want, string(rewriteDoxyfile(input, "widget")))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Widget", titleCase("widget"))
	assert.Equal(t, "Hello World", titleCase("hello-world"))
	assert.Equal(t, "Two Words", titleCase("two words"))
}
