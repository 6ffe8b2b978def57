package docgen

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// doxyfileAttrs are the options rewritten in a freshly generated
// Doxyfile. Values depending on the project are filled in per call.
var doxyfileAttrs = []struct {
	key   string
	value string
}{
	{"PROJECT_NAME", ""}, // quoted project title, set per call
	{"OUTPUT_DIRECTORY", "./doc"},
	{"TAB_SIZE", "8"},
	{"EXTRACT_ALL", "YES"},
	{"EXTRACT_STATIC", "YES"},
	{"RECURSIVE", "YES"},
	{"EXCLUDE", "build"},
	{"HAVE_DOT", "YES"},
	{"UML_LOOK", "YES"},
	{"TEMPLATE_RELATIONS", "YES"},
	{"CALL_GRAPH", "YES"},
	{"DOT_IMAGE_FORMAT", "svg"},
	{"INTERACTIVE_SVG", "YES"},
}

var doxyfileAttrPatterns = compileAttrPatterns()

func compileAttrPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(doxyfileAttrs))
	for _, attr := range doxyfileAttrs {
		patterns[attr.key] = regexp.MustCompile(`^\s*` + attr.key + `\s*=`)
	}
	return patterns
}

// rewriteDoxyfile adjusts the fixed attribute set of a generated Doxyfile
// for the given project name, leaving comments and unrelated options
// untouched.
func rewriteDoxyfile(content []byte, projectName string) []byte {
	var out bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		out.WriteString(rewriteDoxyfileLine(line, projectName))
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func rewriteDoxyfileLine(line, projectName string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line
	}
	for _, attr := range doxyfileAttrs {
		if !doxyfileAttrPatterns[attr.key].MatchString(line) {
			continue
		}
		value := attr.value
		if attr.key == "PROJECT_NAME" {
			value = fmt.Sprintf("%q", titleCase(projectName))
		}
		idx := strings.Index(line, "=")
		return line[:idx+1] + " " + value
	}
	return line
}

// titleCase uppercases the first letter of each word, matching how
// project names are presented in generated documentation stubs.
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
