// pkg/templates/registry_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Embedded template bundle
// PURPOSE: Test template set resolution and license lookups

package templates_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/templates"
	"github.com/arthur-debert/skaff/pkg/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		language   string
		wantSource string
		wantHeader string
	}{
		{
			name:       "c",
			language:   "c",
			wantSource: "src/main.c",
			wantHeader: "include/cmnutil.h",
		},
		{
			name:       "cpp",
			language:   "cpp",
			wantSource: "src/main.cpp",
			wantHeader: "include/cmnutil.hpp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := templates.Resolve(tt.language)
			require.NoError(t, err)
			assert.Equal(t, tt.language, set.Language)
			require.NoError(t, set.Validate())

			byPath := indexEntries(set)

			for _, dir := range []string{"build", "coccinelle", "doc", "examples", "img", "include", "src", "tests"} {
				entry, ok := byPath[dir]
				require.True(t, ok, "missing skeleton directory %s", dir)
				assert.True(t, entry.Dir)
			}

			for _, file := range []string{
				".editorconfig", ".gdbinit", ".gitattributes", ".gitignore",
				".travis.yml", "CMakeLists.txt", "src/CMakeLists.txt",
				tt.wantSource, tt.wantHeader,
			} {
				entry, ok := byPath[file]
				require.True(t, ok, "missing file %s", file)
				assert.False(t, entry.Dir)
				assert.NotEmpty(t, entry.Content, "file %s has no content", file)
			}

			travis := byPath[".travis.yml"]
			assert.True(t, strings.HasPrefix(string(travis.Content), "language: "+tt.language+"\n"))
		})
	}
}

func TestResolveUnknownLanguage(t *testing.T) {
	set, err := templates.Resolve("rust")
	assert.Nil(t, set)
	assert.True(t, errors.IsCode(err, errors.ErrTemplateNotFound))
}

func TestResolveReturnsCopy(t *testing.T) {
	first, err := templates.Resolve("c")
	require.NoError(t, err)
	first.Entries = append(first.Entries, types.TemplateEntry{RelPath: "extra", Dir: true})
	first.Entries[0].RelPath = "mutated"

	second, err := templates.Resolve("c")
	require.NoError(t, err)
	byPath := indexEntries(second)
	_, hasExtra := byPath["extra"]
	assert.False(t, hasExtra)
	_, hasMutated := byPath["mutated"]
	assert.False(t, hasMutated)
}

func TestLanguagesAndLicenses(t *testing.T) {
	assert.Equal(t, []string{"c", "cpp"}, templates.Languages())
	assert.Equal(t, []string{"bsd2", "bsd3", "gpl2", "gpl3", "mit"}, templates.Licenses())

	assert.True(t, templates.IsLanguage("cpp"))
	assert.False(t, templates.IsLanguage("fortran"))
	assert.True(t, templates.IsLicense("gpl3"))
	assert.False(t, templates.IsLicense("apache2"))
}

func TestNeedsSigning(t *testing.T) {
	for _, signed := range []string{"bsd2", "bsd3", "mit"} {
		assert.True(t, templates.NeedsSigning(signed), signed)
	}
	for _, unsigned := range []string{"gpl2", "gpl3"} {
		assert.False(t, templates.NeedsSigning(unsigned), unsigned)
	}
}

func TestLicenseBodies(t *testing.T) {
	for _, license := range templates.Licenses() {
		text, err := templates.LicenseText(license)
		require.NoError(t, err, license)
		assert.NotEmpty(t, text, license)

		md, err := templates.LicenseMarkdown(license)
		require.NoError(t, err, license)
		assert.NotEmpty(t, md, license)
	}

	_, err := templates.LicenseText("wtfpl")
	assert.True(t, errors.IsCode(err, errors.ErrTemplateNotFound))
}

func TestFallbackDoxyfile(t *testing.T) {
	content := templates.FallbackDoxyfile()
	assert.Contains(t, string(content), "PROJECT_NAME")
}

func indexEntries(set *types.TemplateSet) map[string]types.TemplateEntry {
	byPath := make(map[string]types.TemplateEntry, len(set.Entries))
	for _, entry := range set.Entries {
		byPath[entry.RelPath] = entry
	}
	return byPath
}
