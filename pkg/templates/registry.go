package templates

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/types"
)

//go:embed all:templates
var bundle embed.FS

// perLanguage describes the language-specific file names within the bundle.
type perLanguage struct {
	sourceFile string
	headerFile string
}

var languages = map[string]perLanguage{
	"c":   {sourceFile: "main.c", headerFile: "cmnutil.h"},
	"cpp": {sourceFile: "main.cpp", headerFile: "cmnutil.hpp"},
}

// skeletonDirs are the empty subdirectories every skeleton starts with.
var skeletonDirs = []string{
	"build",
	"coccinelle",
	"doc",
	"examples",
	"img",
	"include",
	"src",
	"tests",
}

// dotfiles maps bundle names under common/ to the hidden file each becomes
// in the project root.
var dotfiles = []string{
	"editorconfig",
	"gdbinit",
	"gitattributes",
	"gitignore",
}

var signableLicenses = map[string]bool{
	"bsd2": true,
	"bsd3": true,
	"mit":  true,
}

var allLicenses = []string{"bsd2", "bsd3", "gpl2", "gpl3", "mit"}

const (
	dirMode  = 0o755
	fileMode = 0o644
)

var (
	loadOnce sync.Once
	loadErr  error
	registry map[string]*types.TemplateSet
)

// Languages returns the supported project-language keys, sorted.
func Languages() []string {
	keys := make([]string, 0, len(languages))
	for key := range languages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Licenses returns the supported license keys, sorted.
func Licenses() []string {
	out := make([]string, len(allLicenses))
	copy(out, allLicenses)
	return out
}

// IsLanguage reports whether key names a supported language.
func IsLanguage(key string) bool {
	_, ok := languages[key]
	return ok
}

// IsLicense reports whether key names a supported license.
func IsLicense(key string) bool {
	for _, l := range allLicenses {
		if l == key {
			return true
		}
	}
	return false
}

// NeedsSigning reports whether the license text expects a copyright line
// with year and authors prepended.
func NeedsSigning(license string) bool {
	return signableLicenses[license]
}

// Resolve looks up the template set for the given project-language key.
// The returned set is a copy; callers may append project-specific entries
// without affecting later resolutions.
func Resolve(language string) (*types.TemplateSet, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, errors.Wrap(loadErr, errors.ErrInternal, "template bundle is corrupt")
	}
	base, ok := registry[language]
	if !ok {
		return nil, errors.Newf(errors.ErrTemplateNotFound,
			"unknown project language %q (supported: %v)", language, Languages())
	}
	set := &types.TemplateSet{
		Language: base.Language,
		Entries:  make([]types.TemplateEntry, len(base.Entries)),
	}
	copy(set.Entries, base.Entries)
	return set, nil
}

// LicenseText returns the plain-text body for the given license key.
func LicenseText(license string) ([]byte, error) {
	return licenseBody(license, "txt")
}

// LicenseMarkdown returns the markdown body for the given license key.
func LicenseMarkdown(license string) ([]byte, error) {
	return licenseBody(license, "md")
}

// FallbackDoxyfile returns the static Doxyfile used when the doxygen
// program is not available to generate one.
func FallbackDoxyfile() []byte {
	content, err := bundle.ReadFile("templates/common/Doxyfile")
	if err != nil {
		// The bundle is compiled in; a missing member is a build defect.
		panic(fmt.Sprintf("templates: embedded Doxyfile missing: %v", err))
	}
	return content
}

func licenseBody(license, format string) ([]byte, error) {
	if !IsLicense(license) {
		return nil, errors.Newf(errors.ErrTemplateNotFound,
			"unknown license %q (supported: %v)", license, Licenses())
	}
	content, err := bundle.ReadFile("templates/license/" + license + "." + format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal,
			"license %q missing from template bundle", license)
	}
	return content, nil
}

// load builds the per-language template sets once from the embedded bundle.
func load() {
	registry = make(map[string]*types.TemplateSet, len(languages))
	for key, lang := range languages {
		set, err := buildSet(key, lang)
		if err != nil {
			loadErr = err
			return
		}
		if err := set.Validate(); err != nil {
			loadErr = err
			return
		}
		registry[key] = set
	}
}

func buildSet(key string, lang perLanguage) (*types.TemplateSet, error) {
	set := &types.TemplateSet{Language: key}

	for _, dir := range skeletonDirs {
		set.Entries = append(set.Entries, types.TemplateEntry{
			RelPath: dir,
			Dir:     true,
			Mode:    dirMode,
		})
	}

	for _, name := range dotfiles {
		content, err := bundle.ReadFile("templates/common/" + name)
		if err != nil {
			return nil, err
		}
		set.Entries = append(set.Entries, types.TemplateEntry{
			RelPath: "." + name,
			Mode:    fileMode,
			Content: content,
		})
	}

	// The travis file carries the single named insertion point resolved
	// at registry level: a language header line.
	travis, err := bundle.ReadFile("templates/common/travis.yml")
	if err != nil {
		return nil, err
	}
	set.Entries = append(set.Entries, types.TemplateEntry{
		RelPath: ".travis.yml",
		Mode:    fileMode,
		Content: append([]byte("language: "+key+"\n"), travis...),
	})

	files := map[string]string{
		"CMakeLists.txt":         "templates/" + key + "/CMakeLists.txt",
		"src/CMakeLists.txt":     "templates/" + key + "/src/CMakeLists.txt",
		"src/" + lang.sourceFile: "templates/" + key + "/src/" + lang.sourceFile,
		"include/" + lang.headerFile: "templates/" + key + "/include/" + lang.headerFile,
	}
	relPaths := make([]string, 0, len(files))
	for rel := range files {
		relPaths = append(relPaths, rel)
	}
	sort.Strings(relPaths)
	for _, rel := range relPaths {
		content, err := bundle.ReadFile(files[rel])
		if err != nil {
			return nil, err
		}
		set.Entries = append(set.Entries, types.TemplateEntry{
			RelPath: rel,
			Mode:    fileMode,
			Content: content,
		})
	}

	return set, nil
}
