// pkg/types/templateset_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test template set validation rules

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/types"
)

func TestTemplateSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.TemplateEntry
		wantErr bool
	}{
		{
			name: "valid_set",
			entries: []types.TemplateEntry{
				{RelPath: "src", Dir: true},
				{RelPath: "src/main.c", Mode: 0o644, Content: []byte("int main(void)\n")},
				{RelPath: ".gitignore", Mode: 0o644, Content: []byte("build/\n")},
			},
		},
		{
			name:    "empty_set",
			entries: nil,
		},
		{
			name: "absolute_path",
			entries: []types.TemplateEntry{
				{RelPath: "/etc/passwd", Mode: 0o644},
			},
			wantErr: true,
		},
		{
			name: "parent_escape",
			entries: []types.TemplateEntry{
				{RelPath: "../outside", Mode: 0o644},
			},
			wantErr: true,
		},
		{
			name: "embedded_parent_escape",
			entries: []types.TemplateEntry{
				{RelPath: "src/../../outside", Mode: 0o644},
			},
			wantErr: true,
		},
		{
			name: "empty_rel_path",
			entries: []types.TemplateEntry{
				{RelPath: "", Mode: 0o644},
			},
			wantErr: true,
		},
		{
			name: "duplicate_path",
			entries: []types.TemplateEntry{
				{RelPath: "README.md", Mode: 0o644},
				{RelPath: "README.md", Mode: 0o644},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := types.TemplateSet{Language: "c", Entries: tt.entries}
			err := set.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrTemplateInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
