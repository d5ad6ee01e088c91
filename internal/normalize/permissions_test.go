package normalize

import (
	"testing"

	"github.com/krapaoshare/krapao-go/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPermissions(t *testing.T) {
	tests := []struct {
		name string
		tags []model.Permission
		want []model.Permission
	}{
		{
			name: "nil input",
			tags: nil,
			want: []model.Permission{},
		},
		{
			name: "duplicates removed",
			tags: []model.Permission{"deposit", "deposit", "withdraw"},
			want: []model.Permission{"deposit", "withdraw"},
		},
		{
			name: "implicit view stripped",
			tags: []model.Permission{"view", "deposit"},
			want: []model.Permission{"deposit"},
		},
		{
			name: "empty tags dropped",
			tags: []model.Permission{"", "withdraw"},
			want: []model.Permission{"withdraw"},
		},
		{
			name: "sorted output",
			tags: []model.Permission{"withdraw", "deposit"},
			want: []model.Permission{"deposit", "withdraw"},
		},
		{
			name: "only view",
			tags: []model.Permission{"view"},
			want: []model.Permission{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Permissions(tt.tags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPermissions_Idempotent(t *testing.T) {
	inputs := [][]model.Permission{
		nil,
		{"view", "deposit", "deposit", "withdraw"},
		{"withdraw"},
		{"deposit", "withdraw"},
	}

	for _, input := range inputs {
		once := Permissions(input)
		twice := Permissions(once)
		assert.Equal(t, once, twice, "normalize(normalize(x)) must equal normalize(x) for %v", input)
		assert.NotContains(t, twice, model.Permission("view"))
	}
}

func TestPermissions_DoesNotMutateInput(t *testing.T) {
	input := []model.Permission{"withdraw", "view", "deposit"}
	Permissions(input)

	assert.Equal(t, []model.Permission{"withdraw", "view", "deposit"}, input)
}

func TestPermissionsFromFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags PermissionFlags
		want  []model.Permission
	}{
		{
			name:  "all flags",
			flags: PermissionFlags{View: true, Deposit: true, Withdraw: true},
			want:  []model.Permission{"deposit", "withdraw"},
		},
		{
			name:  "view only yields empty set",
			flags: PermissionFlags{View: true},
			want:  []model.Permission{},
		},
		{
			name:  "deposit only",
			flags: PermissionFlags{Deposit: true},
			want:  []model.Permission{"deposit"},
		},
		{
			name:  "zero flags",
			flags: PermissionFlags{},
			want:  []model.Permission{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PermissionsFromFlags(tt.flags)
			assert.Equal(t, tt.want, got)

			// Flags output is already canonical.
			assert.Equal(t, got, Permissions(got))
		})
	}
}
