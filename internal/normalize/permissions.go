package normalize

import (
	"sort"

	"github.com/krapaoshare/krapao-go/internal/model"
)

// PermissionFlags is the alternative wire representation of a member's
// permission set: one boolean per capability instead of a tag list.
type PermissionFlags struct {
	View     bool
	Deposit  bool
	Withdraw bool
}

// Permissions canonicalizes a permission tag list: duplicates removed,
// the implicit "view" tag stripped, result sorted. Idempotent — feeding
// the output back in returns an equal slice. The input is never
// mutated.
func Permissions(tags []model.Permission) []model.Permission {
	seen := make(map[model.Permission]bool, len(tags))
	out := make([]model.Permission, 0, len(tags))

	for _, tag := range tags {
		if tag == "" || tag == model.PermissionView {
			continue
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PermissionsFromFlags converts the flags-object wire form into the
// canonical tag list. The view flag is ignored: viewing is implicit for
// every member.
func PermissionsFromFlags(flags PermissionFlags) []model.Permission {
	var tags []model.Permission
	if flags.Deposit {
		tags = append(tags, model.PermissionDeposit)
	}
	if flags.Withdraw {
		tags = append(tags, model.PermissionWithdraw)
	}
	return Permissions(tags)
}
