package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountMemberCan(t *testing.T) {
	m := AccountMember{Permissions: []Permission{PermissionDeposit}}

	assert.True(t, m.Can(PermissionView), "view is implicit for every member")
	assert.True(t, m.Can(PermissionDeposit))
	assert.False(t, m.Can(PermissionWithdraw))

	empty := AccountMember{}
	assert.True(t, empty.Can(PermissionView))
	assert.False(t, empty.Can(PermissionDeposit))
}
