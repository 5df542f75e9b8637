package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissions_Can(t *testing.T) {
	w := Worker{Permissions: Permissions{CreateEvents: true, DeleteClients: true}}

	assert.True(t, w.Can(CreateEvents))
	assert.True(t, w.Can(DeleteClients))
	assert.False(t, w.Can(UpdateEvents))
	assert.False(t, w.Can(PermissionNone))
	assert.False(t, w.Can(Permission(999)))
}

func TestPermissions_EveryFlagIsReachable(t *testing.T) {
	for perm := UpdateVirtualGyms; perm <= DeleteCalendarAppointments; perm++ {
		var p Permissions
		assert.False(t, p.Can(perm), perm.String())
	}

	all := Permissions{}
	vals := all.values()
	assert.Len(t, vals, len(permissionColumns))
	assert.Len(t, permissionNames, len(permissionColumns)+1)
}

func TestPermission_String(t *testing.T) {
	assert.Equal(t, "createEvents", CreateEvents.String())
	assert.Equal(t, "updateVirtualGyms", UpdateVirtualGyms.String())
	assert.Equal(t, "unknown", Permission(-1).String())
}
