package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/apperr"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

func TestUserListAndRoleFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createUser(t, db, "Dev1", model.RoleDeveloper)
	createUser(t, db, "Dev2", model.RoleDeveloper)
	createUser(t, db, "Client", model.RoleClient)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	devs, err := svc.List(model.RoleDeveloper)
	require.NoError(t, err)
	assert.Len(t, devs, 2)
	for _, u := range devs {
		assert.Equal(t, model.RoleDeveloper, u.Role)
	}
}

func TestUserUpdateRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := createUser(t, db, "U", model.RoleUser)

	updated, err := svc.UpdateRole(user.ID, model.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, updated.Role)

	_, err = svc.UpdateRole(user.ID, model.Role("root"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.UpdateRole(999, model.RoleManager)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestBriefsForSkipsUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := createUser(t, db, "Known", model.RoleUser)

	briefs, err := svc.BriefsFor([]uint{user.ID, 999})
	require.NoError(t, err)
	require.Len(t, briefs, 1)
	assert.Equal(t, "Known", briefs[user.ID].Name)

	empty, err := svc.BriefsFor(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
