package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SantosRojas/inventory-api/internal/domain/entity"
)

func TestParseRole_NormalizaMayusculasYEspacios(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, entity.ParseRole("  Admin "))
	assert.Equal(t, entity.RoleRoot, entity.ParseRole("ROOT"))
	assert.Equal(t, entity.Role("inventariador"), entity.ParseRole("Inventariador"))
	assert.Equal(t, entity.Role(""), entity.ParseRole("   "))
}

func TestCanSeeAllInstitutions_SoloAdminYRoot(t *testing.T) {
	assert.True(t, entity.RoleAdmin.CanSeeAllInstitutions())
	assert.True(t, entity.RoleRoot.CanSeeAllInstitutions())
	assert.True(t, entity.Role("Admin").CanSeeAllInstitutions(),
		"la comparación de roles no distingue mayúsculas")

	assert.False(t, entity.RoleGuest.CanSeeAllInstitutions())
	assert.False(t, entity.Role("inventariador").CanSeeAllInstitutions())
	assert.False(t, entity.Role("").CanSeeAllInstitutions())
}
