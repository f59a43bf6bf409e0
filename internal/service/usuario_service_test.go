package service_test

import (
	"testing"

	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usuarioFixture(t *testing.T) (service.UsuarioService, *stubUsuarioRepo) {
	t.Helper()
	usuarios := newStubUsuarioRepo()
	roles := newStubRolRepo()
	require.NoError(t, roles.Create(&model.Rol{Nombre: "vendedor"}, nil))
	return service.NewUsuarioService(usuarios, roles), usuarios
}

func TestUsuarioRegistrar(t *testing.T) {
	svc, _ := usuarioFixture(t)

	u, err := svc.Registrar(&service.RegistroRequest{
		Nombre:   "Laura Gómez",
		Email:    "laura@delicrem.com",
		Password: "clave123",
		IDRol:    1,
	})
	require.NoError(t, err)
	assert.True(t, u.CheckPassword("clave123"))
	assert.False(t, u.CheckPassword("otra"))
}

func TestUsuarioPasswordCorta(t *testing.T) {
	svc, _ := usuarioFixture(t)

	_, err := svc.Registrar(&service.RegistroRequest{
		Nombre:   "Laura Gómez",
		Email:    "laura@delicrem.com",
		Password: "abcd",
		IDRol:    1,
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "La contraseña debe tener al menos 5 cáracteres.", ve.Fields["password"])
}

func TestUsuarioCorreoDuplicado(t *testing.T) {
	svc, _ := usuarioFixture(t)

	_, err := svc.Registrar(&service.RegistroRequest{
		Nombre:   "Laura Gómez",
		Email:    "laura@delicrem.com",
		Password: "clave123",
		IDRol:    1,
	})
	require.NoError(t, err)

	_, err = svc.Registrar(&service.RegistroRequest{
		Nombre:   "Laura Duplicada",
		Email:    "laura@delicrem.com",
		Password: "clave123",
		IDRol:    1,
	})
	require.Error(t, err)
	assert.Equal(t, "El correo ya se encuentra registrado.", err.Error())
}

func TestUsuarioActualizarSinPassword(t *testing.T) {
	svc, _ := usuarioFixture(t)

	u, err := svc.Registrar(&service.RegistroRequest{
		Nombre:   "Laura Gómez",
		Email:    "laura@delicrem.com",
		Password: "clave123",
		IDRol:    1,
	})
	require.NoError(t, err)

	u, err = svc.Actualizar(u.ID, &service.ActualizarUsuarioRequest{
		Nombre: "Laura Gómez Restrepo",
		Email:  "laura@delicrem.com",
		IDRol:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laura Gómez Restrepo", u.Nombre)
	assert.True(t, u.CheckPassword("clave123"), "la contraseña no debe cambiar")
}

func TestUsuarioRolInexistente(t *testing.T) {
	svc, _ := usuarioFixture(t)

	_, err := svc.Registrar(&service.RegistroRequest{
		Nombre:   "Laura Gómez",
		Email:    "laura@delicrem.com",
		Password: "clave123",
		IDRol:    42,
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "id_rol")
}
