package service_test

import (
	"testing"

	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permisosDePrueba() *stubPermisoRepo {
	repo := &stubPermisoRepo{}
	for i, nombre := range model.PermisosPorDefecto {
		repo.permisos = append(repo.permisos, model.Permiso{ID: uint(i + 1), Nombre: nombre})
	}
	return repo
}

func idDePermiso(t *testing.T, repo *stubPermisoRepo, nombre string) uint {
	t.Helper()
	p, err := repo.FindByNombre(nombre)
	require.NoError(t, err)
	return p.ID
}

func nombresDePermisos(rol *model.Rol) []string {
	var nombres []string
	for _, p := range rol.Permisos {
		nombres = append(nombres, p.Nombre)
	}
	return nombres
}

func TestRolCrear(t *testing.T) {
	permisos := permisosDePrueba()
	svc := service.NewRolService(newStubRolRepo(), permisos)

	rol, err := svc.Crear(&service.RolRequest{
		Nombre:   "vendedor",
		Permisos: []uint{idDePermiso(t, permisos, model.PermisoVentas)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{model.PermisoVentas}, nombresDePermisos(rol))
}

func TestRolNombreDuplicado(t *testing.T) {
	permisos := permisosDePrueba()
	svc := service.NewRolService(newStubRolRepo(), permisos)

	_, err := svc.Crear(&service.RolRequest{Nombre: "vendedor"})
	require.NoError(t, err)

	_, err = svc.Crear(&service.RolRequest{Nombre: "vendedor"})
	require.Error(t, err)
	assert.Equal(t, "Ya existe un rol con ese nombre.", err.Error())
}

func TestRolAdministradorConservaRoles(t *testing.T) {
	permisos := permisosDePrueba()
	svc := service.NewRolService(newStubRolRepo(), permisos)

	rol, err := svc.Crear(&service.RolRequest{
		Nombre:   "administrador",
		Permisos: []uint{idDePermiso(t, permisos, model.PermisoVentas)},
	})
	require.NoError(t, err)
	assert.Contains(t, nombresDePermisos(rol), model.PermisoRoles)

	// Editing the rol without checking Roles still keeps it
	rol, err = svc.Actualizar(rol.ID, &service.RolRequest{
		Nombre:   "administrador",
		Permisos: []uint{idDePermiso(t, permisos, model.PermisoClientes)},
	})
	require.NoError(t, err)
	assert.Contains(t, nombresDePermisos(rol), model.PermisoRoles)
	assert.Contains(t, nombresDePermisos(rol), model.PermisoClientes)
}

func TestRolPermisoInexistente(t *testing.T) {
	svc := service.NewRolService(newStubRolRepo(), permisosDePrueba())

	_, err := svc.Crear(&service.RolRequest{Nombre: "vendedor", Permisos: []uint{99}})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "permisos")
}

func TestRolEliminarConPermisosOUsuarios(t *testing.T) {
	permisos := permisosDePrueba()
	rolRepo := newStubRolRepo()
	svc := service.NewRolService(rolRepo, permisos)

	conPermisos, err := svc.Crear(&service.RolRequest{
		Nombre:   "vendedor",
		Permisos: []uint{idDePermiso(t, permisos, model.PermisoVentas)},
	})
	require.NoError(t, err)

	err = svc.Eliminar(conPermisos.ID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar un rol ya que este se encuentra asociado a un usuario y/o tiene permisos asignados.", err.Error())

	vacio, err := svc.Crear(&service.RolRequest{Nombre: "auditor"})
	require.NoError(t, err)
	rolRepo.conUsuarios[vacio.ID] = true

	err = svc.Eliminar(vacio.ID)
	require.Error(t, err)

	libre, err := svc.Crear(&service.RolRequest{Nombre: "invitado"})
	require.NoError(t, err)
	assert.NoError(t, svc.Eliminar(libre.ID))
}
