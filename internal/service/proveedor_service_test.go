package service_test

import (
	"errors"
	"testing"

	"delicrem-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProveedorCrear(t *testing.T) {
	repo := newStubProveedorRepo()
	svc := service.NewProveedorService(repo)

	p, err := svc.Crear(&service.ProveedorRequest{
		Nombre:   "Harinas del Valle",
		Contacto: "3104567890",
		Asesor:   "María Pérez",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "Harinas del Valle", p.Nombre)
}

func TestProveedorNombreConNumerosEsRechazado(t *testing.T) {
	svc := service.NewProveedorService(newStubProveedorRepo())

	_, err := svc.Crear(&service.ProveedorRequest{
		Nombre:   "Harina2",
		Contacto: "3104567890",
		Asesor:   "María Pérez",
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "nombre")
	assert.Contains(t, ve.Fields["nombre"], "letras")
}

func TestProveedorAceptaDiacriticos(t *testing.T) {
	svc := service.NewProveedorService(newStubProveedorRepo())

	_, err := svc.Crear(&service.ProveedorRequest{
		Nombre:   "Azúcar Ñoño",
		Contacto: "3104567890",
		Asesor:   "José Muñoz",
	})
	assert.NoError(t, err)
}

func TestProveedorContactoInvalido(t *testing.T) {
	svc := service.NewProveedorService(newStubProveedorRepo())

	casos := map[string]string{
		"con letras": "310abc7890",
		"muy corto":  "123456",
		"vacío":      "",
	}
	for nombre, contacto := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := svc.Crear(&service.ProveedorRequest{
				Nombre:   "Harinas del Valle",
				Contacto: contacto,
				Asesor:   "María Pérez",
			})
			var ve *service.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, "contacto")
		})
	}
}

func TestProveedorEliminarConCompras(t *testing.T) {
	repo := newStubProveedorRepo()
	svc := service.NewProveedorService(repo)

	p, err := svc.Crear(&service.ProveedorRequest{
		Nombre:   "Harinas del Valle",
		Contacto: "3104567890",
		Asesor:   "María Pérez",
	})
	require.NoError(t, err)
	repo.conCompras[p.ID] = true

	err = svc.Eliminar(p.ID)
	require.Error(t, err)
	assert.Equal(t, "No se puede eliminar el proveedor ya que se encuentra asociado a una compra.", err.Error())
}

func TestProveedorEliminarInexistente(t *testing.T) {
	svc := service.NewProveedorService(newStubProveedorRepo())

	err := svc.Eliminar(99)
	assert.True(t, errors.Is(err, service.ErrNoEncontrado))
}
