package service_test

import (
	"testing"

	"delicrem-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteCrear(t *testing.T) {
	svc := service.NewClienteService(newStubClienteRepo())

	c, err := svc.Crear(&service.ClienteRequest{
		Nombre:   "Panadería La Espiga",
		Contacto: "3159876543",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), c.ID)
}

func TestClienteNombreCorto(t *testing.T) {
	svc := service.NewClienteService(newStubClienteRepo())

	_, err := svc.Crear(&service.ClienteRequest{Nombre: "Al", Contacto: "3159876543"})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "nombre")
}

func TestClienteEliminarEnUso(t *testing.T) {
	repo := newStubClienteRepo()
	svc := service.NewClienteService(repo)

	c, err := svc.Crear(&service.ClienteRequest{
		Nombre:   "Panadería La Espiga",
		Contacto: "3159876543",
	})
	require.NoError(t, err)
	repo.enUso[c.ID] = true

	err = svc.Eliminar(c.ID)
	require.Error(t, err)
	assert.Equal(t, "El cliente no se puede eliminar porque se encuentra asociado a una venta o pedido.", err.Error())
}
