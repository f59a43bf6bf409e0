package model

import "strings"

// RolAdministrador is protected: it always keeps the Roles permiso so nobody
// can lock the console out of role management.
const RolAdministrador = "administrador"

type Rol struct {
	ID       uint      `gorm:"primaryKey;column:id_rol" json:"id_rol"`
	Nombre   string    `gorm:"column:nombre;uniqueIndex;not null" json:"nombre"`
	Permisos []Permiso `gorm:"many2many:permisos_rol" json:"permisosRol"`
	BaseModel
}

func (Rol) TableName() string { return "roles" }

// EsAdministrador matches the protected role name case-insensitively.
func (r *Rol) EsAdministrador() bool {
	return strings.EqualFold(r.Nombre, RolAdministrador)
}

type Permiso struct {
	ID     uint   `gorm:"primaryKey;column:id_permiso" json:"id_permiso"`
	Nombre string `gorm:"column:nombre_permiso;uniqueIndex;not null" json:"nombre_permiso"`
}

func (Permiso) TableName() string { return "permisos" }

// Permission catalogue. Names match the console's navigation entries; the
// middleware guards routes with these same values.
const (
	PermisoInicio      = "Inicio"
	PermisoRoles       = "Roles"
	PermisoUsuarios    = "Usuarios"
	PermisoCompras     = "Gestión de Compras"
	PermisoProveedores = "Proveedores"
	PermisoCategorias  = "Categoría de Insumos"
	PermisoInsumos     = "Insumos"
	PermisoFichas      = "Ficha técnica"
	PermisoProductos   = "Productos"
	PermisoVentas      = "Gestión de Ventas"
	PermisoClientes    = "Clientes"
	PermisoPedidos     = "Pedidos"
)

// PermisosPorDefecto is the seed catalogue.
var PermisosPorDefecto = []string{
	PermisoInicio,
	PermisoRoles,
	PermisoUsuarios,
	PermisoCompras,
	PermisoProveedores,
	PermisoCategorias,
	PermisoInsumos,
	PermisoFichas,
	PermisoProductos,
	PermisoVentas,
	PermisoClientes,
	PermisoPedidos,
}
