package model

import "github.com/shopspring/decimal"

// Estados shared by compras and ventas.
const (
	EstadoPendiente   = "pendiente"
	EstadoPreparacion = "en preparación"
	EstadoCompletado  = "completado"
)

// Compra is a purchase from a proveedor. A compra in estado completado has
// already moved its insumos into stock.
type Compra struct {
	ID          uint            `gorm:"primaryKey;column:id_compra" json:"id_compra"`
	IDProveedor uint            `gorm:"column:id_proveedor" json:"id_proveedor"`
	FechaCompra Fecha           `gorm:"column:fecha_compra;type:date" json:"fecha_compra"`
	Estado      string          `gorm:"column:estado;not null" json:"estado"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric(12,2)" json:"total"`
	Proveedor   *Proveedor      `gorm:"foreignKey:IDProveedor;references:ID" json:"proveedor,omitempty"`
	Detalles    []DetalleCompra `gorm:"foreignKey:IDCompra;references:ID" json:"detalles"`
	BaseModel
}

func (Compra) TableName() string { return "compras" }

type DetalleCompra struct {
	ID             uint            `gorm:"primaryKey;column:id_detalle_compra" json:"id_detalle_compra"`
	IDCompra       uint            `gorm:"column:id_compra" json:"id_compra"`
	IDInsumo       uint            `gorm:"column:id_insumo" json:"id_insumo"`
	Cantidad       int             `gorm:"column:cantidad" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:numeric(12,2)" json:"precio_unitario"`
	Insumo         *Insumo         `gorm:"foreignKey:IDInsumo;references:ID" json:"insumo,omitempty"`
}

func (DetalleCompra) TableName() string { return "detalles_compra" }
