package model

import "github.com/shopspring/decimal"

// Venta is a confirmed sale. Creating one discounts producto stock; deleting
// one restores it.
type Venta struct {
	ID           uint            `gorm:"primaryKey;column:id_venta" json:"id_venta"`
	IDCliente    uint            `gorm:"column:id_cliente" json:"id_cliente"`
	NumeroPedido string          `gorm:"column:numero_pedido" json:"numero_pedido"`
	FechaVenta   Fecha           `gorm:"column:fecha_venta;type:timestamptz" json:"fecha_venta"`
	Estado       string          `gorm:"column:estado;default:pendiente" json:"estado"`
	Pagado       bool            `gorm:"column:pagado;default:false" json:"pagado"`
	Total        decimal.Decimal `gorm:"column:total;type:numeric(12,2)" json:"total"`
	Cliente      *Cliente        `gorm:"foreignKey:IDCliente;references:ID" json:"cliente,omitempty"`
	Detalles     []DetalleVenta  `gorm:"foreignKey:IDVenta;references:ID" json:"detalles"`
	BaseModel
}

func (Venta) TableName() string { return "ventas" }

type DetalleVenta struct {
	ID             uint            `gorm:"primaryKey;column:id_detalle_venta" json:"id_detalle_venta"`
	IDVenta        uint            `gorm:"column:id_venta" json:"id_venta"`
	IDProducto     uint            `gorm:"column:id_producto" json:"id_producto"`
	Cantidad       int             `gorm:"column:cantidad" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:numeric(12,2)" json:"precio_unitario"`
	Producto       *Producto       `gorm:"foreignKey:IDProducto;references:ID" json:"producto,omitempty"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }
