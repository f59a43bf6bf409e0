package model

import "github.com/shopspring/decimal"

// Pedido is a customer order. fecha_pago is null until the pedido is marked
// pagado; pedidos never move stock (producción does).
type Pedido struct {
	ID           uint            `gorm:"primaryKey;column:id_pedido" json:"id_pedido"`
	IDCliente    uint            `gorm:"column:id_cliente" json:"id_cliente"`
	NumeroPedido string          `gorm:"column:numero_pedido;not null" json:"numero_pedido"`
	FechaEntrega Fecha           `gorm:"column:fecha_entrega;type:timestamptz" json:"fecha_entrega"`
	FechaPago    *Fecha          `gorm:"column:fecha_pago;type:timestamptz" json:"fecha_pago"`
	Estado       string          `gorm:"column:estado;default:pendiente" json:"estado"`
	Pagado       bool            `gorm:"column:pagado;default:false" json:"pagado"`
	Total        decimal.Decimal `gorm:"column:total;type:numeric(12,2)" json:"total"`
	Cliente      *Cliente        `gorm:"foreignKey:IDCliente;references:ID" json:"cliente,omitempty"`
	Detalles     []DetallePedido `gorm:"foreignKey:IDPedido;references:ID" json:"detalles"`
	BaseModel
}

func (Pedido) TableName() string { return "pedidos" }

type DetallePedido struct {
	ID         uint      `gorm:"primaryKey;column:id_detalle_pedido" json:"id_detalle_pedido"`
	IDPedido   uint      `gorm:"column:id_pedido" json:"id_pedido"`
	IDProducto uint      `gorm:"column:id_producto" json:"id_producto"`
	Cantidad   int       `gorm:"column:cantidad" json:"cantidad"`
	Producto   *Producto `gorm:"foreignKey:IDProducto;references:ID" json:"producto,omitempty"`
}

func (DetallePedido) TableName() string { return "detalles_pedido" }
