package model

import "github.com/shopspring/decimal"

// Producto is a finished good. Stock increases through producción and
// decreases through ventas.
type Producto struct {
	ID          uint            `gorm:"primaryKey;column:id_producto" json:"id_producto"`
	Nombre      string          `gorm:"column:nombre;not null" json:"nombre"`
	Descripcion string          `gorm:"column:descripcion" json:"descripcion"`
	Precio      decimal.Decimal `gorm:"column:precio;type:numeric(12,2)" json:"precio"`
	Stock       int             `gorm:"column:stock;default:0" json:"stock"`
	BaseModel
}

func (Producto) TableName() string { return "productos" }
