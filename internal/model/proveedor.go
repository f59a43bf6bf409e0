package model

// Proveedor is a raw-material supplier.
type Proveedor struct {
	ID       uint   `gorm:"primaryKey;column:id_proveedor" json:"id_proveedor"`
	Nombre   string `gorm:"column:nombre;not null" json:"nombre"`
	Contacto string `gorm:"column:contacto;not null" json:"contacto"`
	Asesor   string `gorm:"column:asesor" json:"asesor"`
	BaseModel
}

func (Proveedor) TableName() string { return "proveedores" }
