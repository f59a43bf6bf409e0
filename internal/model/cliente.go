package model

type Cliente struct {
	ID       uint   `gorm:"primaryKey;column:id_cliente" json:"id_cliente"`
	Nombre   string `gorm:"column:nombre;not null" json:"nombre"`
	Contacto string `gorm:"column:contacto" json:"contacto"`
	BaseModel
}

func (Cliente) TableName() string { return "clientes" }
