package model

// FichaTecnica is the recipe sheet of a producto: which insumos and how much
// of each one unit of production consumes.
type FichaTecnica struct {
	ID          uint                  `gorm:"primaryKey;column:id_ficha" json:"id_ficha"`
	IDProducto  uint                  `gorm:"column:id_producto" json:"id_producto"`
	Descripcion string                `gorm:"column:descripcion;not null" json:"descripcion"`
	Insumos     string                `gorm:"column:insumos" json:"insumos"` // free-text summary shown on the sheet
	Producto    *Producto             `gorm:"foreignKey:IDProducto;references:ID" json:"producto,omitempty"`
	Detalles    []DetalleFichaTecnica `gorm:"foreignKey:IDFicha;references:ID" json:"detalles"`
	BaseModel
}

func (FichaTecnica) TableName() string { return "fichas_tecnicas" }

type DetalleFichaTecnica struct {
	ID       uint    `gorm:"primaryKey;column:id_detalle_ficha" json:"id_detalle_ficha"`
	IDFicha  uint    `gorm:"column:id_ficha" json:"id_ficha"`
	IDInsumo uint    `gorm:"column:id_insumo" json:"id_insumo"`
	Cantidad int     `gorm:"column:cantidad" json:"cantidad"`
	Insumo   *Insumo `gorm:"foreignKey:IDInsumo;references:ID" json:"insumo,omitempty"`
}

func (DetalleFichaTecnica) TableName() string { return "detalles_ficha_tecnica" }
