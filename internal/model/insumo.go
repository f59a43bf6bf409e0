package model

// CategoriaInsumo groups insumos (harinas, lácteos, empaques, ...).
type CategoriaInsumo struct {
	ID          uint   `gorm:"primaryKey;column:id_categoria" json:"id_categoria"`
	Nombre      string `gorm:"column:nombre;not null" json:"nombre"`
	Descripcion string `gorm:"column:descripcion" json:"descripcion"`
	BaseModel
}

func (CategoriaInsumo) TableName() string { return "categorias_insumo" }

// Insumo is a raw material tracked by stock_actual. Stock only moves through
// compras (in) and producción (out).
type Insumo struct {
	ID          uint             `gorm:"primaryKey;column:id_insumo" json:"id_insumo"`
	Nombre      string           `gorm:"column:nombre;not null" json:"nombre"`
	StockActual int              `gorm:"column:stock_actual;default:0" json:"stock_actual"`
	IDCategoria uint             `gorm:"column:id_categoria" json:"id_categoria"`
	Categoria   *CategoriaInsumo `gorm:"foreignKey:IDCategoria;references:ID" json:"categoria,omitempty"`
	BaseModel
}

func (Insumo) TableName() string { return "insumos" }
