package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(p *model.Producto) error
	FindAll() ([]model.Producto, error)
	FindByID(id uint) (*model.Producto, error)
	Update(p *model.Producto) error
	Delete(id uint) error
	UpdateStock(tx *gorm.DB, id uint, nuevoStock int) error
	EnUso(id uint) (bool, error)
}

type productoRepo struct {
	db *gorm.DB
}

func NewProductoRepo(db *gorm.DB) ProductoRepository {
	return &productoRepo{db}
}

func (r *productoRepo) Create(p *model.Producto) error {
	return r.db.Create(p).Error
}

func (r *productoRepo) FindAll() ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.Order("id_producto").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByID(id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.First(&p, "id_producto = ?", id).Error
	return &p, err
}

func (r *productoRepo) Update(p *model.Producto) error {
	return r.db.Save(p).Error
}

func (r *productoRepo) Delete(id uint) error {
	return r.db.Delete(&model.Producto{}, "id_producto = ?", id).Error
}

func (r *productoRepo) UpdateStock(tx *gorm.DB, id uint, nuevoStock int) error {
	return tx.Model(&model.Producto{}).
		Where("id_producto = ?", id).
		Update("stock", nuevoStock).Error
}

// EnUso backs the delete guard: a producto referenced by a venta or a pedido
// cannot be removed.
func (r *productoRepo) EnUso(id uint) (bool, error) {
	var n int64
	if err := r.db.Model(&model.DetalleVenta{}).Where("id_producto = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := r.db.Model(&model.DetallePedido{}).Where("id_producto = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
