package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(c *model.Cliente) error
	FindAll() ([]model.Cliente, error)
	FindByID(id uint) (*model.Cliente, error)
	Update(c *model.Cliente) error
	Delete(id uint) error
	EnUso(id uint) (bool, error)
}

type clienteRepo struct {
	db *gorm.DB
}

func NewClienteRepo(db *gorm.DB) ClienteRepository {
	return &clienteRepo{db}
}

func (r *clienteRepo) Create(c *model.Cliente) error {
	return r.db.Create(c).Error
}

func (r *clienteRepo) FindAll() ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.Order("id_cliente").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) FindByID(id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.First(&c, "id_cliente = ?", id).Error
	return &c, err
}

func (r *clienteRepo) Update(c *model.Cliente) error {
	return r.db.Save(c).Error
}

func (r *clienteRepo) Delete(id uint) error {
	return r.db.Delete(&model.Cliente{}, "id_cliente = ?", id).Error
}

// EnUso backs the delete guard: a cliente with ventas or pedidos cannot be
// removed.
func (r *clienteRepo) EnUso(id uint) (bool, error) {
	var n int64
	if err := r.db.Model(&model.Venta{}).Where("id_cliente = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := r.db.Model(&model.Pedido{}).Where("id_cliente = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
