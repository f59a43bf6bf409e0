package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(p *model.Pedido) error
	FindAll() ([]model.Pedido, error)
	FindByID(id uint) (*model.Pedido, error)
	FindByEntrega(dia string, pagado bool) ([]model.Pedido, error)
	Update(p *model.Pedido) error
	ReemplazarDetalles(p *model.Pedido, detalles []model.DetallePedido) error
	Delete(id uint) error
}

type pedidoRepo struct {
	db *gorm.DB
}

func NewPedidoRepo(db *gorm.DB) PedidoRepository {
	return &pedidoRepo{db}
}

func (r *pedidoRepo) Create(p *model.Pedido) error {
	return r.db.Create(p).Error
}

func (r *pedidoRepo) FindAll() ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.Preload("Cliente").Preload("Detalles.Producto").Order("id_pedido").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) FindByID(id uint) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.Preload("Cliente").Preload("Detalles.Producto").First(&p, "id_pedido = ?", id).Error
	return &p, err
}

// FindByEntrega serves the delivery-date probe: pedidos whose fecha_entrega
// falls on the given calendar day ("2006-01-02"), filtered by pagado.
func (r *pedidoRepo) FindByEntrega(dia string, pagado bool) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.Preload("Cliente").Preload("Detalles.Producto").
		Where("date(fecha_entrega) = ? AND pagado = ?", dia, pagado).
		Order("id_pedido").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(p *model.Pedido) error {
	return r.db.Omit("Detalles", "Cliente").Save(p).Error
}

func (r *pedidoRepo) ReemplazarDetalles(p *model.Pedido, detalles []model.DetallePedido) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_pedido = ?", p.ID).Delete(&model.DetallePedido{}).Error; err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].ID = 0
			detalles[i].IDPedido = p.ID
		}
		if len(detalles) == 0 {
			return nil
		}
		return tx.Create(&detalles).Error
	})
}

func (r *pedidoRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_pedido = ?", id).Delete(&model.DetallePedido{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pedido{}, "id_pedido = ?", id).Error
	})
}
