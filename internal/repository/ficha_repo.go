package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type FichaTecnicaRepository interface {
	Create(f *model.FichaTecnica) error
	FindAll() ([]model.FichaTecnica, error)
	FindByID(id uint) (*model.FichaTecnica, error)
	FindByProducto(idProducto uint) (*model.FichaTecnica, error)
	Update(f *model.FichaTecnica) error
	ReemplazarDetalles(f *model.FichaTecnica, detalles []model.DetalleFichaTecnica) error
	Delete(id uint) error
}

type fichaRepo struct {
	db *gorm.DB
}

func NewFichaTecnicaRepo(db *gorm.DB) FichaTecnicaRepository {
	return &fichaRepo{db}
}

func (r *fichaRepo) Create(f *model.FichaTecnica) error {
	return r.db.Create(f).Error
}

func (r *fichaRepo) FindAll() ([]model.FichaTecnica, error) {
	var fichas []model.FichaTecnica
	err := r.db.Preload("Producto").Preload("Detalles.Insumo").Order("id_ficha").Find(&fichas).Error
	return fichas, err
}

func (r *fichaRepo) FindByID(id uint) (*model.FichaTecnica, error) {
	var f model.FichaTecnica
	err := r.db.Preload("Producto").Preload("Detalles.Insumo").First(&f, "id_ficha = ?", id).Error
	return &f, err
}

// FindByProducto resolves the recipe producción consumes insumos with.
func (r *fichaRepo) FindByProducto(idProducto uint) (*model.FichaTecnica, error) {
	var f model.FichaTecnica
	err := r.db.Preload("Detalles.Insumo").First(&f, "id_producto = ?", idProducto).Error
	return &f, err
}

func (r *fichaRepo) Update(f *model.FichaTecnica) error {
	return r.db.Omit("Detalles", "Producto").Save(f).Error
}

// ReemplazarDetalles swaps the full line-item set atomically.
func (r *fichaRepo) ReemplazarDetalles(f *model.FichaTecnica, detalles []model.DetalleFichaTecnica) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_ficha = ?", f.ID).Delete(&model.DetalleFichaTecnica{}).Error; err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].ID = 0
			detalles[i].IDFicha = f.ID
		}
		if len(detalles) == 0 {
			return nil
		}
		return tx.Create(&detalles).Error
	})
}

func (r *fichaRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_ficha = ?", id).Delete(&model.DetalleFichaTecnica{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FichaTecnica{}, "id_ficha = ?", id).Error
	})
}
