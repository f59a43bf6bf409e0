package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type CategoriaInsumoRepository interface {
	Create(c *model.CategoriaInsumo) error
	FindAll() ([]model.CategoriaInsumo, error)
	FindByID(id uint) (*model.CategoriaInsumo, error)
	Update(c *model.CategoriaInsumo) error
	Delete(id uint) error
	TieneInsumos(id uint) (bool, error)
}

type categoriaRepo struct {
	db *gorm.DB
}

func NewCategoriaInsumoRepo(db *gorm.DB) CategoriaInsumoRepository {
	return &categoriaRepo{db}
}

func (r *categoriaRepo) Create(c *model.CategoriaInsumo) error {
	return r.db.Create(c).Error
}

func (r *categoriaRepo) FindAll() ([]model.CategoriaInsumo, error) {
	var categorias []model.CategoriaInsumo
	err := r.db.Order("id_categoria").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) FindByID(id uint) (*model.CategoriaInsumo, error) {
	var c model.CategoriaInsumo
	err := r.db.First(&c, "id_categoria = ?", id).Error
	return &c, err
}

func (r *categoriaRepo) Update(c *model.CategoriaInsumo) error {
	return r.db.Save(c).Error
}

func (r *categoriaRepo) Delete(id uint) error {
	return r.db.Delete(&model.CategoriaInsumo{}, "id_categoria = ?", id).Error
}

func (r *categoriaRepo) TieneInsumos(id uint) (bool, error) {
	var n int64
	err := r.db.Model(&model.Insumo{}).Where("id_categoria = ?", id).Count(&n).Error
	return n > 0, err
}
