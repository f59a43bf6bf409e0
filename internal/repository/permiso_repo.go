package repository

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

type PermisoRepository interface {
	FindAll() ([]model.Permiso, error)
	FindByIDs(ids []uint) ([]model.Permiso, error)
	FindByNombre(nombre string) (*model.Permiso, error)
	SeedDefaults() error
}

type permisoRepo struct {
	db *gorm.DB
}

func NewPermisoRepo(db *gorm.DB) PermisoRepository {
	return &permisoRepo{db}
}

func (r *permisoRepo) FindAll() ([]model.Permiso, error) {
	var permisos []model.Permiso
	err := r.db.Order("id_permiso").Find(&permisos).Error
	return permisos, err
}

func (r *permisoRepo) FindByIDs(ids []uint) ([]model.Permiso, error) {
	var permisos []model.Permiso
	if len(ids) == 0 {
		return permisos, nil
	}
	err := r.db.Where("id_permiso IN ?", ids).Find(&permisos).Error
	return permisos, err
}

func (r *permisoRepo) FindByNombre(nombre string) (*model.Permiso, error) {
	var p model.Permiso
	err := r.db.First(&p, "lower(nombre_permiso) = lower(?)", nombre).Error
	return &p, err
}

// SeedDefaults inserts the permission catalogue if missing
func (r *permisoRepo) SeedDefaults() error {
	for _, nombre := range model.PermisosPorDefecto {
		var existente model.Permiso
		err := r.db.First(&existente, "nombre_permiso = ?", nombre).Error
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&model.Permiso{Nombre: nombre}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
