package model

import (
	"time"
)

// BaseModel carries the timestamps every Delicrem table exposes. IDs are
// per-entity auto-increment columns (the API contract names them id_proveedor,
// id_insumo, ...), so they live on each model instead of here.
type BaseModel struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
