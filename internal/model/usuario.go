package model

import "golang.org/x/crypto/bcrypt"

// Usuario is an operator of the admin console. TokenVersion rotates on every
// login so only the most recent session stays valid.
type Usuario struct {
	ID           uint   `gorm:"primaryKey;column:id_usuario" json:"id_usuario"`
	Nombre       string `gorm:"column:nombre;not null" json:"nombre"`
	Email        string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password     string `gorm:"column:password;not null" json:"-"`
	IDRol        uint   `gorm:"column:id_rol" json:"id_rol"`
	Rol          *Rol   `gorm:"foreignKey:IDRol;references:ID" json:"rol,omitempty"`
	TokenVersion string `gorm:"column:token_version" json:"-"`
	BaseModel
}

func (Usuario) TableName() string { return "usuarios" }

// SetPassword hashes the plain password with bcrypt
func (u *Usuario) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a plain password against the stored hash
func (u *Usuario) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
