package cuentas

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(c *Cuenta) error {
	return r.DB.Create(c).Error
}

func (r *Repository) Listar() ([]Cuenta, error) {
	var list []Cuenta
	err := r.DB.Order("nombre").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Cuenta, error) {
	var c Cuenta
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Actualizar(c *Cuenta) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Eliminar(c *Cuenta) error {
	return r.DB.Delete(c).Error
}
