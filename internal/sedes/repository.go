package sedes

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(s *Sede) error {
	return r.DB.Create(s).Error
}

func (r *Repository) Listar() ([]Sede, error) {
	var list []Sede
	err := r.DB.Order("nombre").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Sede, error) {
	var s Sede
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Actualizar(s *Sede) error {
	return r.DB.Save(s).Error
}

func (r *Repository) Eliminar(s *Sede) error {
	return r.DB.Delete(s).Error
}
