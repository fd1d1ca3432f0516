package auxiliares

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(a *Auxiliar) error {
	return r.DB.Create(a).Error
}

func (r *Repository) Listar(sedeID uint) ([]Auxiliar, error) {
	var list []Auxiliar
	q := r.DB
	if sedeID != 0 {
		q = q.Where("sede_id = ?", sedeID)
	}
	err := q.Order("nombre").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Auxiliar, error) {
	var a Auxiliar
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Actualizar(a *Auxiliar) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Eliminar(a *Auxiliar) error {
	return r.DB.Delete(a).Error
}
