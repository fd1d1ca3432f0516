package metodospago

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(m *MetodoPago) error {
	return r.DB.Create(m).Error
}

func (r *Repository) Listar() ([]MetodoPago, error) {
	var list []MetodoPago
	err := r.DB.Order("nombre").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*MetodoPago, error) {
	var m MetodoPago
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Actualizar(m *MetodoPago) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Eliminar(m *MetodoPago) error {
	return r.DB.Delete(m).Error
}
