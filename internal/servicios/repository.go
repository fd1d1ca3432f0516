package servicios

import "gorm.io/gorm"

// Repository encapsula las operaciones de banco para los dos catálogos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// --- Catálogo general ---

func (r *Repository) Crear(s *Servicio) error {
	return r.DB.Create(s).Error
}

func (r *Repository) Listar() ([]Servicio, error) {
	var list []Servicio
	err := r.DB.Order("nombre").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Servicio, error) {
	var s Servicio
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ExistePorNombre(nombre string) bool {
	var n int64
	r.DB.Model(&Servicio{}).Where("nombre = ?", nombre).Count(&n)
	return n > 0
}

func (r *Repository) Actualizar(s *Servicio) error {
	return r.DB.Save(s).Error
}

func (r *Repository) Eliminar(s *Servicio) error {
	return r.DB.Delete(s).Error
}

// MapaPrecios retorna el catálogo general indexado por nombre de servicio.
func (r *Repository) MapaPrecios() (map[string]Servicio, error) {
	list, err := r.Listar()
	if err != nil {
		return nil, err
	}
	m := make(map[string]Servicio, len(list))
	for _, s := range list {
		m[s.Nombre] = s
	}
	return m, nil
}

// --- Catálogo Estadio ---

func (r *Repository) CrearEstadio(s *ServicioEstadio) error {
	return r.DB.Create(s).Error
}

func (r *Repository) ListarEstadio() ([]ServicioEstadio, error) {
	var list []ServicioEstadio
	err := r.DB.Order("nombre").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarEstadioPorID(id uint) (*ServicioEstadio, error) {
	var s ServicioEstadio
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ExisteEstadioPorNombre(nombre string) bool {
	var n int64
	r.DB.Model(&ServicioEstadio{}).Where("nombre = ?", nombre).Count(&n)
	return n > 0
}

func (r *Repository) ActualizarEstadio(s *ServicioEstadio) error {
	return r.DB.Save(s).Error
}

func (r *Repository) EliminarEstadio(s *ServicioEstadio) error {
	return r.DB.Delete(s).Error
}

// MapaPreciosEstadio retorna el catálogo Estadio con la misma forma del
// general, para que la liquidación trabaje sobre cualquiera de los dos.
func (r *Repository) MapaPreciosEstadio() (map[string]Servicio, error) {
	list, err := r.ListarEstadio()
	if err != nil {
		return nil, err
	}
	m := make(map[string]Servicio, len(list))
	for _, s := range list {
		m[s.Nombre] = Servicio{
			ID:          s.ID,
			Nombre:      s.Nombre,
			Valor:       s.Valor,
			Sesiones:    s.Sesiones,
			Descripcion: s.Descripcion,
		}
	}
	return m, nil
}
