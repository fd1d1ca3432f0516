package laboratorio

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(c *CostoLaboratorio) error {
	return r.DB.Create(c).Error
}

func (r *Repository) Listar(servicio string) ([]CostoLaboratorio, error) {
	var list []CostoLaboratorio
	q := r.DB
	if servicio != "" {
		q = q.Where("servicio = ?", servicio)
	}
	err := q.Order("servicio, insumo").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*CostoLaboratorio, error) {
	var c CostoLaboratorio
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Actualizar(c *CostoLaboratorio) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Eliminar(c *CostoLaboratorio) error {
	return r.DB.Delete(c).Error
}

// SumaPorServicio retorna el costo total de laboratorio por nombre de
// servicio. Servicios sin insumos registrados no aparecen en el mapa.
func (r *Repository) SumaPorServicio() (map[string]float64, error) {
	type fila struct {
		Servicio string
		Total    float64
	}
	var filas []fila
	err := r.DB.Model(&CostoLaboratorio{}).
		Select("servicio, COALESCE(SUM(valor), 0) AS total").
		Group("servicio").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]float64, len(filas))
	for _, f := range filas {
		m[f.Servicio] = f.Total
	}
	return m, nil
}
