package main

import (
	"net/http"
	"os"

	"github.com/clinicasmiley/api-admin/internal/auth"
	"github.com/clinicasmiley/api-admin/internal/auxiliares"
	"github.com/clinicasmiley/api-admin/internal/caja"
	"github.com/clinicasmiley/api-admin/internal/config"
	"github.com/clinicasmiley/api-admin/internal/cuentas"
	"github.com/clinicasmiley/api-admin/internal/doctoras"
	"github.com/clinicasmiley/api-admin/internal/export"
	"github.com/clinicasmiley/api-admin/internal/gastos"
	"github.com/clinicasmiley/api-admin/internal/laboratorio"
	"github.com/clinicasmiley/api-admin/internal/liquidacion"
	"github.com/clinicasmiley/api-admin/internal/metodospago"
	"github.com/clinicasmiley/api-admin/internal/middleware"
	"github.com/clinicasmiley/api-admin/internal/pacientes"
	"github.com/clinicasmiley/api-admin/internal/porcentajes"
	"github.com/clinicasmiley/api-admin/internal/registros"
	"github.com/clinicasmiley/api-admin/internal/sedes"
	"github.com/clinicasmiley/api-admin/internal/servicios"
	"github.com/clinicasmiley/api-admin/internal/usuarios"
	"github.com/clinicasmiley/api-admin/internal/utils"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()
	if err := auth.Configurar(cfg.JWTSecret); err != nil {
		logger.Fatal().Err(err).Msg("configuración de autenticación inválida")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("error al conectar al banco de datos")
	}

	for _, migrate := range []func(*gorm.DB) error{
		usuarios.Migrate,
		doctoras.Migrate,
		auxiliares.Migrate,
		servicios.Migrate,
		laboratorio.Migrate,
		registros.Migrate,
		liquidacion.Migrate,
		porcentajes.Migrate,
		pacientes.Migrate,
		caja.Migrate,
		gastos.Migrate,
		sedes.Migrate,
		cuentas.Migrate,
		metodospago.Migrate,
	} {
		if err := migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("error en AutoMigrate")
		}
	}

	seedAdmin(db, cfg, logger)

	// Handlers
	usuariosHandler := usuarios.NewHandler(db)
	doctorasHandler := doctoras.NewHandler(db)
	auxiliaresHandler := auxiliares.NewHandler(db)
	serviciosHandler := servicios.NewHandler(db)
	laboratorioHandler := laboratorio.NewHandler(db)
	registrosHandler := registros.NewHandler(db)
	liquidacionHandler := liquidacion.NewHandler(db)
	porcentajesHandler := porcentajes.NewHandler(db)
	pacientesHandler := pacientes.NewHandler(db)
	cajaHandler := caja.NewHandler(db)
	gastosHandler := gastos.NewHandler(db)
	sedesHandler := sedes.NewHandler(db)
	cuentasHandler := cuentas.NewHandler(db)
	metodosHandler := metodospago.NewHandler(db)
	exportHandler := export.NewHandler(db, logger)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logger(logger))

	// Rutas públicas
	r.HandleFunc("/login", usuariosHandler.Login).Methods("POST")
	r.HandleFunc("/refresh-token", usuariosHandler.Refresh).Methods("POST")

	// Rutas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.Middleware)

	// Usuarios (solo administradores)
	api.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(usuariosHandler.Crear))).Methods("POST")

	// Doctoras
	api.HandleFunc("/doctoras", doctorasHandler.Crear).Methods("POST")
	api.HandleFunc("/doctoras", doctorasHandler.Listar).Methods("GET")
	api.HandleFunc("/doctoras/{id}", doctorasHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/doctoras/{id}", doctorasHandler.Eliminar).Methods("DELETE")

	// Auxiliares
	api.HandleFunc("/auxiliares", auxiliaresHandler.Crear).Methods("POST")
	api.HandleFunc("/auxiliares", auxiliaresHandler.Listar).Methods("GET")
	api.HandleFunc("/auxiliares/{id}", auxiliaresHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/auxiliares/{id}", auxiliaresHandler.Eliminar).Methods("DELETE")

	// Servicios (catálogo general y catálogo Estadio)
	api.HandleFunc("/servicios", serviciosHandler.Crear).Methods("POST")
	api.HandleFunc("/servicios", serviciosHandler.Listar).Methods("GET")
	api.HandleFunc("/servicios/{id}", serviciosHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/servicios/{id}", serviciosHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/servicios-estadio", serviciosHandler.CrearEstadio).Methods("POST")
	api.HandleFunc("/servicios-estadio", serviciosHandler.ListarEstadio).Methods("GET")
	api.HandleFunc("/servicios-estadio/{id}", serviciosHandler.ActualizarEstadio).Methods("PUT")
	api.HandleFunc("/servicios-estadio/{id}", serviciosHandler.EliminarEstadio).Methods("DELETE")

	// Costos de laboratorio
	api.HandleFunc("/costos-laboratorio", laboratorioHandler.Crear).Methods("POST")
	api.HandleFunc("/costos-laboratorio", laboratorioHandler.Listar).Methods("GET")
	api.HandleFunc("/costos-laboratorio/{id}", laboratorioHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/costos-laboratorio/{id}", laboratorioHandler.Eliminar).Methods("DELETE")

	// Registros de tratamiento
	api.HandleFunc("/registros", registrosHandler.Crear).Methods("POST")
	api.HandleFunc("/registros", registrosHandler.Listar).Methods("GET")
	api.HandleFunc("/registros/eliminar", registrosHandler.EliminarLote).Methods("POST")
	api.HandleFunc("/registros/terminar", registrosHandler.Terminar).Methods("POST")
	api.HandleFunc("/registros/{id}", registrosHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/registros/{id}", registrosHandler.Eliminar).Methods("DELETE")

	// Liquidaciones
	api.HandleFunc("/liquidaciones/previa", liquidacionHandler.Previa).Methods("POST")
	api.HandleFunc("/liquidaciones", liquidacionHandler.Crear).Methods("POST")
	api.HandleFunc("/liquidaciones", liquidacionHandler.Listar).Methods("GET")
	api.HandleFunc("/liquidaciones/{id}", liquidacionHandler.Obtener).Methods("GET")

	// Porcentajes
	api.HandleFunc("/porcentajes", porcentajesHandler.Crear).Methods("POST")
	api.HandleFunc("/porcentajes", porcentajesHandler.Listar).Methods("GET")
	api.HandleFunc("/porcentajes/{id}", porcentajesHandler.Obtener).Methods("GET")
	api.HandleFunc("/porcentajes/{id}", porcentajesHandler.Actualizar).Methods("PUT")

	// Pacientes
	api.HandleFunc("/pacientes", pacientesHandler.Crear).Methods("POST")
	api.HandleFunc("/pacientes", pacientesHandler.Buscar).Methods("GET")
	api.HandleFunc("/pacientes/{id}/abono", pacientesHandler.Abonar).Methods("POST")

	// Cuadre de caja por sede
	api.HandleFunc("/sedes/{id}/cuadre", cajaHandler.Obtener).Methods("GET")
	api.HandleFunc("/sedes/{id}/cuadre", cajaHandler.Fijar).Methods("PUT")
	api.HandleFunc("/sedes/{id}/cuadre/movimiento", cajaHandler.Movimiento).Methods("POST")

	// Gastos
	api.HandleFunc("/gastos", gastosHandler.Crear).Methods("POST")
	api.HandleFunc("/gastos", gastosHandler.Listar).Methods("GET")

	// Sedes
	api.HandleFunc("/sedes", sedesHandler.Crear).Methods("POST")
	api.HandleFunc("/sedes", sedesHandler.Listar).Methods("GET")
	api.HandleFunc("/sedes/{id}", sedesHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/sedes/{id}", sedesHandler.Eliminar).Methods("DELETE")

	// Cuentas
	api.HandleFunc("/cuentas", cuentasHandler.Crear).Methods("POST")
	api.HandleFunc("/cuentas", cuentasHandler.Listar).Methods("GET")
	api.HandleFunc("/cuentas/{id}", cuentasHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/cuentas/{id}", cuentasHandler.Eliminar).Methods("DELETE")

	// Métodos de pago
	api.HandleFunc("/metodos-pago", metodosHandler.Crear).Methods("POST")
	api.HandleFunc("/metodos-pago", metodosHandler.Listar).Methods("GET")
	api.HandleFunc("/metodos-pago/{id}", metodosHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/metodos-pago/{id}", metodosHandler.Eliminar).Methods("DELETE")

	// Exportes en planilla
	api.HandleFunc("/exportar/liquidaciones", exportHandler.ExportarLiquidaciones).Methods("POST")
	api.HandleFunc("/exportar/gastos", exportHandler.ExportarGastos).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	logger.Info().Str("puerto", cfg.HTTPPort).Msg("servidor iniciado")
	if err := http.ListenAndServe(":"+cfg.HTTPPort, c.Handler(r)); err != nil {
		logger.Fatal().Err(err).Msg("servidor detenido")
	}
}

// seedAdmin crea la cuenta administradora inicial si el banco está vacío
// y hay credenciales en el ambiente.
func seedAdmin(db *gorm.DB, cfg config.Config, logger zerolog.Logger) {
	if cfg.AdminUser == "" || cfg.AdminPass == "" {
		return
	}
	repo := usuarios.NewRepository(db)
	n, err := repo.Contar()
	if err != nil || n > 0 {
		return
	}
	hash, err := utils.HashContrasena(cfg.AdminPass)
	if err != nil {
		logger.Error().Err(err).Msg("no fue posible crear el usuario administrador")
		return
	}
	u := usuarios.Usuario{
		Usuario:    cfg.AdminUser,
		Nombre:     "Administrador",
		Contrasena: hash,
		EsAdmin:    true,
	}
	if err := repo.Crear(&u); err != nil {
		logger.Error().Err(err).Msg("no fue posible crear el usuario administrador")
		return
	}
	logger.Info().Str("usuario", u.Usuario).Msg("usuario administrador inicial creado")
}
