package router

import (
	"time"

	"github.com/sistemsnova/bruzzonercm-sub001/internal/config"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/handler"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/infra"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/middleware"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/repository"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/service"
	"github.com/sistemsnova/bruzzonercm-sub001/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, padronCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	padronClient := infra.NewPadronClient(cfg.PadronURL)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	listaRepo := repository.NewListaPrecioRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo, listaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	listaSvc := service.NewListaPrecioService(listaRepo)
	authSvc := service.NewAuthService(usuarioRepo, clienteSvc, cfg)
	padronSvc := service.NewPadronService(padronClient, padronCB)
	resumenSvc := service.NewResumenService(clienteRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc, resumenSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	listasH := handler.NewListasPreciosHandler(listaSvc)
	padronH := handler.NewPadronHandler(padronSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, padronCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/portal", middleware.LoginRateLimiter(), authH.LoginPortal)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Padrón lookup — staff only, used to pre-fill forms before saving
		v1.GET("/padron/:cuit", middleware.RequireRole("operador", "administrador"), padronH.Consultar)

		// Clientes — operador can read, administrador can write
		v1.GET("/clientes", middleware.RequireRole("operador", "administrador"), clientesH.Listar)
		v1.GET("/clientes/:id", middleware.RequireRole("operador", "administrador"), clientesH.ObtenerPorID)
		clientes := v1.Group("/clientes", middleware.RequireRole("administrador"))
		{
			clientes.POST("", clientesH.Crear)
			clientes.PATCH("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
			clientes.POST("/:id/saldo", clientesH.AjustarSaldo)
			clientes.PUT("/:id/puntos", clientesH.AjustarPuntos)
			clientes.PUT("/:id/puntos/habilitar", clientesH.HabilitarPuntos)
			clientes.POST("/:id/personas", clientesH.AgregarPersona)
			clientes.DELETE("/:id/personas", clientesH.QuitarPersona)
			clientes.POST("/:id/resumen", clientesH.EnviarResumen)
		}

		// Proveedores
		v1.GET("/proveedores", middleware.RequireRole("operador", "administrador"), proveedoresH.Listar)
		v1.GET("/proveedores/:id", middleware.RequireRole("operador", "administrador"), proveedoresH.ObtenerPorID)
		v1.GET("/proveedores/:id/costo", middleware.RequireRole("operador", "administrador"), proveedoresH.CalcularCosto)
		prov := v1.Group("/proveedores", middleware.RequireRole("administrador"))
		{
			prov.POST("", proveedoresH.Crear)
			prov.PATCH("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Eliminar)
			prov.POST("/:id/saldo", proveedoresH.AjustarSaldo)
			prov.POST("/:id/descuentos", proveedoresH.AgregarDescuento)
			prov.DELETE("/:id/descuentos/:pos", proveedoresH.QuitarDescuento)
		}

		// Listas de precios
		v1.GET("/listas-precios", middleware.RequireRole("operador", "administrador"), listasH.Listar)
		listas := v1.Group("/listas-precios", middleware.RequireRole("administrador"))
		{
			listas.POST("", listasH.Crear)
			listas.PATCH("/:id", listasH.Actualizar)
			listas.PATCH("/:id/base", listasH.MarcarBase)
			listas.DELETE("/:id", listasH.Eliminar)
		}

		// Usuarios — administrador only
		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
		}

		// Portal — a customer token only reaches its own account
		v1.GET("/portal/mi-cuenta", middleware.RequireRole(middleware.RolCliente), clientesH.MiCuenta)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
