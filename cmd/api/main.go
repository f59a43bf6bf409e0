package main

import (
	"os"
	"os/signal"
	"syscall"

	"delicrem-api/internal/handler"
	"delicrem-api/internal/middleware"
	"delicrem-api/internal/model"
	"delicrem-api/internal/repository"
	"delicrem-api/internal/service"
	"delicrem-api/internal/ws"
	"delicrem-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// 1. Logging + Env
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if os.Getenv("APP_ENV") == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env no encontrado, usando variables del sistema")
	}

	// 2. Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Proveedor{},
		&model.CategoriaInsumo{},
		&model.Insumo{},
		&model.Producto{},
		&model.FichaTecnica{},
		&model.DetalleFichaTecnica{},
		&model.Compra{},
		&model.DetalleCompra{},
		&model.Cliente{},
		&model.Pedido{},
		&model.DetallePedido{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.Permiso{},
		&model.Rol{},
		&model.Usuario{},
	)

	// 3. Seed permisos, rol administrador y usuario admin
	seedPermisosRolesYAdmin(db)

	// 4. WebSocket hub para movimientos de stock
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Wiring
	proveedorRepo := repository.NewProveedorRepo(db)
	categoriaRepo := repository.NewCategoriaInsumoRepo(db)
	insumoRepo := repository.NewInsumoRepo(db)
	productoRepo := repository.NewProductoRepo(db)
	fichaRepo := repository.NewFichaTecnicaRepo(db)
	compraRepo := repository.NewCompraRepo(db)
	clienteRepo := repository.NewClienteRepo(db)
	pedidoRepo := repository.NewPedidoRepo(db)
	ventaRepo := repository.NewVentaRepo(db)
	usuarioRepo := repository.NewUsuarioRepo(db)
	rolRepo := repository.NewRolRepo(db)
	permisoRepo := repository.NewPermisoRepo(db)

	proveedorService := service.NewProveedorService(proveedorRepo)
	insumoService := service.NewInsumoService(insumoRepo, categoriaRepo)
	productoService := service.NewProductoService(productoRepo, db, wsHub)
	fichaService := service.NewFichaTecnicaService(fichaRepo, productoRepo, insumoRepo)
	compraService := service.NewCompraService(compraRepo, db, wsHub)
	clienteService := service.NewClienteService(clienteRepo)
	pedidoService := service.NewPedidoService(pedidoRepo, clienteRepo, productoRepo)
	ventaService := service.NewVentaService(ventaRepo, db, wsHub)
	usuarioService := service.NewUsuarioService(usuarioRepo, rolRepo)
	rolService := service.NewRolService(rolRepo, permisoRepo)
	authService := service.NewAuthService(usuarioRepo)

	proveedorHandler := handler.NewProveedorHandler(proveedorService)
	insumoHandler := handler.NewInsumoHandler(insumoService)
	productoHandler := handler.NewProductoHandler(productoService)
	fichaHandler := handler.NewFichaTecnicaHandler(fichaService)
	compraHandler := handler.NewCompraHandler(compraService)
	clienteHandler := handler.NewClienteHandler(clienteService)
	pedidoHandler := handler.NewPedidoHandler(pedidoService)
	ventaHandler := handler.NewVentaHandler(ventaService)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	rolHandler := handler.NewRolHandler(rolService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Fiber
	app := fiber.New(fiber.Config{
		AppName: "Delicrem API v1.0",
	})
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api")

	// Public: login only
	api.Post("/usuarios/login", authHandler.Login)

	// Everything else requires a session; writes additionally require the
	// screen's permiso (reads stay session-only: screens cross-fetch catalogues)
	protected := api.Group("", middleware.RequireAuth(usuarioRepo))

	proveedores := protected.Group("/proveedores")
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/:id", proveedorHandler.Obtener)
	proveedores.Post("/", middleware.RequirePermiso(model.PermisoProveedores), proveedorHandler.Crear)
	proveedores.Put("/:id", middleware.RequirePermiso(model.PermisoProveedores), proveedorHandler.Actualizar)
	proveedores.Delete("/:id", middleware.RequirePermiso(model.PermisoProveedores), proveedorHandler.Eliminar)

	categorias := protected.Group("/categorias_insumo")
	categorias.Get("/", insumoHandler.ListarCategorias)
	categorias.Get("/:id", insumoHandler.ObtenerCategoria)
	categorias.Post("/", middleware.RequirePermiso(model.PermisoCategorias), insumoHandler.CrearCategoria)
	categorias.Put("/:id", middleware.RequirePermiso(model.PermisoCategorias), insumoHandler.ActualizarCategoria)
	categorias.Delete("/:id", middleware.RequirePermiso(model.PermisoCategorias), insumoHandler.EliminarCategoria)

	insumos := protected.Group("/insumos")
	insumos.Get("/", insumoHandler.Listar)
	insumos.Get("/:id", insumoHandler.Obtener)
	insumos.Post("/", middleware.RequirePermiso(model.PermisoInsumos), insumoHandler.Crear)
	insumos.Put("/:id", middleware.RequirePermiso(model.PermisoInsumos), insumoHandler.Actualizar)
	insumos.Delete("/:id", middleware.RequirePermiso(model.PermisoInsumos), insumoHandler.Eliminar)

	// The console historically used both spellings
	for _, prefix := range []string{"/fichas_tecnicas", "/fichastecnicas"} {
		fichas := protected.Group(prefix)
		fichas.Get("/", fichaHandler.Listar)
		fichas.Get("/:id", fichaHandler.Obtener)
		fichas.Post("/", middleware.RequirePermiso(model.PermisoFichas), fichaHandler.Crear)
		fichas.Put("/:id", middleware.RequirePermiso(model.PermisoFichas), fichaHandler.Actualizar)
		fichas.Delete("/:id", middleware.RequirePermiso(model.PermisoFichas), fichaHandler.Eliminar)
	}

	productos := protected.Group("/productos")
	productos.Get("/", productoHandler.Listar)
	productos.Post("/producir", middleware.RequirePermiso(model.PermisoProductos), productoHandler.Producir)
	productos.Get("/:id", productoHandler.Obtener)
	productos.Post("/", middleware.RequirePermiso(model.PermisoProductos), productoHandler.Crear)
	productos.Put("/:id", middleware.RequirePermiso(model.PermisoProductos), productoHandler.Actualizar)
	productos.Delete("/:id", middleware.RequirePermiso(model.PermisoProductos), productoHandler.Eliminar)

	compras := protected.Group("/compras")
	compras.Get("/", compraHandler.Listar)
	compras.Get("/:id", compraHandler.Obtener)
	compras.Post("/", middleware.RequirePermiso(model.PermisoCompras), compraHandler.Crear)
	compras.Delete("/:id", middleware.RequirePermiso(model.PermisoCompras), compraHandler.Eliminar)

	clientes := protected.Group("/clientes")
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/:id", clienteHandler.Obtener)
	clientes.Post("/", middleware.RequirePermiso(model.PermisoClientes), clienteHandler.Crear)
	clientes.Put("/:id", middleware.RequirePermiso(model.PermisoClientes), clienteHandler.Actualizar)
	clientes.Delete("/:id", middleware.RequirePermiso(model.PermisoClientes), clienteHandler.Eliminar)

	pedidos := protected.Group("/pedidos")
	pedidos.Get("/", pedidoHandler.Listar)
	pedidos.Get("/:id", pedidoHandler.Obtener)
	pedidos.Post("/", middleware.RequirePermiso(model.PermisoPedidos), pedidoHandler.Crear)
	pedidos.Put("/:id", middleware.RequirePermiso(model.PermisoPedidos), pedidoHandler.Actualizar)
	pedidos.Delete("/:id", middleware.RequirePermiso(model.PermisoPedidos), pedidoHandler.Eliminar)

	ventas := protected.Group("/ventas")
	ventas.Get("/", ventaHandler.Listar)
	ventas.Get("/:id", ventaHandler.Obtener)
	ventas.Post("/", middleware.RequirePermiso(model.PermisoVentas), ventaHandler.Crear)
	ventas.Put("/:id/estado", middleware.RequirePermiso(model.PermisoVentas), ventaHandler.ActualizarEstado)
	ventas.Delete("/:id", middleware.RequirePermiso(model.PermisoVentas), ventaHandler.Eliminar)

	usuarios := protected.Group("/usuarios")
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Get("/:id", usuarioHandler.Obtener)
	usuarios.Post("/registro", middleware.RequirePermiso(model.PermisoUsuarios), usuarioHandler.Registrar)
	usuarios.Put("/:id", middleware.RequirePermiso(model.PermisoUsuarios), usuarioHandler.Actualizar)
	usuarios.Delete("/:id", middleware.RequirePermiso(model.PermisoUsuarios), usuarioHandler.Eliminar)

	roles := protected.Group("/roles")
	roles.Get("/", rolHandler.Listar)
	roles.Get("/:id", rolHandler.Obtener)
	roles.Post("/", middleware.RequirePermiso(model.PermisoRoles), rolHandler.Crear)
	roles.Put("/:id", middleware.RequirePermiso(model.PermisoRoles), rolHandler.Actualizar)
	roles.Delete("/:id", middleware.RequirePermiso(model.PermisoRoles), rolHandler.Eliminar)

	protected.Get("/permisos", rolHandler.ListarPermisos)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic().Err(err).Msg("el servidor no pudo iniciar")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando el servidor...")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("apagado forzado")
	}
	log.Info().Msg("servidor detenido")
}

// seedPermisosRolesYAdmin creates the permiso catalogue, the administrador
// role and a first admin user when the database is empty
func seedPermisosRolesYAdmin(db *gorm.DB) {
	permisoRepo := repository.NewPermisoRepo(db)
	rolRepo := repository.NewRolRepo(db)
	usuarioRepo := repository.NewUsuarioRepo(db)

	if err := permisoRepo.SeedDefaults(); err != nil {
		log.Warn().Err(err).Msg("no se pudieron sembrar los permisos")
	}

	admin, err := rolRepo.FindByNombre(model.RolAdministrador)
	if err != nil {
		permisos, _ := permisoRepo.FindAll()
		admin = &model.Rol{Nombre: model.RolAdministrador}
		if err := rolRepo.Create(admin, permisos); err != nil {
			log.Warn().Err(err).Msg("no se pudo crear el rol administrador")
			return
		}
		log.Info().Msg("rol administrador creado con todos los permisos")
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@delicrem.com"
	}
	if _, err := usuarioRepo.FindByEmail(email); err != nil {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		usuario := &model.Usuario{
			Nombre: "Administrador",
			Email:  email,
			IDRol:  admin.ID,
		}
		if err := usuario.SetPassword(password); err != nil {
			log.Warn().Err(err).Msg("no se pudo generar el hash del admin")
			return
		}
		if err := usuarioRepo.Create(usuario); err != nil {
			log.Warn().Err(err).Msg("no se pudo crear el usuario admin")
			return
		}
		log.Info().Str("email", email).Msg("usuario admin creado")
	}
}
