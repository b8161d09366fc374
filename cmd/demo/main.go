// Recorrido de consola por el flujo completo del marketplace: creación de
// residentes, categorías y unidad, publicación de producto y servicio,
// consultas, búsqueda, carrito y formalización de la compra.
package main

import (
	"fmt"
	"os"

	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/application/service"
	"github.com/vecindario/mercado-api/internal/infrastructure/memory"
	"github.com/vecindario/mercado-api/internal/infrastructure/notify"
	"github.com/vecindario/mercado-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.New(logger.Config{Env: "development", Level: "info"})

	usuarioRepo := memory.NewUsuarioRepository()
	categoriaRepo := memory.NewCategoriaRepository()
	unidadRepo := memory.NewUnidadResidencialRepository()
	productoRepo := memory.NewProductoRepository()
	servicioRepo := memory.NewServicioRepository()
	consultaRepo := memory.NewConsultaRepository()

	notifier := notify.NewConsoleNotifier(log)

	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	unidadSvc := service.NewUnidadResidencialService(unidadRepo)
	publicacionSvc := service.NewPublicacionService(productoRepo, usuarioRepo, categoriaRepo, notifier, 0, log)
	servicioSvc := service.NewServicioService(servicioRepo, usuarioRepo, categoriaRepo, notifier, log)
	consultaSvc := service.NewConsultaService(consultaRepo, usuarioRepo, productoRepo, servicioRepo)

	// Residentes y categorías
	maria, err := usuarioSvc.CrearUsuario(dto.CrearUsuarioCommand{
		ID: "user-001", Nombre: "María García", Email: "Maria@Email.com",
		Apartamento: "0101", Telefono: "300 111 2233",
	})
	if err != nil {
		return err
	}
	carlos, err := usuarioSvc.CrearUsuario(dto.CrearUsuarioCommand{
		ID: "user-002", Nombre: "Carlos Ruiz", Email: "carlos@email.com",
		Apartamento: "0302", Telefono: "3004445566",
	})
	if err != nil {
		return err
	}
	fmt.Println("[OK] Usuarios creados:", maria, "|", carlos)

	if _, err := categoriaSvc.CrearCategoria(dto.CrearCategoriaCommand{
		ID: "cat-001", Nombre: "Hogar", Descripcion: "Artículos para el hogar",
	}); err != nil {
		return err
	}
	if _, err := categoriaSvc.CrearCategoria(dto.CrearCategoriaCommand{
		ID: "cat-002", Nombre: "Servicios del Hogar", Descripcion: "Servicios de mantenimiento y reparación",
	}); err != nil {
		return err
	}

	unidad, err := unidadSvc.CrearUnidad(dto.CrearUnidadResidencialCommand{
		ID: "unidad-001", Nombre: "Torres del Parque", Direccion: "Calle 26 #5-43, Bogotá",
	})
	if err != nil {
		return err
	}
	unidad.RegistrarResidente(maria)
	unidad.RegistrarResidente(carlos)
	fmt.Println("[OK] Unidad creada:", unidad)

	// Publicaciones
	producto, err := publicacionSvc.PublicarProducto(dto.PublicarProductoCommand{
		VendedorID:     "user-001",
		VendedorStatus: "APPROVED",
		Nombre:         "Silla de oficina",
		Descripcion:    "Silla cómoda para escritorio, en buen estado, poco uso.",
		PrecioCOP:      120_000,
		CategoriaID:    "cat-001",
		Imagenes:       []string{"https://img.fake/silla1.jpg", "https://img.fake/silla2.jpg"},
	})
	if err != nil {
		return err
	}
	fmt.Printf("[OK] Producto publicado: %s - $%s\n", producto.Nombre, producto.Precio.StringFixed(0))

	servicio, err := servicioSvc.PublicarServicio(dto.PublicarServicioCommand{
		ProveedorID:     "user-001",
		ProveedorStatus: "APPROVED",
		Nombre:          "Reparación de electrodomésticos",
		Descripcion:     "Servicio profesional de reparación de neveras, lavadoras y estufas",
		PrecioCOP:       80_000,
		CategoriaID:     "cat-002",
	})
	if err != nil {
		return err
	}
	fmt.Printf("[OK] Servicio publicado: %s - $%s\n", servicio.Nombre, servicio.Precio.StringFixed(0))

	// Consultas
	consultaProd, err := consultaSvc.RegistrarConsulta(dto.RegistrarConsultaCommand{
		CompradorID: "user-002", ItemID: producto.ID, ItemType: "producto",
		Mensaje: "¿Todavía está disponible la silla?",
	})
	if err != nil {
		return err
	}
	fmt.Println("[OK] Consulta registrada para Producto:", consultaProd.Item.ListingNombre())

	consultaServ, err := consultaSvc.RegistrarConsulta(dto.RegistrarConsultaCommand{
		CompradorID: "user-002", ItemID: servicio.ID, ItemType: "servicio",
		Mensaje: "¿Repara lavadoras LG?",
	})
	if err != nil {
		return err
	}
	fmt.Println("[OK] Consulta registrada para Servicio:", consultaServ.Item.ListingNombre())

	recibidas, err := consultaSvc.ListarConsultasVendedor("user-001")
	if err != nil {
		return err
	}
	fmt.Printf("[OK] Consultas recibidas por %s: %d\n", maria.Nombre, len(recibidas))

	// Agregado: búsqueda, carrito y checkout
	mercado := service.NewMercadoService(unidad, "Mercado Torres del Parque")
	mp := mercado.Marketplace()
	mp.PublicarProducto(producto)
	mp.PublicarServicio(servicio)

	encontrados := mercado.BuscarProductos(nil, "silla")
	fmt.Printf("[OK] Búsqueda 'silla': %d resultado(s)\n", len(encontrados))

	mercado.AgregarAlCarrito(carlos, producto, 1)
	mercado.AgregarAlCarrito(carlos, servicio, 1)
	fmt.Println("[OK]", mercado.VerCarrito(carlos))

	transaccion, err := mercado.Checkout(carlos)
	if err != nil {
		return err
	}
	if err := transaccion.Confirmar(); err != nil {
		return err
	}
	if err := transaccion.MarcarEntregada(); err != nil {
		return err
	}
	fmt.Println("[OK]", transaccion)

	fmt.Println("\nResumen:")
	fmt.Printf("  - Stock restante de '%s': %d\n", producto.Nombre, producto.Stock)
	fmt.Printf("  - Transacciones registradas: %d\n", len(mp.Transacciones))
	fmt.Printf("  - Total de la compra: $%s\n", transaccion.Total().StringFixed(0))
	return nil
}
