package http

import (
	"github.com/vecindario/mercado-api/internal/application/dto"
	"github.com/vecindario/mercado-api/internal/domain/entity"
)

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:          u.ID,
		Nombre:      u.Nombre,
		Email:       u.Email,
		Apartamento: u.Apartamento,
		Telefono:    u.Telefono,
	}
}

func toCategoriaResponse(c *entity.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
}

func toUnidadResponse(u *entity.UnidadResidencial) dto.UnidadResidencialResponse {
	return dto.UnidadResidencialResponse{
		ID:         u.ID,
		Nombre:     u.Nombre,
		Direccion:  u.Direccion,
		Residentes: len(u.Residentes),
	}
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	out := dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio.String(),
		Stock:       p.Stock,
		VendedorID:  p.Vendedor.ID,
		Imagenes:    p.Imagenes,
	}
	if p.Categoria != nil {
		out.CategoriaID = p.Categoria.ID
	}
	return out
}

func toServicioResponse(s *entity.Servicio) dto.ServicioResponse {
	out := dto.ServicioResponse{
		ID:          s.ID,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		Precio:      s.Precio.String(),
		Disponible:  s.Disponible,
		ProveedorID: s.Proveedor.ID,
	}
	if s.Categoria != nil {
		out.CategoriaID = s.Categoria.ID
	}
	return out
}

func toConsultaResponse(c *entity.Consulta) dto.ConsultaResponse {
	return dto.ConsultaResponse{
		ID:          c.ID,
		CompradorID: c.Comprador.ID,
		ItemID:      c.Item.ListingID(),
		ItemType:    string(c.Item.Tipo()),
		ItemNombre:  c.Item.ListingNombre(),
		Mensaje:     c.Mensaje,
		Estado:      c.Estado,
		Fecha:       c.Fecha,
	}
}
