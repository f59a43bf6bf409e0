package service_test

import (
	"delicrem-api/internal/model"

	"gorm.io/gorm"
)

// In-memory repository stubs. Each test seeds the maps it needs; anything the
// scenario does not exercise just behaves like an empty table.

type stubProveedorRepo struct {
	proveedores map[uint]*model.Proveedor
	conCompras  map[uint]bool
	siguiente   uint
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{
		proveedores: map[uint]*model.Proveedor{},
		conCompras:  map[uint]bool{},
	}
}

func (r *stubProveedorRepo) Create(p *model.Proveedor) error {
	r.siguiente++
	p.ID = r.siguiente
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindAll() ([]model.Proveedor, error) {
	var todos []model.Proveedor
	for i := uint(1); i <= r.siguiente; i++ {
		if p, ok := r.proveedores[i]; ok {
			todos = append(todos, *p)
		}
	}
	return todos, nil
}

func (r *stubProveedorRepo) FindByID(id uint) (*model.Proveedor, error) {
	if p, ok := r.proveedores[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProveedorRepo) Update(p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Delete(id uint) error {
	delete(r.proveedores, id)
	return nil
}

func (r *stubProveedorRepo) TieneCompras(id uint) (bool, error) {
	return r.conCompras[id], nil
}

type stubClienteRepo struct {
	clientes  map[uint]*model.Cliente
	enUso     map[uint]bool
	siguiente uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: map[uint]*model.Cliente{}, enUso: map[uint]bool{}}
}

func (r *stubClienteRepo) Create(c *model.Cliente) error {
	r.siguiente++
	c.ID = r.siguiente
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindAll() ([]model.Cliente, error) { return nil, nil }

func (r *stubClienteRepo) FindByID(id uint) (*model.Cliente, error) {
	if c, ok := r.clientes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) Update(c *model.Cliente) error { return nil }
func (r *stubClienteRepo) Delete(id uint) error          { delete(r.clientes, id); return nil }
func (r *stubClienteRepo) EnUso(id uint) (bool, error)   { return r.enUso[id], nil }

type stubProductoRepo struct {
	productos map[uint]*model.Producto
	enUso     map[uint]bool
	siguiente uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: map[uint]*model.Producto{}, enUso: map[uint]bool{}}
}

func (r *stubProductoRepo) Create(p *model.Producto) error {
	r.siguiente++
	p.ID = r.siguiente
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindAll() ([]model.Producto, error) { return nil, nil }

func (r *stubProductoRepo) FindByID(id uint) (*model.Producto, error) {
	if p, ok := r.productos[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) Update(p *model.Producto) error { return nil }
func (r *stubProductoRepo) Delete(id uint) error           { delete(r.productos, id); return nil }

func (r *stubProductoRepo) UpdateStock(tx *gorm.DB, id uint, nuevoStock int) error {
	if p, ok := r.productos[id]; ok {
		p.Stock = nuevoStock
	}
	return nil
}

func (r *stubProductoRepo) EnUso(id uint) (bool, error) { return r.enUso[id], nil }

type stubCategoriaRepo struct {
	categorias map[uint]*model.CategoriaInsumo
	conInsumos map[uint]bool
	siguiente  uint
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: map[uint]*model.CategoriaInsumo{}, conInsumos: map[uint]bool{}}
}

func (r *stubCategoriaRepo) Create(c *model.CategoriaInsumo) error {
	r.siguiente++
	c.ID = r.siguiente
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) FindAll() ([]model.CategoriaInsumo, error) { return nil, nil }

func (r *stubCategoriaRepo) FindByID(id uint) (*model.CategoriaInsumo, error) {
	if c, ok := r.categorias[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Update(c *model.CategoriaInsumo) error { return nil }
func (r *stubCategoriaRepo) Delete(id uint) error                  { delete(r.categorias, id); return nil }
func (r *stubCategoriaRepo) TieneInsumos(id uint) (bool, error)    { return r.conInsumos[id], nil }

type stubInsumoRepo struct {
	insumos   map[uint]*model.Insumo
	enUso     map[uint]bool
	siguiente uint
}

func newStubInsumoRepo() *stubInsumoRepo {
	return &stubInsumoRepo{insumos: map[uint]*model.Insumo{}, enUso: map[uint]bool{}}
}

func (r *stubInsumoRepo) Create(i *model.Insumo) error {
	r.siguiente++
	i.ID = r.siguiente
	r.insumos[i.ID] = i
	return nil
}

func (r *stubInsumoRepo) FindAll() ([]model.Insumo, error) { return nil, nil }

func (r *stubInsumoRepo) FindByID(id uint) (*model.Insumo, error) {
	if i, ok := r.insumos[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInsumoRepo) Update(i *model.Insumo) error { return nil }
func (r *stubInsumoRepo) Delete(id uint) error         { delete(r.insumos, id); return nil }

func (r *stubInsumoRepo) UpdateStock(tx *gorm.DB, id uint, nuevoStock int) error {
	if i, ok := r.insumos[id]; ok {
		i.StockActual = nuevoStock
	}
	return nil
}

func (r *stubInsumoRepo) EnUso(id uint) (bool, error) { return r.enUso[id], nil }

type stubFichaRepo struct {
	fichas    map[uint]*model.FichaTecnica
	siguiente uint
}

func newStubFichaRepo() *stubFichaRepo {
	return &stubFichaRepo{fichas: map[uint]*model.FichaTecnica{}}
}

func (r *stubFichaRepo) Create(f *model.FichaTecnica) error {
	r.siguiente++
	f.ID = r.siguiente
	r.fichas[f.ID] = f
	return nil
}

func (r *stubFichaRepo) FindAll() ([]model.FichaTecnica, error) { return nil, nil }

func (r *stubFichaRepo) FindByID(id uint) (*model.FichaTecnica, error) {
	if f, ok := r.fichas[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFichaRepo) FindByProducto(idProducto uint) (*model.FichaTecnica, error) {
	for i := uint(1); i <= r.siguiente; i++ {
		if f, ok := r.fichas[i]; ok && f.IDProducto == idProducto {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFichaRepo) Update(f *model.FichaTecnica) error { return nil }

func (r *stubFichaRepo) ReemplazarDetalles(f *model.FichaTecnica, detalles []model.DetalleFichaTecnica) error {
	r.fichas[f.ID].Detalles = detalles
	return nil
}

func (r *stubFichaRepo) Delete(id uint) error {
	delete(r.fichas, id)
	return nil
}

type stubPedidoRepo struct {
	pedidos   map[uint]*model.Pedido
	siguiente uint
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: map[uint]*model.Pedido{}}
}

func (r *stubPedidoRepo) Create(p *model.Pedido) error {
	r.siguiente++
	p.ID = r.siguiente
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) FindAll() ([]model.Pedido, error) {
	var todos []model.Pedido
	for i := uint(1); i <= r.siguiente; i++ {
		if p, ok := r.pedidos[i]; ok {
			todos = append(todos, *p)
		}
	}
	return todos, nil
}

func (r *stubPedidoRepo) FindByID(id uint) (*model.Pedido, error) {
	if p, ok := r.pedidos[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPedidoRepo) FindByEntrega(dia string, pagado bool) ([]model.Pedido, error) {
	var filtrados []model.Pedido
	for i := uint(1); i <= r.siguiente; i++ {
		p, ok := r.pedidos[i]
		if !ok {
			continue
		}
		if p.Pagado == pagado && p.FechaEntrega.MismoDia(dia) {
			filtrados = append(filtrados, *p)
		}
	}
	return filtrados, nil
}

func (r *stubPedidoRepo) Update(p *model.Pedido) error {
	existente := r.pedidos[p.ID]
	detalles := existente.Detalles
	r.pedidos[p.ID] = p
	p.Detalles = detalles
	return nil
}

func (r *stubPedidoRepo) ReemplazarDetalles(p *model.Pedido, detalles []model.DetallePedido) error {
	r.pedidos[p.ID].Detalles = detalles
	return nil
}

func (r *stubPedidoRepo) Delete(id uint) error {
	delete(r.pedidos, id)
	return nil
}

type stubUsuarioRepo struct {
	usuarios  map[uint]*model.Usuario
	siguiente uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: map[uint]*model.Usuario{}}
}

func (r *stubUsuarioRepo) Create(u *model.Usuario) error {
	r.siguiente++
	u.ID = r.siguiente
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindAll() ([]model.Usuario, error) { return nil, nil }

func (r *stubUsuarioRepo) FindByID(id uint) (*model.Usuario, error) {
	if u, ok := r.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByEmail(email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) Update(u *model.Usuario) error { return nil }
func (r *stubUsuarioRepo) Delete(id uint) error          { delete(r.usuarios, id); return nil }

func (r *stubUsuarioRepo) UpdateTokenVersion(id uint, version string) error {
	if u, ok := r.usuarios[id]; ok {
		u.TokenVersion = version
	}
	return nil
}

type stubRolRepo struct {
	roles       map[uint]*model.Rol
	conUsuarios map[uint]bool
	siguiente   uint
}

func newStubRolRepo() *stubRolRepo {
	return &stubRolRepo{roles: map[uint]*model.Rol{}, conUsuarios: map[uint]bool{}}
}

func (r *stubRolRepo) Create(rol *model.Rol, permisos []model.Permiso) error {
	r.siguiente++
	rol.ID = r.siguiente
	rol.Permisos = permisos
	r.roles[rol.ID] = rol
	return nil
}

func (r *stubRolRepo) FindAll() ([]model.Rol, error) { return nil, nil }

func (r *stubRolRepo) FindByID(id uint) (*model.Rol, error) {
	if rol, ok := r.roles[id]; ok {
		return rol, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRolRepo) FindByNombre(nombre string) (*model.Rol, error) {
	for _, rol := range r.roles {
		if rol.Nombre == nombre {
			return rol, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRolRepo) Update(rol *model.Rol) error { return nil }

func (r *stubRolRepo) ReemplazarPermisos(rol *model.Rol, permisos []model.Permiso) error {
	r.roles[rol.ID].Permisos = permisos
	return nil
}

func (r *stubRolRepo) Delete(id uint) error {
	delete(r.roles, id)
	return nil
}

func (r *stubRolRepo) TieneUsuarios(id uint) (bool, error) { return r.conUsuarios[id], nil }

type stubPermisoRepo struct {
	permisos []model.Permiso
}

func (r *stubPermisoRepo) FindAll() ([]model.Permiso, error) { return r.permisos, nil }

func (r *stubPermisoRepo) FindByIDs(ids []uint) ([]model.Permiso, error) {
	var encontrados []model.Permiso
	for _, id := range ids {
		for _, p := range r.permisos {
			if p.ID == id {
				encontrados = append(encontrados, p)
			}
		}
	}
	return encontrados, nil
}

func (r *stubPermisoRepo) FindByNombre(nombre string) (*model.Permiso, error) {
	for i := range r.permisos {
		if r.permisos[i].Nombre == nombre {
			return &r.permisos[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPermisoRepo) SeedDefaults() error { return nil }
