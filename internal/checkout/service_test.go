package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dvillegas/postres-backend/internal/cart"
	"github.com/dvillegas/postres-backend/internal/catalog"
	"github.com/dvillegas/postres-backend/pkg/db/models"
)

func precio(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func carritoDePrueba() cart.Cart {
	c := cart.Cart{}.Add("Torta", precio("5"), "img/torta.jpg")
	c, _ = c.Adjust("Torta", cart.AccionSumar)
	return c.Add("Flan", precio("3"), "img/flan.jpg")
}

func TestExecutePersistsCompradorVentaDetalles(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	productos := &stubProductos{ids: map[string]int64{"Torta": 7, "Flan": 9}}
	svc := newTestService(t, repo, productos)

	venta, err := svc.Execute(context.Background(), Input{
		Nombre:    "Ana",
		Correo:    "ana@example.test",
		Telefono:  "555-0100",
		Direccion: "Calle 1",
	}, carritoDePrueba(), "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.comprador == nil || repo.comprador.Nombre != "Ana" {
		t.Fatalf("comprador not saved: %+v", repo.comprador)
	}
	if !venta.Total.Equal(precio("13")) {
		t.Fatalf("expected total 13, got %s", venta.Total)
	}
	if venta.CompradorID != repo.comprador.ID {
		t.Fatalf("venta should reference the comprador, got %d", venta.CompradorID)
	}
	if len(repo.detalles) != 2 {
		t.Fatalf("expected 2 detalles, got %d", len(repo.detalles))
	}

	torta := repo.detalles[0]
	if torta.ProductoID == nil || *torta.ProductoID != 7 {
		t.Fatalf("torta detail should reference producto 7, got %+v", torta.ProductoID)
	}
	if torta.Cantidad != 2 || !torta.Subtotal.Equal(precio("10")) {
		t.Fatalf("unexpected torta detail: %+v", torta)
	}
	flan := repo.detalles[1]
	if !flan.Subtotal.Equal(precio("3")) || !flan.PrecioUnitario.Equal(precio("3")) {
		t.Fatalf("unexpected flan detail: %+v", flan)
	}
}

func TestExecuteEmptyCartAllowed(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo, &stubProductos{})

	venta, err := svc.Execute(context.Background(), Input{Nombre: "Ana"}, cart.Cart{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !venta.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", venta.Total)
	}
	if len(repo.detalles) != 0 {
		t.Fatalf("expected no detalles, got %d", len(repo.detalles))
	}
	if venta.CreadoPor != "admin" {
		t.Fatalf("expected admin fallback, got %q", venta.CreadoPor)
	}
}

func TestExecuteUnresolvedProductKeepsDetail(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo, &stubProductos{})

	carrito := cart.Cart{}.Add("Gelatina", precio("1.50"), "")
	venta, err := svc.Execute(context.Background(), Input{Nombre: "Ana"}, carrito, "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.detalles) != 1 {
		t.Fatalf("expected 1 detalle, got %d", len(repo.detalles))
	}
	if repo.detalles[0].ProductoID != nil {
		t.Fatalf("unresolved product should leave a nil reference, got %v", *repo.detalles[0].ProductoID)
	}
	if !venta.Total.Equal(precio("1.50")) {
		t.Fatalf("unexpected total %s", venta.Total)
	}
}

func TestExecuteDetailFailureAbortsTransaction(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	repo.detalleErr = errors.New("insert failed")
	svc := newTestService(t, repo, &stubProductos{ids: map[string]int64{"Torta": 7}})

	carrito := cart.Cart{}.Add("Torta", precio("5"), "")
	_, err := svc.Execute(context.Background(), Input{Nombre: "Ana"}, carrito, "Ana")
	if err == nil {
		t.Fatal("expected error from detail insert")
	}
	if !errors.Is(err, repo.detalleErr) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}

func newTestService(t *testing.T, repo Repository, productos catalog.ProductoRepository) Service {
	t.Helper()
	svc, err := NewService(stubTxRunner{}, repo, productos, nil)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubRepo struct {
	nextID     int64
	comprador  *models.Comprador
	venta      *models.Venta
	detalles   []models.VentaDetalle
	detalleErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{nextID: 1}
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) CreateComprador(ctx context.Context, comprador *models.Comprador) error {
	comprador.ID = s.nextID
	s.nextID++
	s.comprador = comprador
	return nil
}

func (s *stubRepo) CreateVenta(ctx context.Context, venta *models.Venta) error {
	venta.ID = s.nextID
	s.nextID++
	s.venta = venta
	return nil
}

func (s *stubRepo) CreateDetalles(ctx context.Context, detalles []models.VentaDetalle) error {
	if s.detalleErr != nil {
		return s.detalleErr
	}
	s.detalles = append(s.detalles, detalles...)
	return nil
}

type stubProductos struct {
	ids map[string]int64
}

func (s *stubProductos) WithTx(tx *gorm.DB) catalog.ProductoRepository { return s }

func (s *stubProductos) List(ctx context.Context) ([]models.Producto, error) { return nil, nil }

func (s *stubProductos) FindByID(ctx context.Context, id int64) (*models.Producto, error) {
	return nil, nil
}

func (s *stubProductos) FindIDByNombre(ctx context.Context, nombre string) (*int64, error) {
	if id, ok := s.ids[nombre]; ok {
		v := id
		return &v, nil
	}
	return nil, nil
}

func (s *stubProductos) Create(ctx context.Context, producto *models.Producto) error { return nil }
func (s *stubProductos) Update(ctx context.Context, producto *models.Producto) error { return nil }
func (s *stubProductos) Delete(ctx context.Context, id int64) error                  { return nil }

func TestVentaDateKeepsLocalCalendarDay(t *testing.T) {
	t.Parallel()

	// Half past midnight in a zone far ahead of UTC: the UTC clock still
	// reads the previous day.
	loc := time.FixedZone("UTC+13", 13*60*60)
	now := time.Date(2026, time.March, 1, 0, 30, 0, 0, loc)

	got := ventaDate(now)

	if y, m, d := got.Date(); y != 2026 || m != time.March || d != 1 {
		t.Fatalf("calendar day shifted: %04d-%02d-%02d", y, m, d)
	}
	if h, min, sec := got.Clock(); h != 0 || min != 0 || sec != 0 {
		t.Fatalf("expected midnight, got %02d:%02d:%02d", h, min, sec)
	}
	if got.Location() != loc {
		t.Fatalf("expected the caller's zone, got %s", got.Location())
	}
}
