package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvillegas/postres-backend/pkg/db/models"
)

func TestProductoCRUD(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewProductoRepository(db)
	ctx := context.Background()

	producto := &models.Producto{
		Nombre:      "Flan",
		Descripcion: "Flan de vainilla",
		Imagen:      "img/flan.jpg",
		Precio:      decimal.RequireFromString("2.50"),
		Stock:       40,
		CreadoPor:   "admin",
	}
	require.NoError(t, repo.Create(ctx, producto))
	require.NotZero(t, producto.ID)

	got, err := repo.FindByID(ctx, producto.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Flan", got.Nombre)
	assert.True(t, got.Precio.Equal(decimal.RequireFromString("2.50")))

	got.Nombre = "Flan casero"
	got.Precio = decimal.RequireFromString("2.75")
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByID(ctx, producto.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Flan casero", updated.Nombre)
	assert.True(t, updated.Precio.Equal(decimal.RequireFromString("2.75")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, producto.ID))
	missing, err := repo.FindByID(ctx, producto.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductoFindByIDMissingIsNil(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewProductoRepository(db)

	got, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductoDeleteMissingIsNoop(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewProductoRepository(db)

	require.NoError(t, repo.Delete(context.Background(), 999))
}

func TestFindIDByNombreFirstMatch(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewProductoRepository(db)
	ctx := context.Background()

	first := &models.Producto{Nombre: "Torta", Precio: decimal.RequireFromString("5"), CreadoPor: "admin"}
	second := &models.Producto{Nombre: "Torta", Precio: decimal.RequireFromString("6"), CreadoPor: "admin"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	id, err := repo.FindIDByNombre(ctx, "Torta")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, first.ID, *id)
}

func TestFindIDByNombreNoMatch(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewProductoRepository(db)

	id, err := repo.FindIDByNombre(context.Background(), "Gelatina")
	require.NoError(t, err)
	assert.Nil(t, id)
}
