package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin-api/internal/application/dto"
	"github.com/jhoicas/catalogo-admin-api/internal/domain"
)

// Crear una categoría sin status ni sequence aplica los defaults (true, 0).
func TestCrearCategoria_AplicaDefaults(t *testing.T) {
	f := newFixture()

	out, err := f.categoryUC.Create(dto.SaveCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Status)
	assert.Equal(t, 0, out.Sequence)
	assert.NotEmpty(t, out.ID)
}

// Eliminar una categoría inexistente NO falla: responde éxito incondicional.
// Asimetría deliberada frente a Product.Delete, que sí reporta NotFound.
func TestEliminarCategoriaInexistente_RetornaOK(t *testing.T) {
	f := newFixture()

	err := f.categoryUC.Delete(uuid.New().String())
	assert.NoError(t, err, "el borrado de categoría no verifica existencia")
}

// Actualizar una categoría inexistente devuelve (nil, nil): el handler responde
// 200 con registro null, no 404.
func TestActualizarCategoriaInexistente_RetornaNil(t *testing.T) {
	f := newFixture()

	out, err := f.categoryUC.Update(uuid.New().String(), dto.SaveCategoryRequest{Name: "Snacks"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Crear una subcategoría exige que la categoría padre exista.
func TestCrearSubCategoria_CategoriaInexistente_RetornaError(t *testing.T) {
	f := newFixture()

	_, err := f.subCategoryUC.Create(dto.SaveSubCategoryRequest{
		Name:     "Gaseosas",
		Category: uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotExists)
}

// Borrar la categoría padre no borra ni re-enlaza sus subcategorías (sin cascada);
// el listado resuelve el nombre del padre a vacío.
func TestEliminarCategoria_NoArrastraSubCategorias(t *testing.T) {
	f := newFixture()
	categoryID, subCategoryID := seedTree(t, f)

	require.NoError(t, f.categoryUC.Delete(categoryID))

	list, err := f.subCategoryUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "la subcategoría huérfana sigue existiendo")
	assert.Equal(t, subCategoryID, list[0].ID)
	assert.Equal(t, categoryID, list[0].Category, "la referencia colgando se conserva")
	assert.Empty(t, list[0].CategoryName)
}

// El update de subcategoría es reemplazo total y no revalida la referencia al padre.
func TestActualizarSubCategoria_ReemplazoTotalSinRevalidarPadre(t *testing.T) {
	f := newFixture()
	_, subCategoryID := seedTree(t, f)

	huerfana := uuid.New().String() // categoría que no existe
	out, err := f.subCategoryUC.Update(subCategoryID, dto.SaveSubCategoryRequest{
		Name:     "Jugos",
		Category: huerfana,
		Sequence: 3,
	})
	require.NoError(t, err, "el update no revalida la existencia del padre")
	require.NotNil(t, out)

	assert.Equal(t, "Jugos", out.Name)
	assert.Equal(t, huerfana, out.Category)
	assert.True(t, out.Status, "status no enviado vuelve al default true")
	assert.Equal(t, 3, out.Sequence)
}
