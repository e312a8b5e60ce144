package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin-api/internal/application/auth"
	"github.com/jhoicas/catalogo-admin-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin-api/internal/domain"
	"github.com/jhoicas/catalogo-admin-api/internal/domain/entity"
	apphttp "github.com/jhoicas/catalogo-admin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia (API completa sin DB)
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct{ byEmail map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

type memCategoryRepo struct{ items map[string]*entity.Category }

func (r *memCategoryRepo) Create(c *entity.Category) error { r.items[c.ID] = c; return nil }

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) { return r.items[id], nil }

func (r *memCategoryRepo) Update(c *entity.Category) (bool, error) {
	if _, ok := r.items[c.ID]; !ok {
		return false, nil
	}
	r.items[c.ID] = c
	return true, nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		list = append(list, c)
	}
	return list, nil
}

func (r *memCategoryRepo) Delete(id string) error { delete(r.items, id); return nil }

type memSubCategoryRepo struct {
	items      map[string]*entity.SubCategory
	categories *memCategoryRepo
}

func (r *memSubCategoryRepo) Create(s *entity.SubCategory) error { r.items[s.ID] = s; return nil }

func (r *memSubCategoryRepo) GetByID(id string) (*entity.SubCategory, error) {
	return r.items[id], nil
}

func (r *memSubCategoryRepo) Update(s *entity.SubCategory) (bool, error) {
	if _, ok := r.items[s.ID]; !ok {
		return false, nil
	}
	r.items[s.ID] = s
	return true, nil
}

func (r *memSubCategoryRepo) List() ([]*entity.SubCategoryWithCategory, error) {
	list := make([]*entity.SubCategoryWithCategory, 0, len(r.items))
	for _, s := range r.items {
		out := &entity.SubCategoryWithCategory{SubCategory: *s}
		if c := r.categories.items[s.CategoryID]; c != nil {
			out.CategoryName = c.Name
		}
		list = append(list, out)
	}
	return list, nil
}

func (r *memSubCategoryRepo) Delete(id string) error { delete(r.items, id); return nil }

type memProductRepo struct {
	items         map[string]*entity.Product
	categories    *memCategoryRepo
	subCategories *memSubCategoryRepo
}

func (r *memProductRepo) Create(p *entity.Product) error { r.items[p.ID] = p; return nil }

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.items[id], nil }

func (r *memProductRepo) Update(p *entity.Product) (bool, error) {
	if _, ok := r.items[p.ID]; !ok {
		return false, nil
	}
	r.items[p.ID] = p
	return true, nil
}

func (r *memProductRepo) List() ([]*entity.ProductWithRefs, error) {
	list := make([]*entity.ProductWithRefs, 0, len(r.items))
	for _, p := range r.items {
		out := &entity.ProductWithRefs{Product: *p}
		if s := r.subCategories.items[p.SubCategoryID]; s != nil {
			out.SubCategoryName = s.Name
		}
		if c := r.categories.items[p.CategoryID]; c != nil {
			out.CategoryName = c.Name
		}
		list = append(list, out)
	}
	return list, nil
}

func (r *memProductRepo) Delete(id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// buildAPI arma la aplicación completa (router + handlers + use cases) sobre
// repos en memoria, igual que main.go pero sin PostgreSQL.
func buildAPI() *fiber.App {
	tokens := testTokens()
	users := &memUserRepo{byEmail: map[string]*entity.User{}}
	categories := &memCategoryRepo{items: map[string]*entity.Category{}}
	subCategories := &memSubCategoryRepo{items: map[string]*entity.SubCategory{}, categories: categories}
	products := &memProductRepo{items: map[string]*entity.Product{}, categories: categories, subCategories: subCategories}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(users, tokens),
		CategoryUC:    catalog.NewCategoryUseCase(categories),
		SubCategoryUC: catalog.NewSubCategoryUseCase(subCategories, categories),
		ProductUC:     catalog.NewProductUseCase(products, subCategories, categories),
		Tokens:        tokens,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y bearer token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, bearer string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// registerAndLogin registra un usuario y devuelve access y refresh token.
func registerAndLogin(t *testing.T, app *fiber.App) (accessToken, refreshToken string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		map[string]string{"name": "Ana", "email": "ana@example.com", "password": "secreta123"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ana@example.com", "password": "secreta123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)

	accessToken, _ = body["token"].(string)
	refreshToken, _ = body["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "login debe incluir el resumen del usuario")
	require.Equal(t, "ana@example.com", user["email"])
	require.NotContains(t, user, "password", "el password nunca se devuelve")
	return accessToken, refreshToken
}

// seedCatalog crea categoría y subcategoría vía API y devuelve sus ids.
func seedCatalog(t *testing.T, app *fiber.App, accessToken string) (categoryID, subCategoryID string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/category",
		map[string]any{"name": "Bebidas"}, accessToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	categoryID = body["category"].(map[string]any)["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/sub-category",
		map[string]any{"name": "Gaseosas", "category": categoryID}, accessToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decode(t, resp)
	subCategoryID = body["subCategory"].(map[string]any)["id"].(string)
	return categoryID, subCategoryID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de flujo de autenticación
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo: register → login → listado protegido con access token → 200;
// sin token → 401; con el refresh token en lugar del access → 401.
func TestFlujoCompleto_RegisterLoginRutaProtegida(t *testing.T) {
	app := buildAPI()
	accessToken, refreshToken := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/sub-category", nil, accessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/sub-category", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/sub-category", nil, refreshToken)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"el refresh token está firmado con otro secret y no sirve como access token")
	resp.Body.Close()
}

// Registrar dos veces el mismo email falla la segunda vez con 400 EMAIL_EXISTS.
func TestRegister_EmailDuplicado_Retorna400(t *testing.T) {
	app := buildAPI()
	registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		map[string]string{"name": "Otra", "email": "ana@example.com", "password": "distinta456"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])
}

// Registro con campos faltantes → 400 VALIDATION.
func TestRegister_CamposFaltantes_Retorna400(t *testing.T) {
	app := buildAPI()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "sin-nombre@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

// Email desconocido y password incorrecto devuelven el mismo status y el mismo cuerpo.
func TestLogin_DesconocidoYPasswordIncorrecto_MismaRespuesta(t *testing.T) {
	app := buildAPI()
	registerAndLogin(t, app)

	respDesconocido := doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "nadie@example.com", "password": "secreta123"}, "")
	respPassword := doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ana@example.com", "password": "incorrecta"}, "")

	assert.Equal(t, http.StatusBadRequest, respDesconocido.StatusCode)
	assert.Equal(t, http.StatusBadRequest, respPassword.StatusCode)

	bodyDesconocido := decode(t, respDesconocido)
	bodyPassword := decode(t, respPassword)
	assert.Equal(t, bodyDesconocido, bodyPassword,
		"ambos fallos deben ser indistinguibles para el cliente")
}

// Refresh: sin token → 401; con token mal firmado → 403; con refresh válido → 200.
func TestRefreshToken_Matriz(t *testing.T) {
	app := buildAPI()
	accessToken, refreshToken := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/refresh-token", map[string]string{}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Un access token es sintácticamente válido pero está firmado con el otro secret.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/refresh-token",
		map[string]string{"token": accessToken}, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/refresh-token",
		map[string]string{"token": refreshToken}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	nuevo, _ := body["token"].(string)
	assert.NotEmpty(t, nuevo, "refresh debe emitir un nuevo access token")

	// El nuevo access token sirve para rutas protegidas.
	resp = doJSON(t, app, http.MethodGet, "/api/product", nil, nuevo)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los endpoints de catálogo
// ──────────────────────────────────────────────────────────────────────────────

// El listado de categorías es público; la escritura exige token.
func TestCategoria_ListadoPublicoEscrituraProtegida(t *testing.T) {
	app := buildAPI()

	resp := doJSON(t, app, http.MethodGet, "/api/category", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/category", map[string]any{"name": "Bebidas"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// Crear un producto sin imagen aplica el placeholder; las referencias válidas pasan.
func TestProducto_CrearConReferenciasValidas(t *testing.T) {
	app := buildAPI()
	accessToken, _ := registerAndLogin(t, app)
	categoryID, subCategoryID := seedCatalog(t, app, accessToken)

	resp := doJSON(t, app, http.MethodPost, "/api/product",
		map[string]any{"name": "Cola 350ml", "subCategory": subCategoryID, "category": categoryID},
		accessToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)

	product := body["product"].(map[string]any)
	assert.Equal(t, entity.PlaceholderImage, product["image"])
	assert.Equal(t, true, product["status"])
}

// Crear un producto con una subcategoría bien formada pero inexistente → 400.
func TestProducto_SubCategoriaInexistente_Retorna400(t *testing.T) {
	app := buildAPI()
	accessToken, _ := registerAndLogin(t, app)
	categoryID, _ := seedCatalog(t, app, accessToken)

	resp := doJSON(t, app, http.MethodPost, "/api/product",
		map[string]any{"name": "Cola 350ml", "subCategory": uuid.New().String(), "category": categoryID},
		accessToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

// Asimetría del contrato: borrar un producto inexistente → 404, pero borrar una
// categoría inexistente → 200.
func TestBorrado_AsimetriaProductoVsCategoria(t *testing.T) {
	app := buildAPI()
	accessToken, _ := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/api/product/"+uuid.New().String(), nil, accessToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/category/"+uuid.New().String(), nil, accessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el borrado de categoría responde éxito exista o no el id")
	resp.Body.Close()
}

// Actualizar una categoría inexistente responde 200 con category null (no 404).
func TestActualizarCategoriaInexistente_Retorna200ConNull(t *testing.T) {
	app := buildAPI()
	accessToken, _ := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/category/"+uuid.New().String(),
		map[string]any{"name": "Snacks"}, accessToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Nil(t, body["category"], "el update de categoría no reporta NotFound, devuelve null")
}

// Actualizar un producto inexistente sí responde 404.
func TestActualizarProductoInexistente_Retorna404(t *testing.T) {
	app := buildAPI()
	accessToken, _ := registerAndLogin(t, app)
	categoryID, subCategoryID := seedCatalog(t, app, accessToken)

	resp := doJSON(t, app, http.MethodPut, "/api/product/"+uuid.New().String(),
		map[string]any{"name": "Cola 500ml", "subCategory": subCategoryID, "category": categoryID},
		accessToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// Tras borrar la categoría padre, el listado de subcategorías sigue respondiendo
// 200 y resuelve el nombre del padre a vacío (referencia colgando tolerada).
func TestListadoSubCategorias_ToleraPadreBorrado(t *testing.T) {
	app := buildAPI()
	accessToken, _ := registerAndLogin(t, app)
	categoryID, _ := seedCatalog(t, app, accessToken)

	resp := doJSON(t, app, http.MethodDelete, "/api/category/"+categoryID, nil, accessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/sub-category", nil, accessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, categoryID, list[0]["category"], "la referencia colgando se conserva")
	assert.NotContains(t, list[0], "categoryName", "el nombre del padre borrado se omite")
}
