package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin-api/internal/application/dto"
	"github.com/jhoicas/catalogo-admin-api/internal/domain"
)

// SubCategoryHandler maneja las peticiones HTTP para SubCategory (protegido).
type SubCategoryHandler struct {
	uc *catalog.SubCategoryUseCase
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *catalog.SubCategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         sub-categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SubCategoryResponse
// @Router       /api/sub-category [get]
func (h *SubCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         sub-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSubCategoryRequest  true  "Datos de la subcategoría"
// @Success      201   {object}  dto.SaveSubCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sub-category [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la categoría no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaveSubCategoryResponse{Message: "subcategoría creada correctamente", SubCategory: out})
}

// Update godoc
// @Summary      Actualizar subcategoría (reemplazo de campos nombrados)
// @Tags         sub-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la subcategoría"
// @Param        body  body  dto.SaveSubCategoryRequest  true  "Datos a reemplazar"
// @Success      200   {object}  dto.SaveSubCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sub-category/{id} [put]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Id inexistente: 200 con subCategory null (misma política que Category).
	return c.JSON(dto.SaveSubCategoryResponse{Message: "subcategoría actualizada correctamente", SubCategory: out})
}

// Delete godoc
// @Summary      Eliminar subcategoría
// @Tags         sub-categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/sub-category/{id} [delete]
func (h *SubCategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Responde 200 exista o no el id; los productos dependientes no se tocan.
	return c.JSON(dto.MessageResponse{Message: "subcategoría eliminada correctamente"})
}
