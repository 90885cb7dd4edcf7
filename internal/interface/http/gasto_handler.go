package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Reidyensam/SeguimientoGastos/internal/application"
	"github.com/Reidyensam/SeguimientoGastos/internal/domain/repository"
	"github.com/Reidyensam/SeguimientoGastos/internal/interface/middleware"
	"github.com/Reidyensam/SeguimientoGastos/pkg/response"
	"github.com/Reidyensam/SeguimientoGastos/pkg/validation"
)

type GastoHandler struct {
	Svc    *application.GastoService
	Logger *logrus.Logger
}

func NewGastoHandler(svc *application.GastoService, logger *logrus.Logger) *GastoHandler {
	return &GastoHandler{Svc: svc, Logger: logger}
}

type crearGastoRequest struct {
	Name      string   `json:"nombre" binding:"required"`
	Amount    *float64 `json:"monto" binding:"required,gt=0"`
	Date      string   `json:"fecha"`
	Category  string   `json:"categoria" binding:"omitempty,categoria"`
	Completed bool     `json:"completado"`
}

type actualizarGastoRequest struct {
	Name      *string  `json:"nombre" binding:"omitnil,min=1"`
	Amount    *float64 `json:"monto" binding:"omitnil,gt=0"`
	Date      *string  `json:"fecha"`
	Category  *string  `json:"categoria" binding:"omitnil,categoria"`
	Completed *bool    `json:"completado"`
}

// parseFecha accepts the client's full ISO timestamps as well as plain dates.
func parseFecha(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// List GET /api/gastos
func (h *GastoHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	gastos, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("list gastos failed")
		response.Error(c, http.StatusInternalServerError, "Error al obtener los gastos.", nil)
		return
	}
	c.JSON(http.StatusOK, gastos)
}

// Create POST /api/gastos
func (h *GastoHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req crearGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Datos inválidos. Verifica que el nombre y monto sean correctos.", validation.ToDetails(err))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.Error(c, http.StatusBadRequest, "Datos inválidos. Verifica que el nombre y monto sean correctos.", map[string]string{"nombre": "es obligatorio"})
		return
	}

	in := application.CreateGastoInput{
		Name:      name,
		Amount:    *req.Amount,
		Category:  strings.TrimSpace(req.Category),
		Completed: req.Completed,
	}
	if req.Date != "" {
		t, ok := parseFecha(req.Date)
		if !ok {
			response.Error(c, http.StatusBadRequest, "Datos inválidos. Verifica que el nombre y monto sean correctos.", map[string]string{"fecha": "debe ser una fecha válida"})
			return
		}
		in.Date = t
	}

	g, err := h.Svc.Create(c.Request.Context(), uid, in)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("create gasto failed")
		response.Error(c, http.StatusInternalServerError, "Error al crear el gasto.", nil)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// Update PUT /api/gastos/:id
func (h *GastoHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.Error(c, http.StatusNotFound, "Gasto no encontrado o no pertenece al usuario.", nil)
		return
	}

	var req actualizarGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Datos inválidos.", validation.ToDetails(err))
		return
	}

	in := application.UpdateGastoInput{
		Amount:    req.Amount,
		Completed: req.Completed,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			response.Error(c, http.StatusBadRequest, "Datos inválidos.", map[string]string{"nombre": "es obligatorio"})
			return
		}
		in.Name = &name
	}
	if req.Category != nil {
		categoria := strings.TrimSpace(*req.Category)
		in.Category = &categoria
	}
	if req.Date != nil {
		t, ok := parseFecha(*req.Date)
		if !ok {
			response.Error(c, http.StatusBadRequest, "Datos inválidos.", map[string]string{"fecha": "debe ser una fecha válida"})
			return
		}
		in.Date = &t
	}

	if _, err := h.Svc.Update(c.Request.Context(), uid, id, in); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Gasto no encontrado o no pertenece al usuario.", nil)
			return
		}
		h.Logger.WithError(err).WithFields(logrus.Fields{"user_id": uid, "gasto_id": id}).Error("update gasto failed")
		response.Error(c, http.StatusInternalServerError, "Error al actualizar el gasto.", nil)
		return
	}
	response.Message(c, http.StatusOK, "Gasto actualizado correctamente.")
}

// Delete DELETE /api/gastos/:id
func (h *GastoHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		response.Error(c, http.StatusNotFound, "Gasto no encontrado o no pertenece al usuario.", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), uid, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Gasto no encontrado o no pertenece al usuario.", nil)
			return
		}
		h.Logger.WithError(err).WithFields(logrus.Fields{"user_id": uid, "gasto_id": id}).Error("delete gasto failed")
		response.Error(c, http.StatusInternalServerError, "Error al eliminar el gasto.", nil)
		return
	}
	response.Message(c, http.StatusOK, "Gasto eliminado correctamente.")
}
