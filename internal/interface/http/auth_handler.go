package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Reidyensam/SeguimientoGastos/internal/application"
	"github.com/Reidyensam/SeguimientoGastos/internal/interface/middleware"
	"github.com/Reidyensam/SeguimientoGastos/pkg/response"
	"github.com/Reidyensam/SeguimientoGastos/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registroRequest struct {
	Name     string `json:"nombre" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"contraseña" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"contraseña" binding:"required"`
}

func usuarioJSON(id, nombre, email string) gin.H {
	return gin.H{"id": id, "nombre": nombre, "email": email}
}

// Registro POST /api/auth/registro
func (h *AuthHandler) Registro(c *gin.Context) {
	var req registroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Datos inválidos. Verifica los campos.", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailRegistered) {
			response.Error(c, http.StatusBadRequest, "El usuario ya está registrado.", nil)
			return
		}
		h.Logger.WithError(err).Error("registro failed")
		response.Error(c, http.StatusInternalServerError, "Error al registrar usuario.", nil)
		return
	}

	response.Data(c, http.StatusCreated, "Usuario registrado correctamente.", gin.H{
		"token":   token,
		"usuario": usuarioJSON(u.ID, u.Name, u.Email),
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Todos los campos son obligatorios.", validation.ToDetails(err))
		return
	}

	_, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusBadRequest, "Usuario no encontrado.", nil)
		case errors.Is(err, application.ErrBadPassword):
			response.Error(c, http.StatusBadRequest, "Contraseña incorrecta.", nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error(c, http.StatusInternalServerError, "Error al iniciar sesión.", nil)
		}
		return
	}

	response.Data(c, http.StatusOK, "Login exitoso.", gin.H{"token": token})
}

// Perfil GET /api/auth/perfil (protected)
func (h *AuthHandler) Perfil(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	u, err := h.Svc.Profile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "Usuario no encontrado.", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("perfil failed")
		response.Error(c, http.StatusInternalServerError, "Error al obtener perfil.", nil)
		return
	}

	response.Data(c, http.StatusOK, "Perfil del usuario.", gin.H{
		"usuario": usuarioJSON(u.ID, u.Name, u.Email),
	})
}
