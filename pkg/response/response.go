package response

import (
	"github.com/gin-gonic/gin"
)

// Every reply, success or failure, carries a "mensaje" field so clients can
// handle both with the same shape. Extra top-level fields (token, usuario)
// ride alongside it.

// Message writes the bare {mensaje} envelope.
func Message(c *gin.Context, status int, mensaje string) {
	c.JSON(status, gin.H{"mensaje": mensaje})
}

// Data writes mensaje plus the given top-level fields.
func Data(c *gin.Context, status int, mensaje string, extra gin.H) {
	body := gin.H{"mensaje": mensaje}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes a failure envelope. detalles, when present, maps field names
// to human-readable validation messages.
func Error(c *gin.Context, status int, mensaje string, detalles any) {
	body := gin.H{"mensaje": mensaje}
	if detalles != nil {
		body["detalles"] = detalles
	}
	c.JSON(status, body)
}
