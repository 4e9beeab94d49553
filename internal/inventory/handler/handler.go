package handler

import (
	"errors"
	"net/http"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler.
type Handlers struct {
	Supplier  *SupplierHandler
	Product   *ProductHandler
	Purchase  *PurchaseHandler
	Inventory *InventoryHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Supplier:  NewSupplierHandler(services.Supplier),
		Product:   NewProductHandler(services.Product),
		Purchase:  NewPurchaseHandler(services.Purchase),
		Inventory: NewInventoryHandler(services.Inventory),
	}
}

// actorFrom builds the caller identity from the verified JWT claims the auth
// middleware stored in the context.
func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{
		ID:   c.GetString("user_id"),
		Name: c.GetString("user_name"),
	}
	if roles, exists := c.Get("roles"); exists {
		if rs, ok := roles.([]string); ok {
			actor.Roles = rs
		}
	}
	return actor
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

// respondError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are reported as 500 without leaking detail beyond the message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"code": 40302, "message": err.Error()})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
	case errors.Is(err, service.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
}
