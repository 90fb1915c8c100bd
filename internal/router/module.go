package router

import "github.com/gin-gonic/gin"

// Module registers its routes on the group it is given: /api for Add, the root for AddPage.
type Module interface {
	Register(rg *gin.RouterGroup)
}
