// controller/audit_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/service"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

type AuditController struct {
	auditService service.IAuditService
}

func NewAuditController(auditService service.IAuditService) *AuditController {
	return &AuditController{auditService: auditService}
}

func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit", ac.QueryLogs)
}

// QueryLogs endpoint. userId filters by actor, resourceId by target.
func (ac *AuditController) QueryLogs(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	logs, err := ac.auditService.QueryLogs(c, actor,
		c.Query("from"), c.Query("to"), c.Query("userId"), c.Query("resourceId"))
	if err != nil {
		if errors.Is(err, idc_errors.ErrAuditQueryUnsupported) {
			util.RespondWithError(c, http.StatusNotImplemented, "Audit queries are not available", err)
			return
		}
		util.RespondWithServiceError(c, err)
		return
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
