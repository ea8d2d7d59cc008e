// controller/guardian_controller.go
package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/model"
	"github.com/dev-mohitbeniwal/idconsole/service"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

// GuardianController serves MFA enrollments.
type GuardianController struct {
	securityService service.ISecurityService
}

func NewGuardianController(securityService service.ISecurityService) *GuardianController {
	return &GuardianController{
		securityService: securityService,
	}
}

func (gc *GuardianController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/users/:id/enrollments", gc.ListUserEnrollments)

	enrollments := r.Group("/guardian/enrollments")
	{
		enrollments.POST("/ticket", gc.CreateEnrollmentTicket)
		enrollments.GET("/:id", gc.GetEnrollment)
		enrollments.DELETE("/:id", gc.DeleteEnrollment)
	}
}

func (gc *GuardianController) ListUserEnrollments(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	enrollments, err := gc.securityService.ListUserEnrollments(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}

	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments})
}

func (gc *GuardianController) GetEnrollment(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	enrollment, err := gc.securityService.GetEnrollment(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"enrollment": enrollment})
}

func (gc *GuardianController) DeleteEnrollment(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	if err := gc.securityService.DeleteEnrollment(c, actor, c.Param("id")); err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (gc *GuardianController) CreateEnrollmentTicket(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid payload", idc_errors.ErrInvalidPayload)
		return
	}

	ticket, err := gc.securityService.CreateEnrollmentTicket(c, actor, body)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}
