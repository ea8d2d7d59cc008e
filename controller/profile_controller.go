// controller/profile_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/idconsole/service"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

// ProfileController serves the caller's own profile and the admin view of
// other users' profiles.
type ProfileController struct {
	userService service.IUserService
}

func NewProfileController(userService service.IUserService) *ProfileController {
	return &ProfileController{userService: userService}
}

func (pc *ProfileController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/me", pc.GetProfile)
}

func (pc *ProfileController) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/users/:id/profile", pc.GetAdminProfile)
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	profile, err := pc.userService.Profile(c, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) GetAdminProfile(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	profile, err := pc.userService.AdminProfile(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
