// controller/user_controller.go
package controller

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	"github.com/dev-mohitbeniwal/idconsole/model"
	"github.com/dev-mohitbeniwal/idconsole/service"
	"github.com/dev-mohitbeniwal/idconsole/util"
	helper_util "github.com/dev-mohitbeniwal/idconsole/util/helper"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the user directory and account security routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", uc.ListUsers)
		users.GET("/:id", uc.GetUser)
		users.PATCH("/:id", uc.UpdateUser)
		users.GET("/:id/authentication-methods", uc.ListAuthenticationMethods)
		users.DELETE("/:id/authentication-methods/:methodId", uc.DeleteAuthenticationMethod)
		users.DELETE("/:id/identities", uc.UnlinkIdentity)
		users.POST("/:id/security/password-reset", uc.RequestPasswordReset)
		users.POST("/:id/security/mfa-reset", uc.ResetMFA)
	}
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	page, perPage, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	users, err := uc.userService.ListUsers(c, actor, model.UserListOptions{
		Query:   strings.TrimSpace(c.Query("q")),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	user, err := uc.userService.GetUser(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser endpoint. The raw body is passed on so the service can tell
// which keys were sent.
func (uc *UserController) UpdateUser(c *gin.Context) {
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

	user, err := uc.userService.UpdateUser(c, actor, c.Param("id"), body)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uc *UserController) ListAuthenticationMethods(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	methods, err := uc.userService.ListAuthenticationMethods(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	if methods == nil {
		methods = []model.AuthenticationMethod{}
	}

	c.JSON(http.StatusOK, gin.H{"methods": methods})
}

func (uc *UserController) DeleteAuthenticationMethod(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	if err := uc.userService.DeleteAuthenticationMethod(c, actor, c.Param("id"), c.Param("methodId")); err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (uc *UserController) UnlinkIdentity(c *gin.Context) {
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

	if err := uc.userService.UnlinkIdentity(c, actor, c.Param("id"), body); err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (uc *UserController) RequestPasswordReset(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	ticket, err := uc.userService.RequestPasswordReset(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (uc *UserController) ResetMFA(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	providers, err := uc.userService.ResetMFA(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	if providers == nil {
		providers = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"providers": providers})
}
