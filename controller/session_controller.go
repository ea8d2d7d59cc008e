// controller/session_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/idconsole/model"
	"github.com/dev-mohitbeniwal/idconsole/service"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

type SessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func (sc *SessionController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/users/:id/sessions", sc.ListUserSessions)
	r.DELETE("/users/:id/sessions", sc.RevokeUserSessions)
	r.POST("/sessions/:id/revoke", sc.RevokeSession)
}

// ListUserSessions returns the provider's sessions response as is.
func (sc *SessionController) ListUserSessions(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	sessions, err := sc.sessionService.ListUserSessions(c, actor, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	if sessions == nil {
		sessions = &model.SessionsResponse{Sessions: []model.Session{}}
	}

	c.JSON(http.StatusOK, sessions)
}

func (sc *SessionController) RevokeUserSessions(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	if err := sc.sessionService.RevokeUserSessions(c, actor, c.Param("id")); err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (sc *SessionController) RevokeSession(c *gin.Context) {
	actor, err := util.GetActor(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	if err := sc.sessionService.RevokeSession(c, actor, c.Param("id")); err != nil {
		util.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
