// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	idc_errors "github.com/dev-mohitbeniwal/idconsole/errors"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/session"
)

const (
	sessionKey = "session"
	actorKey   = "actor"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithValidationError writes a 400 with the field level details.
func RespondWithValidationError(c *gin.Context, verr *idc_errors.ValidationError) {
	logger.Warn("Invalid payload",
		zap.String("error", verr.Error()),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": verr})
}

var clientErrors = []struct {
	err     error
	code    int
	message string
}{
	{idc_errors.ErrNoSession, http.StatusUnauthorized, "Unauthorized"},
	{idc_errors.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{idc_errors.ErrBlockedAdminOnly, http.StatusForbidden, "Blocked status can only be modified by admins."},
	{idc_errors.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{idc_errors.ErrEmailUpdateDisabled, http.StatusBadRequest, "Email updates are disabled for now."},
	{idc_errors.ErrInvalidUserID, http.StatusBadRequest, "Invalid user id"},
	{idc_errors.ErrInvalidSessionID, http.StatusBadRequest, "Invalid session id"},
	{idc_errors.ErrInvalidEnrollmentID, http.StatusBadRequest, "Invalid enrollment id"},
	{idc_errors.ErrInvalidMethodID, http.StatusBadRequest, "Invalid authentication method id"},
	{idc_errors.ErrInvalidTimeRange, http.StatusBadRequest, "Invalid time range"},
	{idc_errors.ErrInvalidPayload, http.StatusBadRequest, "Invalid payload"},
}

// RespondWithServiceError maps a service error onto its HTTP status. Errors
// outside the known set are reported as a generic 500.
func RespondWithServiceError(c *gin.Context, err error) {
	var verr *idc_errors.ValidationError
	if errors.As(err, &verr) {
		RespondWithValidationError(c, verr)
		return
	}
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			RespondWithError(c, ce.code, ce.message, err)
			return
		}
	}
	RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
}

func SetSession(c *gin.Context, s session.Session) {
	c.Set(sessionKey, s)
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

func SetActor(c *gin.Context, actor permission.Actor) {
	c.Set(actorKey, actor)
}

// GetActor returns the request's actor. Handlers behind the session
// middleware always have one.
func GetActor(c *gin.Context) (permission.Actor, error) {
	v, exists := c.Get(actorKey)
	if !exists {
		return permission.Actor{}, idc_errors.ErrNoSession
	}
	actor, ok := v.(permission.Actor)
	if !ok || actor.ID == "" {
		return permission.Actor{}, idc_errors.ErrNoSession
	}
	return actor, nil
}
