// service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/idconsole/audit"
	"github.com/dev-mohitbeniwal/idconsole/management"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

//go:generate mockgen -destination=../test/service_mock/services.go -package=mock_service . IUserService,ISessionService,ISecurityService,IAuditService

type Services struct {
	User     IUserService
	Session  ISessionService
	Security ISecurityService
	Audit    IAuditService
}

func InitializeServices(
	api management.API,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	newChangeRecorder(auditService, notificationSvc, eventBus)

	services := &Services{
		User:     NewUserService(api, auditService, validationUtil, eventBus),
		Session:  NewSessionService(api, auditService, eventBus),
		Security: NewSecurityService(api, auditService, validationUtil, eventBus),
		Audit:    NewAuditService(auditService),
	}

	return services, nil
}
