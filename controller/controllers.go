// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/idconsole/service"

type Controllers struct {
	User     *UserController
	Session  *SessionController
	Guardian *GuardianController
	Profile  *ProfileController
	Audit    *AuditController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		User:     NewUserController(services.User),
		Session:  NewSessionController(services.Session),
		Guardian: NewGuardianController(services.Security),
		Profile:  NewProfileController(services.User),
		Audit:    NewAuditController(services.Audit),
	}
}
