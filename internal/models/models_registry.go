package models

// ModelTypeRegistry maps entity names to model values for lookups by name.
var ModelTypeRegistry = map[string]interface{}{
	"Property":           Property{},
	"Owner":              Owner{},
	"Tenant":             Tenant{},
	"Employee":           Employee{},
	"Lease":              Lease{},
	"MaintenanceRequest": MaintenanceRequest{},
	"Payment":            Payment{},
	"PropertyOwner":      PropertyOwner{},
	"PaymentAudit":       PaymentAudit{},
}

// Ordered lists models parents-first so AutoMigrate creates referenced
// tables before their dependents.
func Ordered() []interface{} {
	return []interface{}{
		&Property{},
		&Owner{},
		&Tenant{},
		&Employee{},
		&Lease{},
		&MaintenanceRequest{},
		&Payment{},
		&PropertyOwner{},
		&PaymentAudit{},
	}
}
