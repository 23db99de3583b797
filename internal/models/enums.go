package models

// PropertyType classifies a property
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "Single Family"
	PropertyTypeApartment    PropertyType = "Apartment"
	PropertyTypeCommercial   PropertyType = "Commercial"
	PropertyTypeCondo        PropertyType = "Condo"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeSingleFamily, PropertyTypeApartment, PropertyTypeCommercial, PropertyTypeCondo:
		return true
	}
	return false
}

func PropertyTypeValues() []PropertyType {
	return []PropertyType{PropertyTypeSingleFamily, PropertyTypeApartment, PropertyTypeCommercial, PropertyTypeCondo}
}

// LeaseStatus tracks the lifecycle of a lease
type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "Active"
	LeaseStatusExpired    LeaseStatus = "Expired"
	LeaseStatusTerminated LeaseStatus = "Terminated"
)

func (s LeaseStatus) Valid() bool {
	switch s {
	case LeaseStatusActive, LeaseStatusExpired, LeaseStatusTerminated:
		return true
	}
	return false
}

func LeaseStatusValues() []LeaseStatus {
	return []LeaseStatus{LeaseStatusActive, LeaseStatusExpired, LeaseStatusTerminated}
}

// RequestStatus tracks the lifecycle of a maintenance request
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "Open"
	RequestStatusInProgress RequestStatus = "In Progress"
	RequestStatusCompleted  RequestStatus = "Completed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusCompleted:
		return true
	}
	return false
}

func RequestStatusValues() []RequestStatus {
	return []RequestStatus{RequestStatusOpen, RequestStatusInProgress, RequestStatusCompleted}
}

// PaymentMethod identifies how a payment was made
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodCheck        PaymentMethod = "Check"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCash         PaymentMethod = "Cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodCheck, PaymentMethodBankTransfer, PaymentMethodCash:
		return true
	}
	return false
}

func PaymentMethodValues() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCreditCard, PaymentMethodCheck, PaymentMethodBankTransfer, PaymentMethodCash}
}

// EmployeeRole identifies an employee's job function
type EmployeeRole string

const (
	EmployeeRolePropertyManager  EmployeeRole = "Property Manager"
	EmployeeRoleMaintenanceStaff EmployeeRole = "Maintenance Staff"
	EmployeeRoleAccountant       EmployeeRole = "Accountant"
	EmployeeRoleLeasingAgent     EmployeeRole = "Leasing Agent"
)

func (r EmployeeRole) Valid() bool {
	switch r {
	case EmployeeRolePropertyManager, EmployeeRoleMaintenanceStaff, EmployeeRoleAccountant, EmployeeRoleLeasingAgent:
		return true
	}
	return false
}

func EmployeeRoleValues() []EmployeeRole {
	return []EmployeeRole{EmployeeRolePropertyManager, EmployeeRoleMaintenanceStaff, EmployeeRoleAccountant, EmployeeRoleLeasingAgent}
}
