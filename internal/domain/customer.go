package domain

// CustomerDetails is the contact form of the details step
type CustomerDetails struct {
	Name  string
	Phone string
	Email string
}

// Form field names, used as keys of field-level validation errors
const (
	FieldName  = "name"
	FieldPhone = "phone"
	FieldEmail = "email"
)
