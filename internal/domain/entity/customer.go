package entity

// Customer cliente simplificado recibido por el gateway.
// LastName y Phone son opcionales: vacío significa ausente.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
