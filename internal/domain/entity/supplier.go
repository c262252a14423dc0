package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string // único
	Phone         string
	Address       string
	CreatedAt     time.Time
}
