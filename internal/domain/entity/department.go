package entity

// Departamentos operativos del establecimiento. Cada almacén, comanda,
// cuenta de bar y sesión de caja pertenece a exactamente uno.
const (
	DeptHotel      = "hotel"
	DeptRestaurant = "restaurant"
	DeptPub        = "pub"
	DeptSpa        = "spa"
)

// ValidDepartment indica si el identificador corresponde a un departamento conocido.
func ValidDepartment(d string) bool {
	switch d {
	case DeptHotel, DeptRestaurant, DeptPub, DeptSpa:
		return true
	}
	return false
}
