package entity

// Role is the account class that decides which operations a user may perform.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePharmacist   Role = "pharmacist"
	RoleLab          Role = "lab"
	RolePatient      Role = "patient"
)

// AllRoles lists every role in display order.
var AllRoles = []Role{
	RoleAdmin,
	RoleDoctor,
	RoleNurse,
	RoleReceptionist,
	RolePharmacist,
	RoleLab,
	RolePatient,
}

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
