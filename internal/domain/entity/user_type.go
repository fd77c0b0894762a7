package entity

// User type discriminator values stored in doctors.user_type_id
const (
	UserTypeIDDoctor = 1
)

const (
	UserTypeDoctor = "doctor"
)
