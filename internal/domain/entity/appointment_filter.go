package entity

// AppointmentFilter narrows appointment listings. Zero values are ignored.
type AppointmentFilter struct {
	PatientID uint
	DoctorID  uint
	Status    AppointmentStatus
}
