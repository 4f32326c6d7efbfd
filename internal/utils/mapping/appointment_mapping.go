package mapping

import (
	"github.com/SscSPs/docorbit_backend/internal/core/domain"
	"github.com/SscSPs/docorbit_backend/internal/models"
)

// ToModelAppointment converts a domain Appointment to a model Appointment
func ToModelAppointment(d domain.Appointment) models.Appointment {
	return models.Appointment{
		AppointmentID:   d.AppointmentID,
		DoctorID:        d.DoctorID,
		PatientID:       d.PatientID,
		ClinicID:        d.ClinicID,
		AppointmentDate: ToDate(d.AppointmentDate),
		AppointmentTime: ToTimeOfDay(d.AppointmentTime),
		Status:          string(d.Status),
		Timestamps:      ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainAppointment converts a model Appointment to a domain Appointment
func ToDomainAppointment(m models.Appointment) domain.Appointment {
	return domain.Appointment{
		AppointmentID:   m.AppointmentID,
		DoctorID:        m.DoctorID,
		PatientID:       m.PatientID,
		ClinicID:        m.ClinicID,
		AppointmentDate: FromDate(m.AppointmentDate),
		AppointmentTime: FromTimeOfDay(m.AppointmentTime),
		Status:          domain.AppointmentStatus(m.Status),
		Timestamps:      ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainAppointmentDetails converts a joined appointment row to the domain projection
func ToDomainAppointmentDetails(m models.AppointmentDetails) domain.AppointmentDetails {
	return domain.AppointmentDetails{
		Appointment:    ToDomainAppointment(m.Appointment),
		DoctorName:     m.DoctorName,
		DoctorEmail:    FromText(m.DoctorEmail),
		Specialization: FromText(m.Specialization),
		ClinicName:     m.ClinicName,
		ClinicAddress:  FromText(m.ClinicAddress),
		ClinicCity:     FromText(m.ClinicCity),
		PatientName:    m.PatientName,
		PatientEmail:   m.PatientEmail,
	}
}

// ToDomainAppointmentDetailsSlice converts joined rows to domain projections
func ToDomainAppointmentDetailsSlice(ms []models.AppointmentDetails) []domain.AppointmentDetails {
	ds := make([]domain.AppointmentDetails, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAppointmentDetails(m)
	}
	return ds
}
