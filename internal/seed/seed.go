package seed

import (
	"context"
	"fmt"

	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var specialties = []string{
	"Cardiology",
	"Dermatology",
	"Neurology",
	"General Practice",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
}

type Seeder struct {
	db              *gorm.DB
	log             *logrus.Logger
	faker           *gofakeit.Faker
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewSeeder(
	db *gorm.DB,
	log *logrus.Logger,
	faker *gofakeit.Faker,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) *Seeder {
	return &Seeder{
		db:              db,
		log:             log,
		faker:           faker,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Run inserts the demo records plus extra generated patients and doctors.
// It does nothing when any doctor already exists.
func (s *Seeder) Run(ctx context.Context, extra int) error {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := s.doctorRepo.FindAll(ctx, tx)
	if err != nil {
		return fmt.Errorf("check existing doctors: %w", err)
	}
	if len(existing) > 0 {
		s.log.Info("Database already seeded, skipping")
		return nil
	}

	doctors := append(demoDoctors(), s.fakeDoctors(extra)...)
	for i := range doctors {
		if err := s.doctorRepo.Create(ctx, tx, &doctors[i]); err != nil {
			return fmt.Errorf("create doctor %q: %w", doctors[i].Name, err)
		}
	}

	patients := append(demoPatients(), s.fakePatients(extra)...)
	for i := range patients {
		if err := s.patientRepo.Create(ctx, tx, &patients[i]); err != nil {
			return fmt.Errorf("create patient %q: %w", patients[i].Name, err)
		}
	}

	appointments := demoAppointments(patients[0].ID, patients[1].ID, doctors[0].ID, doctors[1].ID)
	for i := range appointments {
		if err := s.appointmentRepo.Create(ctx, tx, &appointments[i]); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"doctors":      len(doctors),
		"patients":     len(patients),
		"appointments": len(appointments),
	}).Info("Seeding completed")
	return nil
}

func demoDoctors() []entity.Doctor {
	return []entity.Doctor{
		{Name: "Dr. Smith", Specialization: "Cardiology"},
		{Name: "Dr. Lee", Specialization: "Dermatology"},
		{Name: "Dr. Johnson", Specialization: "Neurology"},
	}
}

func demoPatients() []entity.Patient {
	alice, bob := 30, 45
	return []entity.Patient{
		{Name: "Alice", Age: &alice, Contact: "alice@example.com"},
		{Name: "Bob", Age: &bob, Contact: "bob@example.com"},
	}
}

func demoAppointments(alice, bob, smith, lee uint) []entity.Appointment {
	return []entity.Appointment{
		{
			Date:      "2025-10-01",
			Time:      "10:00",
			Status:    entity.AppointmentStatusPending,
			Reason:    "Heart checkup",
			PatientID: alice,
			DoctorID:  &smith,
		},
		{
			Date:      "2025-10-02",
			Time:      "14:00",
			Status:    entity.AppointmentStatusConfirmed,
			Reason:    "Skin consultation",
			PatientID: bob,
			DoctorID:  &lee,
		},
	}
}

func (s *Seeder) fakeDoctors(n int) []entity.Doctor {
	doctors := make([]entity.Doctor, 0, n)
	for range n {
		doctors = append(doctors, entity.Doctor{
			Name:           "Dr. " + s.faker.LastName(),
			Specialization: specialties[s.faker.Number(0, len(specialties)-1)],
		})
	}
	return doctors
}

func (s *Seeder) fakePatients(n int) []entity.Patient {
	patients := make([]entity.Patient, 0, n)
	for range n {
		age := s.faker.Number(1, 95)
		patients = append(patients, entity.Patient{
			Name:    s.faker.Name(),
			Age:     &age,
			Contact: s.faker.Email(),
		})
	}
	return patients
}
