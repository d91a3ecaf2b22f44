package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB connects to a migrated database named by TEST_DATABASE_DSN.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, roleID int, name string) uuid.UUID {
	t.Helper()
	user := &entity.User{
		RoleID:   roleID,
		Email:    fmt.Sprintf("%s-%s@test.com", name, uuid.New().String()[:8]),
		Password: "x",
		FullName: name,
	}
	if err := db.Omit("Role").Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { db.Delete(&entity.User{}, "id = ?", user.ID) })

	switch roleID {
	case entity.RoleIDDoctor:
		if err := db.Omit("User").Create(&entity.DoctorProfile{UserID: user.ID, Specialization: "General"}).Error; err != nil {
			t.Fatalf("create doctor profile: %v", err)
		}
	case entity.RoleIDPatient:
		if err := db.Omit("User").Create(&entity.PatientProfile{UserID: user.ID}).Error; err != nil {
			t.Fatalf("create patient profile: %v", err)
		}
	}
	return user.ID
}

func TestAppointmentRepositorySlotChecks(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewAppointmentRepository(db)

	doctorID := createUser(t, db, entity.RoleIDDoctor, "doctor")
	patientID := createUser(t, db, entity.RoleIDPatient, "patient")
	otherPatientID := createUser(t, db, entity.RoleIDPatient, "other")
	t.Cleanup(func() { db.Where("doctor_id = ?", doctorID).Delete(&entity.Appointment{}) })

	date := time.Date(2031, 3, 14, 0, 0, 0, 0, time.UTC)
	appt := &entity.Appointment{DoctorID: doctorID, PatientID: patientID, AppointmentDate: date, AppointmentTime: "09:00"}
	if err := repo.Create(ctx, appt); err != nil {
		t.Fatalf("create: %v", err)
	}
	if appt.ID == 0 {
		t.Fatal("appointment id not assigned")
	}

	busy, err := repo.ExistsForDoctor(ctx, doctorID, date, "09:00")
	if err != nil || !busy {
		t.Errorf("doctor should be busy at 09:00: busy=%v err=%v", busy, err)
	}
	busy, err = repo.ExistsForPatient(ctx, patientID, date, "09:00")
	if err != nil || !busy {
		t.Errorf("patient should be busy at 09:00: busy=%v err=%v", busy, err)
	}
	busy, err = repo.ExistsForDoctor(ctx, doctorID, date, "10:00")
	if err != nil || busy {
		t.Errorf("doctor should be free at 10:00: busy=%v err=%v", busy, err)
	}

	dup := &entity.Appointment{DoctorID: doctorID, PatientID: otherPatientID, AppointmentDate: date, AppointmentTime: "09:00"}
	if err := repo.Create(ctx, dup); !errors.Is(err, domainRepo.ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}

	list, err := repo.FindByPatientID(ctx, patientID)
	if err != nil {
		t.Fatalf("find by patient: %v", err)
	}
	if len(list) != 1 || list[0].TimeString() != "09:00" || list[0].DateString() != "2031-03-14" {
		t.Errorf("unexpected appointments: %+v", list)
	}
}

func TestDoctorDirectoryCountsAppointments(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	appointments := NewAppointmentRepository(db)
	doctors := NewDoctorProfileRepository(db)

	busyDoctor := createUser(t, db, entity.RoleIDDoctor, "busy")
	patientID := createUser(t, db, entity.RoleIDPatient, "patient")
	t.Cleanup(func() { db.Where("doctor_id = ?", busyDoctor).Delete(&entity.Appointment{}) })

	date := time.Date(2031, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, slot := range []string{"09:00", "10:00"} {
		a := &entity.Appointment{DoctorID: busyDoctor, PatientID: patientID, AppointmentDate: date, AppointmentTime: slot}
		if err := appointments.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	loads, err := doctors.ListWithAppointmentCount(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var found bool
	for i, l := range loads {
		if i > 0 && loads[i-1].AppointmentCount > l.AppointmentCount {
			t.Errorf("directory not ordered by count at %d", i)
		}
		if l.DoctorID == busyDoctor {
			found = true
			if l.AppointmentCount != 2 || l.FullName != "busy" {
				t.Errorf("unexpected load: %+v", l)
			}
		}
	}
	if !found {
		t.Fatal("doctor missing from directory")
	}
}
