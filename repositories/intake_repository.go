package repositories

import (
	"context"
	"sync"

	"kgs-gunshop/models"
)

// AppointmentRepository stores booking requests in memory.
type AppointmentRepository struct {
	mu           sync.Mutex
	appointments []models.Appointment
	nextID       int
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{nextID: 1}
}

func (r *AppointmentRepository) Create(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, a)
	return a, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out, nil
}

// ContactRepository stores contact-form messages in memory.
type ContactRepository struct {
	mu       sync.Mutex
	messages []models.ContactMessage
	nextID   int
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{nextID: 1}
}

func (r *ContactRepository) Create(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}
