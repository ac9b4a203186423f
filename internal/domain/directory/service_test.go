package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type mockDoctorRepo struct {
	doctors map[uuid.UUID]*Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uuid.UUID]*Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	d.ID = uuid.New()
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	cp := *d
	return &cp, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return errors.New("no rows")
	}
	cp := *d
	m.doctors[d.ID] = &cp
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, specialization string, limit, offset int) ([]*Doctor, int, error) {
	var out []*Doctor
	for _, d := range m.doctors {
		if specialization != "" && d.Specialization != specialization {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func validDoctor() *Doctor {
	return &Doctor{
		Name:            "Dr. Meera Sharma",
		Specialization:  "Panchakarma",
		Location:        "Pune",
		Email:           "meera@ayurcare.local",
		Phone:           "+91 98765 43210",
		Bio:             "Panchakarma specialist with a focus on chronic conditions.",
		ExperienceYears: 12,
		Languages:       []string{"English", "Hindi", "Marathi"},
		ConsultationFee: 800,
	}
}

func TestCreateDoctor(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := NewService(repo)

	d := validDoctor()
	if err := svc.CreateDoctor(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected assigned id")
	}

	got, err := svc.GetDoctor(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != d.Name || got.Specialization != d.Specialization {
		t.Errorf("stored doctor mismatch: %+v", got)
	}
}

func TestCreateDoctorValidation(t *testing.T) {
	svc := NewService(newMockDoctorRepo())

	tests := []struct {
		name   string
		mutate func(*Doctor)
	}{
		{"missing name", func(d *Doctor) { d.Name = "" }},
		{"missing specialization", func(d *Doctor) { d.Specialization = "" }},
		{"missing email", func(d *Doctor) { d.Email = "" }},
		{"negative experience", func(d *Doctor) { d.ExperienceYears = -1 }},
		{"negative fee", func(d *Doctor) { d.ConsultationFee = -50 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDoctor()
			tc.mutate(d)
			if err := svc.CreateDoctor(context.Background(), d); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUpdateDoctorRequiresID(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	d := validDoctor()
	if err := svc.UpdateDoctor(context.Background(), d); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestListDoctorsBySpecialization(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := NewService(repo)

	a := validDoctor()
	b := validDoctor()
	b.Name = "Dr. Ravi Kumar"
	b.Specialization = "Kayachikitsa"
	for _, d := range []*Doctor{a, b} {
		if err := svc.CreateDoctor(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, total, err := svc.ListDoctors(context.Background(), "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Fatalf("expected 2 doctors, got %d (total %d)", len(all), total)
	}

	filtered, total, err := svc.ListDoctors(context.Background(), "Panchakarma", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(filtered) != 1 {
		t.Fatalf("expected 1 doctor, got %d (total %d)", len(filtered), total)
	}
	if filtered[0].Specialization != "Panchakarma" {
		t.Errorf("got specialization %s", filtered[0].Specialization)
	}

	// Whitespace-only filter means no filter.
	all2, _, err := svc.ListDoctors(context.Background(), "   ", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all2) != 2 {
		t.Errorf("expected 2 doctors for blank filter, got %d", len(all2))
	}
}

func TestDeleteDoctor(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := NewService(repo)

	d := validDoctor()
	if err := svc.CreateDoctor(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteDoctor(context.Background(), d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetDoctor(context.Background(), d.ID); err == nil {
		t.Error("expected error after delete")
	}
}
