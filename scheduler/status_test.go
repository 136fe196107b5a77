package scheduler

import (
	"strings"
	"testing"

	"github.com/glowbook/scheduler/models"
)

func seedAppointment(t *testing.T, repo *fakeRepo, date, at string, status models.AppointmentStatus) string {
	t.Helper()
	a := &models.Appointment{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane.doe@example.com",
		ServiceID:     serviceCut,
		StaffID:       staffAva,
		Date:          date,
		Time:          at,
		DurationMinutes: 60,
		Status:        status,
	}
	if err := repo.Create(a); err != nil {
		t.Fatal(err)
	}
	return a.ID
}

func TestUpdateStatus_TransitionTable(t *testing.T) {
	statuses := []models.AppointmentStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusCompleted,
		models.StatusNoShow, models.StatusCancelled,
	}
	legal := map[models.AppointmentStatus][]models.AppointmentStatus{
		models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusNoShow},
		models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted, models.StatusNoShow},
	}
	isLegal := func(from, to models.AppointmentStatus) bool {
		for _, allowed := range legal[from] {
			if allowed == to {
				return true
			}
		}
		return false
	}

	engine, _, repo := newTestEngine()
	for _, from := range statuses {
		for _, to := range statuses {
			// Past appointment, so the "already started" guard is satisfied
			// and only the table decides.
			id := seedAppointment(t, repo, pastDate, "10:00", from)
			_, err := engine.UpdateStatus(id, to, nil)
			if isLegal(from, to) {
				if err != nil {
					t.Errorf("%s -> %s should be legal, got %v", from, to, err)
				}
				continue
			}
			if ErrorKind(err) != KindState {
				t.Errorf("%s -> %s should fail with a state error, got %v", from, to, err)
				continue
			}
			// The error names both states.
			if !strings.Contains(err.Error(), string(from)) || !strings.Contains(err.Error(), string(to)) {
				t.Errorf("error should name both states: %v", err)
			}
		}
	}
}

func TestUpdateStatus_TimeGuard(t *testing.T) {
	engine, _, repo := newTestEngine()

	// A future appointment may only be cancelled.
	for _, to := range []models.AppointmentStatus{
		models.StatusConfirmed, models.StatusCompleted, models.StatusNoShow,
	} {
		from := models.StatusPending
		if to == models.StatusCompleted {
			from = models.StatusConfirmed
		}
		id := seedAppointment(t, repo, testDate, "10:00", from)
		if _, err := engine.UpdateStatus(id, to, nil); ErrorKind(err) != KindState {
			t.Errorf("marking a future appointment %s should hit the time guard, got %v", to, err)
		}
	}
	id := seedAppointment(t, repo, testDate, "10:00", models.StatusPending)
	if _, err := engine.UpdateStatus(id, models.StatusCancelled, nil); err != nil {
		t.Errorf("cancelling a future appointment should work, got %v", err)
	}

	// Once the start has passed the same transitions go through.
	id = seedAppointment(t, repo, pastDate, "10:00", models.StatusPending)
	updated, err := engine.UpdateStatus(id, models.StatusConfirmed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Errorf("expected confirmed, got %s", updated.Status)
	}
}

func TestUpdateStatus_TimeGuardUsesCallerOffset(t *testing.T) {
	engine, _, repo := newTestEngine()

	// Earlier today on the server clock (noon UTC): 11:00 has passed for
	// UTC but not for a caller two hours west.
	id := seedAppointment(t, repo, "2026-03-02", "11:00", models.StatusPending)
	west := -120
	if _, err := engine.UpdateStatus(id, models.StatusNoShow, &west); ErrorKind(err) != KindState {
		t.Errorf("10:00 wall clock caller should still be before the start, got %v", err)
	}
	if _, err := engine.UpdateStatus(id, models.StatusNoShow, nil); err != nil {
		t.Errorf("default offset caller is past the start, got %v", err)
	}
}

func TestUpdateStatus_UnknownInputs(t *testing.T) {
	engine, _, repo := newTestEngine()

	if _, err := engine.UpdateStatus("missing-id", models.StatusConfirmed, nil); ErrorKind(err) != KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
	id := seedAppointment(t, repo, pastDate, "10:00", models.StatusPending)
	if _, err := engine.UpdateStatus(id, "archived", nil); ErrorKind(err) != KindValidation {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	engine, _, repo := newTestEngine()

	// Upcoming appointment cancels fine.
	id := seedAppointment(t, repo, testDate, "10:00", models.StatusConfirmed)
	cancelled, err := engine.Cancel(id)
	if err != nil {
		t.Fatal(err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("expected cancelled, got %s", cancelled.Status)
	}

	// Cancelling twice hits the terminal state.
	if _, err := engine.Cancel(id); ErrorKind(err) != KindState {
		t.Errorf("expected state error on a cancelled appointment, got %v", err)
	}

	// A past appointment is history and cannot be cancelled.
	id = seedAppointment(t, repo, pastDate, "10:00", models.StatusPending)
	if _, err := engine.Cancel(id); ErrorKind(err) != KindState {
		t.Errorf("expected state error for a past appointment, got %v", err)
	}

	if _, err := engine.Cancel("missing-id"); ErrorKind(err) != KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}
