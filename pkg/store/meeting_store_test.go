package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
)

// fakeService scripts the remote side of the store and counts calls so tests
// can assert which operations reached the network
type fakeService struct {
	meetings []models.Meeting

	listErr   error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeService) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Meeting, len(f.meetings))
	copy(out, f.meetings)
	return out, nil
}

func (f *fakeService) GetMeeting(ctx context.Context, id int) (models.Meeting, error) {
	for _, m := range f.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Meeting{}, errors.New("not found")
}

func (f *fakeService) CreateMeeting(ctx context.Context, draft models.MeetingDraft) (models.Meeting, error) {
	f.createCalls++
	record := draft.Record()
	record.ID = len(f.meetings) + 100
	f.meetings = append(f.meetings, record)
	return record, nil
}

func (f *fakeService) UpdateMeeting(ctx context.Context, id int, draft models.MeetingDraft) (models.Meeting, error) {
	f.updateCalls++
	record := draft.Record()
	record.ID = id
	for i, m := range f.meetings {
		if m.ID == id {
			f.meetings[i] = record
		}
	}
	return record, nil
}

func (f *fakeService) DeleteMeeting(ctx context.Context, id int) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, m := range f.meetings {
		if m.ID == id {
			f.meetings = append(f.meetings[:i], f.meetings[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func sampleMeetings() []models.Meeting {
	return []models.Meeting{
		{ID: 1, Agenda: "Standup", Status: models.StatusUpcoming, DateOfMeeting: "2026-09-01", StartTime: "09:00:00", MeetingURL: "https://meet.example.com/a"},
		{ID: 2, Agenda: "Review", Status: models.StatusInReview, DateOfMeeting: "2026-09-02", StartTime: "14:00:00", MeetingURL: "https://meet.example.com/b"},
		{ID: 3, Agenda: "Retro", Status: models.StatusPublished, DateOfMeeting: "2026-09-03", StartTime: "16:30:00", MeetingURL: "https://meet.example.com/c"},
	}
}

func sampleDraft() models.MeetingDraft {
	return models.MeetingDraft{
		Agenda:        "Planning",
		Status:        models.StatusUpcoming,
		DateOfMeeting: "2026-09-04",
		StartTime:     "10:00",
		MeetingURL:    "https://meet.example.com/d",
	}
}

func refreshed(t *testing.T, service *fakeService) *MeetingStore {
	t.Helper()

	store := NewMeetingStore(service)
	if _, err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	return store
}

func TestRefreshReplacesCacheWholesale(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	if got := len(store.Meetings()); got != 3 {
		t.Fatalf("cached %d meetings, want 3", got)
	}

	// The server dropped a record; the next refresh discards the old cache
	service.meetings = service.meetings[:1]
	meetings, err := store.Refresh(context.Background())
	if err != nil {
		t.Fatalf("second Refresh failed: %v", err)
	}
	if len(meetings) != 1 || meetings[0].ID != 1 {
		t.Errorf("cache after refresh = %+v, want only meeting 1", meetings)
	}
}

func TestRefreshErrorKeepsCache(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	service.listErr = errors.New("connection refused")
	if _, err := store.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error, got nil")
	}
	if got := len(store.Meetings()); got != 3 {
		t.Errorf("failed refresh must not clear the cache, have %d meetings", got)
	}
}

func TestCreateLeavesCacheStale(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	created, err := store.Create(context.Background(), sampleDraft())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("created meeting should carry the server-assigned id")
	}

	// The cached list does not grow until the next Refresh
	if got := len(store.Meetings()); got != 3 {
		t.Errorf("cache has %d meetings after create, want 3", got)
	}
	if _, err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if got := len(store.Meetings()); got != 4 {
		t.Errorf("cache has %d meetings after refresh, want 4", got)
	}
}

func TestCreateValidationBlocksNetwork(t *testing.T) {
	service := &fakeService{}
	store := NewMeetingStore(service)

	_, err := store.Create(context.Background(), models.MeetingDraft{})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if service.createCalls != 0 {
		t.Errorf("invalid draft reached the network %d times", service.createCalls)
	}
}

func TestUpdateValidationBlocksNetwork(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	_, err := store.Update(context.Background(), 1, models.MeetingDraft{Agenda: "only agenda"})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if service.updateCalls != 0 {
		t.Errorf("invalid draft reached the network %d times", service.updateCalls)
	}
}

func TestDeleteRemovesFromCacheImmediately(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)
	store.ToggleSelected(2)

	if err := store.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	meetings := store.Meetings()
	if len(meetings) != 2 {
		t.Fatalf("cache has %d meetings after delete, want 2", len(meetings))
	}
	for _, m := range meetings {
		if m.ID == 2 {
			t.Error("deleted meeting still cached")
		}
	}
	if store.Selected(2) {
		t.Error("delete should clear the row's selection flag")
	}
	if service.listCalls != 1 {
		t.Errorf("delete triggered %d list calls, want the initial 1 only", service.listCalls)
	}
}

func TestDeleteTwice(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	if err := store.Delete(context.Background(), 2); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	// The second delete fails remotely but must not disturb the cache
	if err := store.Delete(context.Background(), 2); err == nil {
		t.Fatal("second delete of the same id should report an error")
	}
	if got := len(store.Meetings()); got != 2 {
		t.Errorf("cache has %d meetings, want 2", got)
	}
}

func TestDeleteFailureKeepsCache(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	service.deleteErr = errors.New("not found")
	if err := store.Delete(context.Background(), 2); err == nil {
		t.Fatal("expected delete error, got nil")
	}
	if got := len(store.Meetings()); got != 3 {
		t.Errorf("failed delete must not touch the cache, have %d meetings", got)
	}
}

func TestToggleSelected(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	store.ToggleSelected(1)
	if !store.Selected(1) {
		t.Error("meeting 1 should be selected after toggle")
	}
	if store.Selected(2) || store.Selected(3) {
		t.Error("toggling one row must not touch other rows")
	}

	store.ToggleSelected(1)
	if store.Selected(1) {
		t.Error("second toggle should clear the selection")
	}

	// Selection is purely local state
	if service.listCalls != 1 || service.updateCalls != 0 {
		t.Error("selection must not generate network traffic")
	}
}

func TestMeetingsReturnsCopy(t *testing.T) {
	service := &fakeService{meetings: sampleMeetings()}
	store := refreshed(t, service)

	meetings := store.Meetings()
	meetings[0].Agenda = "mutated"

	if store.Meetings()[0].Agenda != "Standup" {
		t.Error("mutating the returned slice must not affect the cache")
	}
}
