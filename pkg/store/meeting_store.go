package store

import (
	"context"
	"sync"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
)

// Service is the remote persistence collaborator the store mediates for.
// Satisfied by *api.Client.
type Service interface {
	ListMeetings(ctx context.Context) ([]models.Meeting, error)
	GetMeeting(ctx context.Context, id int) (models.Meeting, error)
	CreateMeeting(ctx context.Context, draft models.MeetingDraft) (models.Meeting, error)
	UpdateMeeting(ctx context.Context, id int, draft models.MeetingDraft) (models.Meeting, error)
	DeleteMeeting(ctx context.Context, id int) error
}

// MeetingStore is the in-memory reflection of the server's meeting
// collection for the current session, plus transient per-row selection
// state. Deliberate asymmetry: delete removes from the cache immediately,
// while create and update leave the cached list stale until the next
// Refresh.
type MeetingStore struct {
	mu sync.RWMutex

	api Service

	// Cached list in server order; replaced wholesale on Refresh
	meetings []models.Meeting

	// Transient checked flags keyed by meeting id; never sent to the server
	selected map[int]bool
}

// NewMeetingStore creates an empty store backed by the given service
func NewMeetingStore(api Service) *MeetingStore {
	return &MeetingStore{
		api:      api,
		selected: make(map[int]bool),
	}
}

// Refresh fetches the full collection and replaces the local cache
// wholesale. Ordering is whatever the server returned; there is no
// client-side resort and no incremental merge.
func (ms *MeetingStore) Refresh(ctx context.Context) ([]models.Meeting, error) {
	meetings, err := ms.api.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	ms.mu.Lock()
	ms.meetings = meetings
	ms.mu.Unlock()

	return ms.Meetings(), nil
}

// Meetings returns a copy of the cached list
func (ms *MeetingStore) Meetings() []models.Meeting {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make([]models.Meeting, len(ms.meetings))
	copy(out, ms.meetings)
	return out
}

// Get fetches one record by id. The cached list is not touched: single
// fetches serve the detail and edit views directly.
func (ms *MeetingStore) Get(ctx context.Context, id int) (models.Meeting, error) {
	return ms.api.GetMeeting(ctx, id)
}

// Create validates the draft locally, then sends it. The cached list is not
// updated; it is considered stale until the next Refresh.
func (ms *MeetingStore) Create(ctx context.Context, draft models.MeetingDraft) (models.Meeting, error) {
	if err := draft.Validate(); err != nil {
		return models.Meeting{}, err
	}
	return ms.api.CreateMeeting(ctx, draft)
}

// Update validates the draft locally, then sends the full record. Like
// Create, the cached list stays stale until the next Refresh.
func (ms *MeetingStore) Update(ctx context.Context, id int, draft models.MeetingDraft) (models.Meeting, error) {
	if err := draft.Validate(); err != nil {
		return models.Meeting{}, err
	}
	return ms.api.UpdateMeeting(ctx, id, draft)
}

// Delete destroys the record remotely and, on success, removes it from the
// cached list immediately so the list shows one fewer row without a reload.
// Callers must confirm with the user before invoking.
func (ms *MeetingStore) Delete(ctx context.Context, id int) error {
	if err := ms.api.DeleteMeeting(ctx, id); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	for i, meeting := range ms.meetings {
		if meeting.ID == id {
			ms.meetings = append(ms.meetings[:i], ms.meetings[i+1:]...)
			break
		}
	}
	delete(ms.selected, id)
	return nil
}

// ToggleSelected flips the transient checked flag for one meeting id. No
// server state and no other row is touched.
func (ms *MeetingStore) ToggleSelected(id int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.selected[id] = !ms.selected[id]
}

// Selected reports the transient checked flag for a meeting id
func (ms *MeetingStore) Selected(id int) bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.selected[id]
}
