package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/services"
)

// --- Fakes ---

type dmCall struct {
	tutorID string
	chatID  string
	content string
	key     string
}

type bcCall struct {
	channel    string
	content    string
	editTarget string
}

type fakeTransport struct {
	dms        []dmCall
	broadcasts []bcCall
	failDM     bool
	failBC     bool
}

func (t *fakeTransport) SendDM(_ context.Context, tutorID, chatID, content, key string) (string, error) {
	if t.failDM {
		return "", errors.New("gateway unavailable")
	}
	t.dms = append(t.dms, dmCall{tutorID, chatID, content, key})
	return "dm-1", nil
}

func (t *fakeTransport) Broadcast(_ context.Context, channel, content, editTarget string) (string, error) {
	if t.failBC {
		return "", errors.New("gateway unavailable")
	}
	t.broadcasts = append(t.broadcasts, bcCall{channel, content, editTarget})
	return "bc-1", nil
}

type fakeTutors struct {
	profiles []*ent.TutorProfile
}

func (f *fakeTutors) ListActive(context.Context) ([]*ent.TutorProfile, error) {
	return f.profiles, nil
}

type ratingCall struct {
	tutorID      string
	assignmentID string
	score        float64
}

type fakeRatings struct {
	threshold *float64
	recorded  []ratingCall
}

func (f *fakeRatings) CalculateTutorRatingThreshold(context.Context, string, float64, int64) (*float64, error) {
	return f.threshold, nil
}

func (f *fakeRatings) RecordRating(_ context.Context, tutorID, assignmentID string, score float64, _ *float64) error {
	f.recorded = append(f.recorded, ratingCall{tutorID, assignmentID, score})
	return nil
}

type fakeLedger struct {
	records map[string]deliveryrecord.Status // tutorID:assignmentID → status
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{records: make(map[string]deliveryrecord.Status)}
}

func (f *fakeLedger) Record(_ context.Context, tutorID, assignmentID string, status deliveryrecord.Status, _ string) (bool, error) {
	key := tutorID + ":" + assignmentID
	if _, ok := f.records[key]; ok {
		return false, nil
	}
	f.records[key] = status
	return true, nil
}

func (f *fakeLedger) MarkSent(_ context.Context, tutorID, assignmentID, _ string) error {
	f.records[tutorID+":"+assignmentID] = deliveryrecord.StatusSent
	return nil
}

type fakeStore struct {
	records  map[string]*ent.BroadcastRecord
	payloads []services.BroadcastPayload
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*ent.BroadcastRecord)}
}

func (f *fakeStore) RecordBroadcast(_ context.Context, externalID string, payload services.BroadcastPayload) error {
	f.payloads = append(f.payloads, payload)
	rec := &ent.BroadcastRecord{
		ExternalID:  externalID,
		Content:     payload.Content,
		ClickBucket: payload.ClickBucket,
	}
	if payload.ChatID != "" {
		rec.ChatID = &payload.ChatID
	}
	if payload.TransportMessageID != "" {
		rec.TransportMessageID = &payload.TransportMessageID
	}
	f.records[externalID] = rec
	return nil
}

func (f *fakeStore) GetBroadcast(_ context.Context, externalID string) (*ent.BroadcastRecord, error) {
	rec, ok := f.records[externalID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return rec, nil
}

// --- Fixtures ---

func testDeliveryConfig() *config.DeliveryConfig {
	cfg := config.DefaultDeliveryConfig()
	cfg.BroadcastChannel = "assignments"
	return cfg
}

func primaryAssignment() *ent.Assignment {
	lat, lon := 1.3521, 103.8198
	code := "TT-4821"
	rate := "$40-50/h"
	return &ent.Assignment{
		ID:                  "a1",
		ExternalID:          "TT-4821",
		AgencyID:            "agencyA",
		AssignmentCode:      &code,
		AcademicDisplayText: "Sec 3 E-Math @ Tampines",
		RateRawText:         &rate,
		PostalLat:           &lat,
		PostalLon:           &lon,
		SubjectsCanonical:   []string{"MATH.SEC_EMATH"},
		SubjectsGeneral:     []string{"MATH"},
		SignalsSubjects:     []string{"Math"},
		SignalsLevels:       []string{"Secondary"},
		IsPrimaryInGroup:    true,
	}
}

func nearbyTutor() *ent.TutorProfile {
	lat, lon := 1.3530, 103.8200
	return &ent.TutorProfile{
		ID:       "p1",
		TutorID:  "t1",
		Subjects: []string{"MATH"},
		Levels:   []string{"Secondary"},
		Lat:      &lat,
		Lon:      &lon,
		DmChatID: "chat-1",
		Active:   true,
	}
}

type fanoutFixture struct {
	fanout    *Fanout
	transport *fakeTransport
	ratings   *fakeRatings
	ledger    *fakeLedger
	store     *fakeStore
}

func newFanoutFixture(cfg *config.DeliveryConfig, profiles ...*ent.TutorProfile) *fanoutFixture {
	transport := &fakeTransport{}
	ratings := &fakeRatings{}
	ledger := newFakeLedger()
	store := newFakeStore()
	fanout := NewFanout(cfg, transport, &fakeTutors{profiles: profiles}, ratings, ledger, store, nil)
	return &fanoutFixture{fanout, transport, ratings, ledger, store}
}

// --- Tests ---

func TestDeliverBroadcastAndDM(t *testing.T) {
	fx := newFanoutFixture(testDeliveryConfig(), nearbyTutor())

	err := fx.fanout.Deliver(context.Background(), primaryAssignment())
	require.NoError(t, err)

	require.Len(t, fx.transport.broadcasts, 1)
	assert.Equal(t, "assignments", fx.transport.broadcasts[0].channel)
	assert.Contains(t, fx.transport.broadcasts[0].content, "Sec 3 E-Math @ Tampines")
	assert.Empty(t, fx.transport.broadcasts[0].editTarget)

	require.Len(t, fx.transport.dms, 1)
	assert.Equal(t, "t1", fx.transport.dms[0].tutorID)
	assert.Equal(t, "chat-1", fx.transport.dms[0].chatID)
	assert.Equal(t, "t1:a1", fx.transport.dms[0].key)
	assert.Contains(t, fx.transport.dms[0].content, "km from you")

	assert.Equal(t, deliveryrecord.StatusSent, fx.ledger.records["t1:a1"])
	require.Len(t, fx.ratings.recorded, 1)
	assert.Equal(t, "t1", fx.ratings.recorded[0].tutorID)
	assert.GreaterOrEqual(t, fx.ratings.recorded[0].score, 50.0)

	// Broadcast state recorded for the edit-on-click loop.
	require.Len(t, fx.store.payloads, 1)
	assert.Equal(t, "bc-1", fx.store.payloads[0].TransportMessageID)
	assert.Zero(t, fx.store.payloads[0].ClickBucket)
}

func TestDeliverSkipsNonPrimary(t *testing.T) {
	fx := newFanoutFixture(testDeliveryConfig(), nearbyTutor())

	a := primaryAssignment()
	groupID := "g1"
	a.IsPrimaryInGroup = false
	a.DuplicateGroupID = &groupID

	require.NoError(t, fx.fanout.Deliver(context.Background(), a))

	assert.Empty(t, fx.transport.broadcasts)
	assert.Empty(t, fx.transport.dms)
}

func TestDeliverPrimaryWithNoteAppendsNote(t *testing.T) {
	cfg := testDeliveryConfig()
	cfg.BroadcastDuplicateMode = config.DuplicateModePrimaryWithNote
	fx := newFanoutFixture(cfg)

	a := primaryAssignment()
	groupID := "g1"
	a.DuplicateGroupID = &groupID

	require.NoError(t, fx.fanout.Deliver(context.Background(), a))

	require.Len(t, fx.transport.broadcasts, 1)
	assert.Contains(t, fx.transport.broadcasts[0].content, duplicateNote)
}

func TestDeliverModeAllBroadcastsNonPrimary(t *testing.T) {
	cfg := testDeliveryConfig()
	cfg.BroadcastDuplicateMode = config.DuplicateModeAll
	fx := newFanoutFixture(cfg)

	a := primaryAssignment()
	groupID := "g1"
	a.IsPrimaryInGroup = false
	a.DuplicateGroupID = &groupID

	require.NoError(t, fx.fanout.Deliver(context.Background(), a))

	assert.Len(t, fx.transport.broadcasts, 1)
}

func TestDeliverDedupSkipsDeliveredPair(t *testing.T) {
	fx := newFanoutFixture(testDeliveryConfig(), nearbyTutor())
	fx.ledger.records["t1:a1"] = deliveryrecord.StatusSent

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	assert.Empty(t, fx.transport.dms)
}

func TestDeliverSubjectGate(t *testing.T) {
	profile := nearbyTutor()
	profile.Subjects = []string{"CHEMISTRY"}
	fx := newFanoutFixture(testDeliveryConfig(), profile)

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	assert.Empty(t, fx.transport.dms)
}

func TestDeliverRadiusGate(t *testing.T) {
	profile := nearbyTutor()
	farLat, farLon := 1.4491, 103.7368 // Woodlands, ~15 km out
	profile.Lat = &farLat
	profile.Lon = &farLon
	maxKm := 5.0
	profile.MaxDistanceKm = &maxKm
	fx := newFanoutFixture(testDeliveryConfig(), profile)

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	assert.Empty(t, fx.transport.dms)
}

func TestDeliverNoCoordinatesStillMatches(t *testing.T) {
	profile := nearbyTutor()
	profile.Lat = nil
	profile.Lon = nil
	fx := newFanoutFixture(testDeliveryConfig(), profile)

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	require.Len(t, fx.transport.dms, 1)
	assert.NotContains(t, fx.transport.dms[0].content, "km from you")
}

func TestDeliverAdaptiveThresholdGate(t *testing.T) {
	fx := newFanoutFixture(testDeliveryConfig(), nearbyTutor())
	threshold := 99.5
	fx.ratings.threshold = &threshold

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	assert.Empty(t, fx.transport.dms)
}

func TestDeliverDMFailureLeavesFailedRecord(t *testing.T) {
	fx := newFanoutFixture(testDeliveryConfig(), nearbyTutor())
	fx.transport.failDM = true

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	// The claim stays on record so reprocessing does not retry the pair.
	assert.Equal(t, deliveryrecord.StatusFailed, fx.ledger.records["t1:a1"])
	assert.Empty(t, fx.ratings.recorded)
}

func TestDeliverDMRateLimitThrottles(t *testing.T) {
	cfg := testDeliveryConfig()
	cfg.DMRatePerMinute = 0.001 // no refill within the test
	cfg.DMBurst = 1
	fx := newFanoutFixture(cfg, nearbyTutor())

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	second := primaryAssignment()
	second.ID = "a2"
	second.ExternalID = "TT-4822"
	require.NoError(t, fx.fanout.Deliver(context.Background(), second))

	assert.Len(t, fx.transport.dms, 1)
	assert.Equal(t, deliveryrecord.StatusSent, fx.ledger.records["t1:a1"])
	assert.Equal(t, deliveryrecord.StatusThrottled, fx.ledger.records["t1:a2"])
}

func TestDeliverDisabledDoesNothing(t *testing.T) {
	cfg := testDeliveryConfig()
	cfg.Enabled = false
	fx := newFanoutFixture(cfg, nearbyTutor())

	require.NoError(t, fx.fanout.Deliver(context.Background(), primaryAssignment()))

	assert.Empty(t, fx.transport.broadcasts)
	assert.Empty(t, fx.transport.dms)
}

func TestOverlapRatio(t *testing.T) {
	ratio, ok := overlapRatio([]string{"MATH", "PHYSICS"}, []string{"MATH"})
	assert.True(t, ok)
	assert.InDelta(t, 0.5, ratio, 1e-9)

	_, ok = overlapRatio([]string{"CHEMISTRY"}, []string{"MATH"})
	assert.False(t, ok)

	ratio, ok = overlapRatio(nil, []string{"MATH"})
	assert.True(t, ok)
	assert.InDelta(t, 0.5, ratio, 1e-9)
}
