package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	r := NewRenderer([]int{5, 10, 25, 50})

	tests := []struct {
		clicks int64
		bucket int
	}{
		{0, 0},
		{4, 0},
		{5, 5},
		{9, 5},
		{10, 10},
		{26, 25},
		{200, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bucket, r.BucketFor(tt.clicks), "clicks=%d", tt.clicks)
	}
}

func TestBucketForNoBuckets(t *testing.T) {
	r := NewRenderer(nil)
	assert.Zero(t, r.BucketFor(1000))
}

func TestDMBodyIncludesDistanceAndNote(t *testing.T) {
	r := NewRenderer(nil)
	a := primaryAssignment()
	distance := 2.345

	body := r.DMBody(a, &distance, "Also posted by other agencies.")

	assert.Contains(t, body, "Sec 3 E-Math @ Tampines")
	assert.Contains(t, body, "Code: TT-4821")
	assert.Contains(t, body, "$40-50/h")
	assert.Contains(t, body, "2.3 km from you")
	assert.Contains(t, body, "Also posted by other agencies.")
}

func TestBroadcastBodyOmitsEmptyFields(t *testing.T) {
	r := NewRenderer(nil)
	a := primaryAssignment()
	a.AssignmentCode = nil
	a.RateRawText = nil

	body := r.BroadcastBody(a, "")

	assert.Contains(t, body, "Sec 3 E-Math @ Tampines")
	assert.NotContains(t, body, "Code:")
	assert.NotContains(t, body, "💰")
	assert.NotContains(t, body, "ℹ️")
}

func TestWithClickNote(t *testing.T) {
	r := NewRenderer([]int{5, 10})

	assert.Equal(t, "body", r.WithClickNote("body", 0))
	assert.Equal(t, "body\n\n🔥 10+ tutors interested", r.WithClickNote("body", 10))
}
