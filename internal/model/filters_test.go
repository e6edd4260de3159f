package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSet_Toggle_Sequence(t *testing.T) {
	f := DefaultFilters()

	f = f.Toggle(StatusPaid)
	assert.Equal(t, FilterSet{StatusPaid}, f)

	f = f.Toggle(StatusPending)
	assert.Equal(t, FilterSet{StatusPaid, StatusPending}, f)

	f = f.Toggle(StatusPaid)
	assert.Equal(t, FilterSet{StatusPending}, f)

	f = f.Toggle(StatusPending)
	assert.Equal(t, DefaultFilters(), f)
}

func TestFilterSet_Toggle_AllIsIdempotent(t *testing.T) {
	tests := []struct {
		name string
		from FilterSet
	}{
		{name: "from default", from: DefaultFilters()},
		{name: "from single status", from: FilterSet{StatusDraft}},
		{name: "from multiple statuses", from: FilterSet{StatusPaid, StatusPending, StatusDraft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.from
			for i := 0; i < 3; i++ {
				f = f.Toggle(FilterAll)
				assert.Equal(t, DefaultFilters(), f)
			}
		})
	}
}

func TestFilterSet_Toggle_SelectingStatusRemovesAll(t *testing.T) {
	f := FilterSet{FilterAll}.Toggle(StatusDraft)
	assert.Equal(t, FilterSet{StatusDraft}, f)
	assert.False(t, f.Contains(FilterAll))
}

func TestFilterSet_Toggle_NeverEmpty(t *testing.T) {
	f := FilterSet{StatusPaid}.Toggle(StatusPaid)
	assert.Equal(t, DefaultFilters(), f)
}

func TestFilterSet_Matches(t *testing.T) {
	assert.True(t, DefaultFilters().Matches(StatusDraft))
	assert.True(t, FilterSet{StatusPaid}.Matches(StatusPaid))
	assert.False(t, FilterSet{StatusPaid}.Matches(StatusPending))
	assert.True(t, FilterSet{StatusPaid, StatusPending}.Matches(StatusPending))
}
