package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qwicdev/backorder-analyzer/internal/model"
)

func filterFixture() []model.Row {
	return []model.Row{
		{OrderNo: "SO-1", ItemNo: "A", Location: "DSV", Reserved: "No", Status: "Backorder"},
		{OrderNo: "SO-1", ItemNo: "B", Location: "AMS", Reserved: "No", Status: "Backorder"},
		{OrderNo: "SO-2", ItemNo: "C", Location: "DSV", Reserved: "Yes", Status: "Backorder"},
		{OrderNo: "SO-3", ItemNo: "D", Location: "DSV", Reserved: "No", Status: "Open"},
	}
}

func TestFilterRows(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		wantIDs  []string
	}{
		{
			name:     "no criteria keeps everything",
			criteria: FilterCriteria{},
			wantIDs:  []string{"A", "B", "C", "D"},
		},
		{
			name:     "location only",
			criteria: FilterCriteria{Location: "DSV"},
			wantIDs:  []string{"A", "C", "D"},
		},
		{
			name:     "all three criteria",
			criteria: FilterCriteria{Location: "DSV", Reserved: "No", Status: "Backorder"},
			wantIDs:  []string{"A"},
		},
		{
			name:     "no matches is a valid result",
			criteria: FilterCriteria{Location: "ZZZ"},
			wantIDs:  []string{},
		},
		{
			name:     "blank criterion is no constraint, not match-blank",
			criteria: FilterCriteria{Reserved: "Yes"},
			wantIDs:  []string{"C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRows(filterFixture(), tt.criteria)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ItemNo)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterRows_Commutative(t *testing.T) {
	rows := filterFixture()
	criteria := FilterCriteria{Location: "DSV", Reserved: "No", Status: "Backorder"}

	combined := FilterRows(rows, criteria)

	stepwise := FilterRows(rows, FilterCriteria{Status: "Backorder"})
	stepwise = FilterRows(stepwise, FilterCriteria{Location: "DSV"})
	stepwise = FilterRows(stepwise, FilterCriteria{Reserved: "No"})

	assert.Equal(t, combined, stepwise)
}
