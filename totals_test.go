package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "13.0", FormatHours(13))
	assert.Equal(t, "0.0", FormatHours(0))
	assert.Equal(t, "10.5", FormatHours(10.5))
	assert.Equal(t, "0.5", FormatHours(0.5))
	assert.Equal(t, "24.0", FormatHours(24))
}

func TestBuildTotals_PrintsSuppliedValues(t *testing.T) {
	layout := NewGridLayout(DefaultGridConfig())
	totals := LogSheetTotals{OffDuty: 13, Sleeper: 0, Driving: 10.5, OnDuty: 0.5}

	labels := BuildTotals(layout, totals)

	require.Len(t, labels, LaneCount+2)
	var texts []string
	for i, l := range labels[:LaneCount] {
		assert.Equal(t, LabelTotal, l.Kind)
		assert.Equal(t, DutyStatuses[i], l.Status)
		assert.Equal(t, layout.LaneIndexToY(i), l.Y)
		assert.Equal(t, 853.0, l.X)
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{"13.0", "0.0", "10.5", "0.5"}, texts)

	header := labels[LaneCount]
	assert.Equal(t, LabelTotalsHeader, header.Kind)
	assert.Equal(t, "HOURS", header.Text)
	assert.Equal(t, 28.0, header.Y)

	grand := labels[LaneCount+1]
	assert.Equal(t, LabelGrandTotal, grand.Kind)
	assert.Equal(t, "= 24", grand.Text)
}

func TestBuildTotals_DoesNotRecompute(t *testing.T) {
	layout := NewGridLayout(DefaultGridConfig())
	// totals that disagree with any plausible day still print verbatim
	labels := BuildTotals(layout, LogSheetTotals{OffDuty: 30, Driving: -1})

	assert.Equal(t, "30.0", labels[0].Text)
	assert.Equal(t, "-1.0", labels[2].Text)
	assert.Equal(t, "= 24", labels[LaneCount+1].Text)
}

func TestBuildRemarks(t *testing.T) {
	assert.Nil(t, BuildRemarks(nil))
	assert.Nil(t, BuildRemarks([]Remark{}))

	remarks := []Remark{
		{Time: "06:00", Location: "Dallas, TX", Activity: "Pre-trip inspection"},
		{Time: "05:00", Location: "Out of order", Activity: "Kept where it is"},
	}
	rows := BuildRemarks(remarks)
	require.Len(t, rows, 2)
	assert.Equal(t, RemarkRow{Time: "06:00", Location: "Dallas, TX", Activity: "Pre-trip inspection"}, rows[0])
	assert.Equal(t, "05:00", rows[1].Time, "rows are not re-sorted")
}
