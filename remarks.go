package main

// BuildRemarks formats the remarks in the order given. The input is already
// chronological; it is not re-sorted.
func BuildRemarks(remarks []Remark) []RemarkRow {
	if len(remarks) == 0 {
		return nil
	}
	rows := make([]RemarkRow, len(remarks))
	for i, r := range remarks {
		rows[i] = RemarkRow{Time: r.Time, Location: r.Location, Activity: r.Activity}
	}
	return rows
}
