package planner

// compressBlocks merges consecutive equal-type hours into maximal blocks.
// The result covers exactly 24 hours with contiguous, non-overlapping
// blocks ordered by start hour.
func compressBlocks(slots [24]ActivityType, eventTitles [24]string) []ActivityBlock {
	var blocks []ActivityBlock

	start := 0
	for h := 1; h <= 24; h++ {
		if h < 24 && slots[h] == slots[start] {
			continue
		}
		blocks = append(blocks, ActivityBlock{
			Type:       slots[start],
			StartHour:  start,
			EndHour:    h,
			Confidence: blockConfidence[slots[start]],
			Reason:     blockReason[slots[start]],
			EventTitle: eventTitles[start],
		})
		start = h
	}

	return blocks
}
