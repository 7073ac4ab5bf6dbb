package finance

// DeltaAverage returns the mean of the trailing day-over-day deltas of
// series over the last min(window, len(series)-1) deltas. With fewer
// deltas than the nominal window it averages what exists; it never pads.
// A series with no deltas (zero or one point) yields 0.
func DeltaAverage(series []float64, window int) float64 {
	available := len(series) - 1
	if available <= 0 || window <= 0 {
		return 0
	}
	count := window
	if available < count {
		count = available
	}

	sum := 0.0
	for i := len(series) - count; i < len(series); i++ {
		sum += series[i] - series[i-1]
	}
	return sum / float64(count)
}

// ProfitWindows computes the standard 1/7/30/90-day rolling averages over
// the net-assets series, which must already include the newest point.
func ProfitWindows(netAssets []float64) (today, avg7, avg30, avg90 float64) {
	return DeltaAverage(netAssets, 1),
		DeltaAverage(netAssets, 7),
		DeltaAverage(netAssets, 30),
		DeltaAverage(netAssets, 90)
}
