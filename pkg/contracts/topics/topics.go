package topics

const (
	// Bets
	BetRecorded = "bet_recorded"

	// DLQs
	BetRecordedDLQ = "bet_recorded_dlq"
)
