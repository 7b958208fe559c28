package trainlog

// ActivityRecord is one normalized activity on the activity-level stream.
type ActivityRecord struct {
	Date     string
	Quantity float64
	Unit     string
	Type     string
}

// DayRecord is the per-day aggregate on the day-level stream. A Weight of
// 0 means no reading; mileage for types never logged that day stays 0.
// When a day logs the same canonical type twice, the later activity wins.
type DayRecord struct {
	Date   string
	Weight float64
	Walk   float64
	Run    float64
	Bike   float64
	Swim   float64
}

// Emitter receives normalized records in input order.
type Emitter interface {
	Activity(ActivityRecord) error
	Day(DayRecord) error
}
