package transcript

// Segment is one parsed transcript line: a start time in seconds, an
// optional end time, and the spoken text. Segments are immutable once
// produced by Parse and are ordered by Start.
type Segment struct {
	Start  float64
	End    float64
	HasEnd bool
	Text   string
}
