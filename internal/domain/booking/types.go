package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Active reports whether the booking still holds its room type. Any
// non-cancelled status counts; availability recomputation depends on this.
func (s Status) Active() bool {
	return s != StatusCancelled
}
