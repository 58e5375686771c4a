package organization

import "time"

// Floor is one office floor of a centre. Numbers are unique per centre.
type Floor struct {
	id        uint
	number    int
	centreID  uint
	createdAt time.Time
	updatedAt time.Time
}

func NewFloor(number int, centreID uint) (*Floor, error) {
	if number < 0 {
		return nil, ErrFloorNumberNegative
	}
	if centreID == 0 {
		return nil, ErrCentreRequired
	}
	now := time.Now().UTC()
	return &Floor{number: number, centreID: centreID, createdAt: now, updatedAt: now}, nil
}

func ReconstructFloor(id uint, number int, centreID uint, createdAt, updatedAt time.Time) *Floor {
	return &Floor{id: id, number: number, centreID: centreID, createdAt: createdAt, updatedAt: updatedAt}
}

func (f *Floor) Renumber(number int) error {
	if number < 0 {
		return ErrFloorNumberNegative
	}
	f.number = number
	f.updatedAt = time.Now().UTC()
	return nil
}

func (f *Floor) ID() uint             { return f.id }
func (f *Floor) Number() int          { return f.number }
func (f *Floor) CentreID() uint       { return f.centreID }
func (f *Floor) CreatedAt() time.Time { return f.createdAt }
func (f *Floor) UpdatedAt() time.Time { return f.updatedAt }

func (f *Floor) SetID(id uint) error {
	return setID(&f.id, id, "floor")
}
