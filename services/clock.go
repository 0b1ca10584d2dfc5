package services

import "time"

// Clock trừu tượng hóa thời gian hiện tại để test cố định được "hôm nay".
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewRealClock() Clock { return realClock{} }

// FixedClock luôn trả về một thời điểm cố định, dùng cho test
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
