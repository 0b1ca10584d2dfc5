package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate đọc chuỗi ngày dạng 2006-01-02, trả về 0h UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// DateOf chuẩn hóa một thời điểm về 0h UTC cùng ngày
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange là khoảng ngày nửa mở [From, To): From tính, To không tính.
// Mọi vòng lặp theo đêm (availability, allocation, release, thống kê)
// đều đi qua đây để biên được xử lý giống nhau.
type DateRange struct {
	From time.Time
	To   time.Time
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: DateOf(from), To: DateOf(to)}
}

// Nights trả về số đêm trong khoảng (0 nếu From >= To)
func (r DateRange) Nights() int {
	n := int(r.To.Sub(r.From).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Dates liệt kê từng ngày trong khoảng theo thứ tự tăng dần
func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.From; d.Before(r.To); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r DateRange) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(r.From) && d.Before(r.To)
}
