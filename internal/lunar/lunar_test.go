package lunar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestConverter_ChineseNewYear2024(t *testing.T) {
	c := NewConverter()

	// 2024-02-10 is the first day of lunar year 2024 (甲辰, dragon)
	info := c.Convert(date(2024, time.February, 10))

	if info.Year != 2024 {
		t.Errorf("Year = %d, want 2024", info.Year)
	}
	if info.Month != 1 || info.Day != 1 {
		t.Errorf("lunar date = %d/%d, want 1/1", info.Month, info.Day)
	}
	if info.LeapMonth {
		t.Error("LeapMonth = true, want false")
	}
	if info.Zodiac != "龙" {
		t.Errorf("Zodiac = %q, want 龙", info.Zodiac)
	}

	found := false
	for _, f := range info.Festivals {
		if f == "春节" {
			found = true
		}
	}
	if !found {
		t.Errorf("Festivals = %v, want to contain 春节", info.Festivals)
	}
}

func TestConverter_LeapMonthDecoded(t *testing.T) {
	c := NewConverter()

	// 2023 had a leap second month; 2023-03-22 is its first day
	info := c.Convert(date(2023, time.March, 22))

	if !info.LeapMonth {
		t.Fatal("LeapMonth = false, want true inside 闰二月")
	}
	if info.Month != 2 {
		t.Errorf("Month = %d, want positive 2 (sign convention must not leak)", info.Month)
	}
	if info.Day != 1 {
		t.Errorf("Day = %d, want 1", info.Day)
	}
	if info.Zodiac != "兔" {
		t.Errorf("Zodiac = %q, want 兔", info.Zodiac)
	}
}

func TestConverter_SolarTerm(t *testing.T) {
	c := NewConverter()

	// 立春 fell on 2024-02-04
	withTerm := c.Convert(date(2024, time.February, 4))
	if withTerm.SolarTerm != "立春" {
		t.Errorf("SolarTerm = %q, want 立春", withTerm.SolarTerm)
	}

	withoutTerm := c.Convert(date(2024, time.February, 7))
	if withoutTerm.SolarTerm != "" {
		t.Errorf("SolarTerm = %q, want empty on a non-term day", withoutTerm.SolarTerm)
	}
}

func TestConverter_YearBoundary(t *testing.T) {
	c := NewConverter()

	// Early January still belongs to the previous lunar year
	info := c.Convert(date(2025, time.January, 1))

	if info.Year != 2024 {
		t.Errorf("Year = %d, want 2024 before Chinese New Year", info.Year)
	}
	if info.Month != 12 {
		t.Errorf("Month = %d, want 12", info.Month)
	}
	if info.LeapMonth {
		t.Error("LeapMonth = true, want false")
	}
}

func TestConverter_NoFestivalsOnPlainDay(t *testing.T) {
	c := NewConverter()

	info := c.Convert(date(2024, time.March, 5))

	if len(info.Festivals) != 0 {
		t.Errorf("Festivals = %v, want none", info.Festivals)
	}
}
