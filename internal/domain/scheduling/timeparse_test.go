package scheduling

import "testing"

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"12:00 AM", 0, false},
		{"12:30 AM", 30, false},
		{"1:00 AM", 60, false},
		{"11:59 AM", 719, false},
		{"12:00 PM", 720, false},
		{"12:45 PM", 765, false},
		{"1:00 PM", 780, false},
		{"11:30 PM", 1410, false},
		{"09:15 am", 555, false},
		{"  10:00 AM  ", 600, false},
		{"14:30", 870, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"", 0, true},
		{"10:00 XM", 0, true},
		{"13:00 PM", 0, true},
		{"0:30 AM", 0, true},
		{"10:60 AM", 0, true},
		{"24:00", 0, true},
		{"10 AM", 0, true},
		{"ten:30 AM", 0, true},
		{"10:00 AM extra", 0, true},
	}
	for _, tc := range tests {
		got, err := ClockMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ClockMinutes(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClockMinutes(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ClockMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDateParts(t *testing.T) {
	day, month, year, err := DateParts("15/08/2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != 15 || month != 8 || year != 2025 {
		t.Errorf("got %d/%d/%d, want 15/8/2025", day, month, year)
	}

	bad := []string{
		"2025-08-15",
		"32/01/2025",
		"01/13/2025",
		"29/02/2025", // not a leap year
		"30/02/2024",
		"15/08/1800",
		"15/08",
		"aa/bb/cccc",
	}
	for _, in := range bad {
		if _, _, _, err := DateParts(in); err == nil {
			t.Errorf("DateParts(%q): expected error", in)
		}
	}

	// 2024 is a leap year
	if _, _, _, err := DateParts("29/02/2024"); err != nil {
		t.Errorf("DateParts(29/02/2024): unexpected error: %v", err)
	}
}

func TestSortAppointments(t *testing.T) {
	appts := []*Appointment{
		{Date: "01/09/2025", Time: "3:00 PM"},
		{Date: "15/10/2025", Time: "9:00 AM"},
		{Date: "01/09/2025", Time: "10:00 AM"},
		{Date: "20/08/2024", Time: "11:00 AM"},
		{Date: "15/10/2025", Time: "2:00 PM"},
	}
	SortAppointments(appts)

	want := []struct {
		date string
		tm   string
	}{
		{"15/10/2025", "9:00 AM"},
		{"15/10/2025", "2:00 PM"},
		{"01/09/2025", "10:00 AM"},
		{"01/09/2025", "3:00 PM"},
		{"20/08/2024", "11:00 AM"},
	}
	for i, w := range want {
		if appts[i].Date != w.date || appts[i].Time != w.tm {
			t.Errorf("position %d: got %s %s, want %s %s", i, appts[i].Date, appts[i].Time, w.date, w.tm)
		}
	}
}

func TestSortAppointmentsMalformedLast(t *testing.T) {
	appts := []*Appointment{
		{Date: "not-a-date", Time: "9:00 AM"},
		{Date: "01/09/2025", Time: "10:00 AM"},
	}
	SortAppointments(appts)
	if appts[0].Date != "01/09/2025" {
		t.Errorf("well-formed date should sort first, got %s", appts[0].Date)
	}
}
