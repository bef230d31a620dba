package parser

import (
	"errors"
	"testing"
)

func TestFindFirstDay(t *testing.T) {
	tests := []struct {
		name     string
		cells    map[int]string
		expected int
	}{
		{"abbreviation", map[int]string{12: "ПН"}, 12},
		{"full name header", map[int]string{15: "  Понедельник  "}, 16},
		{"header with location", map[int]string{11: "ПОНЕДЕЛЬНИК (1 корпус)", 12: "ПН"}, 12},
		{"header at scan end", map[int]string{509: "ПОНЕДЕЛЬНИК"}, 510},
		{"at search start", map[int]string{10: "пн"}, 10},
		{"ignores rows above start", map[int]string{5: "ПН", 20: "ПН"}, 20},
	}

	for _, tt := range tests {
		g := NewMapGrid()
		for row, text := range tt.cells {
			g.Set("A", row, text)
		}
		row, err := FindFirstDay(g, testLayout(6))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if row != tt.expected {
			t.Errorf("%s: expected row %d, got %d", tt.name, tt.expected, row)
		}
	}
}

func TestFindFirstDayBounded(t *testing.T) {
	g := NewMapGrid()
	g.Set("A", 10, "Вторник")
	g.Set("A", 600, "ПН")

	layout := testLayout(6)
	_, err := FindFirstDay(g, layout)
	if err == nil {
		t.Fatal("Expected LayoutError, got nil")
	}

	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("Expected *LayoutError, got %T", err)
	}
	if !errors.Is(err, ErrMarkerNotFound) {
		t.Errorf("Expected error to wrap ErrMarkerNotFound")
	}
	if layoutErr.From != 10 || layoutErr.To != 509 {
		t.Errorf("Expected scan window 10..509, got %d..%d", layoutErr.From, layoutErr.To)
	}
}

func TestReadDayHeader(t *testing.T) {
	g := NewMapGrid()
	g.Set("A", 19, " корпус 3 ")
	g.Set("A", 20, "ВТ")
	g.Set("A", 30, "Воскресенье")

	h := ReadDayHeader(g, testLayout(6), 20)
	if h.Location != "корпус 3" || h.DayOfWeek != "Вторник" || !h.Known {
		t.Errorf("Unexpected header: %+v", h)
	}

	h = ReadDayHeader(g, testLayout(6), 30)
	if h.Known || h.DayOfWeek != "Воскресенье" {
		t.Errorf("Expected unknown label passed through, got %+v", h)
	}
}
