package parser

import "strconv"

// testLayout is the default layout scanning from row 10.
func testLayout(days int) Layout {
	l := DefaultLayout()
	l.DaysPerWeek = days
	return l
}

// setLessonRow fills the odd marker and the given lesson names on a row.
func setLessonRow(g *MapGrid, row, number int, odd, even string) {
	g.Set("B", row, strconv.Itoa(number))
	g.Set("L", row, strconv.Itoa(number))
	if odd != "" {
		g.Set("G", row, odd)
	}
	if even != "" {
		g.Set("H", row, even)
	}
}
