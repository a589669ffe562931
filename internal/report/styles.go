// Package report serializes analysis results into styled xlsx
// workbooks.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook colors, RRGGBB.
const (
	colorHeader      = "366092"
	colorShippable   = "C6EFCE"
	colorBackorder   = "FFC7CE"
	colorOrderHeader = "D9E1F2"
)

// styleSet caches excelize style IDs per fill color for one workbook.
type styleSet struct {
	file   *excelize.File
	byFill map[string]int
	bold   map[string]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{
		file:   f,
		byFill: make(map[string]int),
		bold:   make(map[string]int),
	}
}

func thinBorder() []excelize.Border {
	border := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		border = append(border, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return border
}

// fill returns a bordered style with the given background color.
func (s *styleSet) fill(color string) (int, error) {
	if id, ok := s.byFill[color]; ok {
		return id, nil
	}
	id, err := s.file.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border: thinBorder(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	s.byFill[color] = id
	return id, nil
}

// boldFill returns a bordered bold style with the given background.
// White text is used on the dark header color.
func (s *styleSet) boldFill(color string) (int, error) {
	if id, ok := s.bold[color]; ok {
		return id, nil
	}
	font := &excelize.Font{Bold: true}
	if color == colorHeader {
		font.Color = "FFFFFF"
	}
	id, err := s.file.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Font:   font,
		Border: thinBorder(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	s.bold[color] = id
	return id, nil
}
