package models

import (
	"fmt"
	"strconv"
)

// ServiceColumns is the column order of the Services sheet.
var ServiceColumns = []string{"service", "duration_min", "price"}

type Service struct {
	Name        string `json:"service"`
	DurationMin int    `json:"duration_min"`
	Price       string `json:"price"` // free text, currency left to the salon
}

func (s *Service) Row() []interface{} {
	return []interface{}{
		s.Name,
		strconv.Itoa(s.DurationMin),
		s.Price,
	}
}

func ServiceFromRow(row []interface{}) (*Service, error) {
	name := cellString(row, 0)
	if name == "" {
		return nil, fmt.Errorf("service row without a name")
	}

	durationMin, _ := strconv.Atoi(cellString(row, 1))

	return &Service{
		Name:        name,
		DurationMin: durationMin,
		Price:       cellString(row, 2),
	}, nil
}

// DefaultServices seeds a freshly created Services sheet.
var DefaultServices = []Service{
	{Name: "Géllakk", DurationMin: 60, Price: "8000"},
	{Name: "Töltés", DurationMin: 90, Price: "12000"},
	{Name: "Manikűr", DurationMin: 45, Price: "6000"},
	{Name: "Díszítés (1db)", DurationMin: 10, Price: "500"},
}
