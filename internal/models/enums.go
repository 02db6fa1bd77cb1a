package models

import (
	"encoding/json"
	"strings"
)

// TransactionType is the direction of a transaction.
type TransactionType string

// Supported transaction types
const (
	Inflow  TransactionType = "Inflow"
	Outflow TransactionType = "Outflow"
)

// TransactionTypes lists every supported transaction type.
var TransactionTypes = []TransactionType{Inflow, Outflow}

// IsValid reports whether t is a supported transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Inflow, Outflow:
		return true
	}
	return false
}

// ParseTransactionType resolves a type name case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range TransactionTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", ErrInvalidType
}

// UnmarshalJSON accepts any casing of a known type name.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidType
	}
	parsed, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category classifies a transaction.
type Category string

// Supported categories
const (
	Salary    Category = "Salary"
	Rent      Category = "Rent"
	Food      Category = "Food"
	Leisure   Category = "Leisure"
	Transport Category = "Transport"
	Health    Category = "Health"
	Education Category = "Education"
	Other     Category = "Other"
)

// Categories lists every supported category.
var Categories = []Category{Salary, Rent, Food, Leisure, Transport, Health, Education, Other}

// IsValid reports whether c is a supported category.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// UnmarshalJSON accepts any casing of a known category name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidCategory
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
