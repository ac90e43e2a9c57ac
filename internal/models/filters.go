package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ClusterFilter holds the optional filters of a crime-cluster request.
// A nil field imposes no constraint.
type ClusterFilter struct {
	JenisKejahatan *string `validate:"omitempty,min=1,max=255"`
	Tahun          *int    `validate:"omitempty,gte=1900,lte=2100"`
	Provinsi       *string `validate:"omitempty,min=1,max=16"`
}

// Validate checks the filter values
func (f ClusterFilter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return nil
}

// GroupKey picks the grouping granularity: districts inside a chosen
// province, provinces otherwise.
func (f ClusterFilter) GroupKey() GroupKey {
	if f.Provinsi != nil {
		return GroupByDistrict
	}
	return GroupByProvince
}

// Echo returns the filters as reported in the response meta
func (f ClusterFilter) Echo() ClusterFilters {
	return ClusterFilters{
		JenisKejahatan: f.JenisKejahatan,
		Tahun:          f.Tahun,
		Provinsi:       f.Provinsi,
	}
}

// TrendFilter represents filter parameters for trend analysis
type TrendFilter struct {
	StartYear int    `form:"start_year" validate:"omitempty,gte=1900,lte=2100"`
	EndYear   int    `form:"end_year" validate:"omitempty,gte=1900,lte=2100"`
	Provinsi  string `form:"provinsi" validate:"omitempty,max=16"`
}

// Validate checks the filter values
func (f TrendFilter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	if f.StartYear > 0 && f.EndYear > 0 && f.StartYear > f.EndYear {
		return fmt.Errorf("%w: start_year must not be after end_year", ErrInvalidFilter)
	}
	return nil
}

// JudgmentFilter represents filter parameters for the judgment listing
type JudgmentFilter struct {
	Page    int    `form:"page" validate:"gte=0"`
	PerPage int    `form:"per_page" validate:"gte=0,lte=100"`
	Tahun   int    `form:"tahun" validate:"omitempty,gte=1900,lte=2100"`
	Search  string `form:"search" validate:"max=200"`
}

// Validate checks the filter values
func (f JudgmentFilter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return nil
}

// ValidateRecord checks an import record
func ValidateRecord(r ImportRecord) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return nil
}
