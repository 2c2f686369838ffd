package listings

import (
	"fmt"

	"github.com/cexcal-dev/cexcal/internal/datekey"
)

// Problem identifies the kind of validation failure.
type Problem string

const (
	// ProblemDate marks a date that is not a canonical YYYY-MM-DD calendar day.
	ProblemDate Problem = "date"
	// ProblemType marks a type outside the four known listing types.
	ProblemType Problem = "type"
)

// ValidationError describes one invalid dataset record.
type ValidationError struct {
	Index   int // zero-based position in the dataset
	Problem Problem
	Detail  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("record %d [%s]: %s", e.Index+1, e.Problem, e.Detail)
}

// Validate checks every record for a canonical calendar date and a known
// type. An absent type is valid; it resolves to spot.
func (s *Service) Validate() []ValidationError {
	var errs []ValidationError
	for i, l := range s.listings {
		if !datekey.Valid(l.Date) {
			errs = append(errs, ValidationError{
				Index:   i,
				Problem: ProblemDate,
				Detail:  fmt.Sprintf("date %q is not a YYYY-MM-DD calendar date", l.Date),
			})
		}
		if l.Type != "" && !l.Type.Known() {
			errs = append(errs, ValidationError{
				Index:   i,
				Problem: ProblemType,
				Detail:  fmt.Sprintf("unknown type %q", l.Type),
			})
		}
	}
	return errs
}
