package listings

import (
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/cexcal-dev/cexcal/internal/dataset"
	"github.com/cexcal-dev/cexcal/internal/datekey"
	"github.com/cexcal-dev/cexcal/internal/model"
)

// Service provides date and exchange lookup over a static listing dataset.
// Lookups are linear scans; the dataset is small and never mutated.
type Service struct {
	listings []model.Listing
}

// NewService creates a Service over listings.
func NewService(listings []model.Listing) *Service {
	return &Service{listings: listings}
}

// Load reads a dataset file and validates it. Invalid records are logged and
// kept unless strict is set, in which case all problems are returned as one
// error.
func Load(path string, strict bool) (*Service, error) {
	ls, err := dataset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading listings: %w", err)
	}

	svc := NewService(ls)
	verrs := svc.Validate()
	if len(verrs) > 0 && strict {
		joined := make([]error, len(verrs))
		for i, ve := range verrs {
			joined[i] = ve
		}
		return nil, fmt.Errorf("validating %s: %w", path, errors.Join(joined...))
	}
	for _, ve := range verrs {
		log.WithField("row", ve.Index+1).Warnf("dataset %s: %v", path, ve)
	}

	log.Debugf("loaded %d listings from %s", svc.Len(), path)
	return svc, nil
}

// All returns every listing in dataset order.
func (s *Service) All() []model.Listing {
	return s.listings
}

// Len returns the number of listings.
func (s *Service) Len() int {
	return len(s.listings)
}

// ForDate returns the listings on key, restricted to exchange when it is
// non-empty. The exchange match is exact and case-sensitive.
func (s *Service) ForDate(key, exchange string) []model.Listing {
	var result []model.Listing
	for _, l := range s.listings {
		if l.Date != key {
			continue
		}
		if exchange != "" && l.Exchange != exchange {
			continue
		}
		result = append(result, l)
	}
	return result
}


// Exchanges returns the sorted distinct non-empty exchange names.
func (s *Service) Exchanges() []string {
	return DistinctExchanges(s.listings)
}

// DistinctExchanges returns the sorted distinct non-empty exchange names in ls.
func DistinctExchanges(ls []model.Listing) []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range ls {
		if l.Exchange == "" || seen[l.Exchange] {
			continue
		}
		seen[l.Exchange] = true
		names = append(names, l.Exchange)
	}
	sort.Strings(names)
	return names
}

// InRange returns the listings in ls whose date key lies in [first, last],
// comparing keys as strings.
func InRange(ls []model.Listing, first, last string) []model.Listing {
	var result []model.Listing
	for _, l := range ls {
		if l.Date >= first && l.Date <= last {
			result = append(result, l)
		}
	}
	return result
}

// InMonth returns the listings in ls dated within year/month.
func InMonth(ls []model.Listing, year int, month time.Month) []model.Listing {
	first, last := datekey.MonthRange(year, month)
	return InRange(ls, first, last)
}
