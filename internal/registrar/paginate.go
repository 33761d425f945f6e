package registrar

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/campuskit/enrollctl/internal/console"
)

// Page-size bounds when the settings table carries none.
const (
	DefaultMinPageSize = 1
	DefaultMaxPageSize = 5
)

// PageSizeBounds returns the inclusive page-size range for Paginate.
func (s *Service) PageSizeBounds() (min, max int) {
	min = DefaultMinPageSize
	max = DefaultMaxPageSize
	if s.cfg != nil {
		min = s.cfg.Int("paginate.min_page_size", DefaultMinPageSize)
		max = s.cfg.Int("paginate.max_page_size", DefaultMaxPageSize)
	}
	return min, max
}

// Paginate walks the full student roster in ascending id order,
// printing one bordered table per page. Pages are fetched by keyset:
// each query asks for ids strictly greater than the last id seen,
// so an empty page means the roster is consumed. Termination is
// guaranteed because the cursor strictly increases on every non-empty
// page and the roster is finite.
func (s *Service) Paginate(pageSize int) error {
	min, max := s.PageSizeBounds()
	if pageSize < min || pageSize > max {
		return fmt.Errorf("page size %d not in [%d,%d]: %w", pageSize, min, max, ErrPageSizeOutOfRange)
	}

	var lastID int64
	page := 1
	for {
		students, err := s.db.ListStudentsAfter(lastID, pageSize)
		if err != nil {
			return err
		}
		if len(students) == 0 {
			break
		}

		console.WriteStudentPage(s.out, page, students)
		lastID = students[len(students)-1].ID
		page++
	}

	log.Debug().Int("pages", page-1).Int("page_size", pageSize).Msg("Pagination complete")
	return nil
}
