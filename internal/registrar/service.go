// Package registrar implements the two interactive operations over the
// enrollment schema: enrolling a student into a course and paginating
// the student roster.
package registrar

import (
	"io"
	"time"

	"github.com/campuskit/enrollctl/internal/config"
	"github.com/campuskit/enrollctl/internal/database"
)

// Service runs enrollment operations against an injected store handle.
type Service struct {
	db  *database.DB
	cfg *config.Loader
	out io.Writer

	now func() time.Time
}

// New creates a service writing operation output to out.
func New(db *database.DB, cfg *config.Loader, out io.Writer) *Service {
	return &Service{
		db:  db,
		cfg: cfg,
		out: out,
		now: time.Now,
	}
}
