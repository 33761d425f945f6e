package registrar

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/campuskit/enrollctl/internal/config"
)

func seedRoster(t *testing.T, svc *Service) {
	t.Helper()
	if err := svc.db.Seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestPaginate_RejectsOutOfRangeSizes(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, size := range []int{0, 6, -1, -5} {
		err := svc.Paginate(size)
		if !errors.Is(err, ErrPageSizeOutOfRange) {
			t.Fatalf("expected ErrPageSizeOutOfRange for size %d, got %v", size, err)
		}
	}
}

func TestPaginate_AcceptsBoundarySizes(t *testing.T) {
	svc, _, _ := newTestService(t)
	seedRoster(t, svc)

	for _, size := range []int{1, 5} {
		if err := svc.Paginate(size); err != nil {
			t.Fatalf("expected size %d to be accepted, got %v", size, err)
		}
	}
}

func TestPaginate_PageSizesOverTenStudents(t *testing.T) {
	svc, _, out := newTestService(t)
	seedRoster(t, svc)

	// 10 students with page size 4 -> pages of sizes [4, 4, 2]
	if err := svc.Paginate(4); err != nil {
		t.Fatalf("Paginate returned error: %v", err)
	}

	output := out.String()
	for _, header := range []string{"Page 1", "Page 2", "Page 3"} {
		if !strings.Contains(output, header) {
			t.Fatalf("expected output to contain %q:\n%s", header, output)
		}
	}
	if strings.Contains(output, "Page 4") {
		t.Fatalf("expected exactly 3 pages:\n%s", output)
	}

	// Concatenated pages reproduce the full ascending roster, no
	// duplicates, no omissions
	for id := 11; id <= 20; id++ {
		row := fmt.Sprintf("|%-3d|", id)
		if strings.Count(output, row) != 1 {
			t.Fatalf("expected exactly one row for id %d:\n%s", id, output)
		}
	}

	// Last page ends at the highest id
	lastRow := strings.LastIndex(output, "|20 |")
	page3 := strings.Index(output, "Page 3")
	if lastRow < page3 {
		t.Fatalf("expected id 20 on page 3:\n%s", output)
	}
}

func TestPaginate_FirstPageStartsAtSmallestID(t *testing.T) {
	svc, _, out := newTestService(t)
	seedRoster(t, svc)

	if err := svc.Paginate(5); err != nil {
		t.Fatalf("Paginate returned error: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	// Page header, border, column header, border, then the first row
	if len(lines) < 5 {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if lines[4] != "|11 |John    |" {
		t.Fatalf("expected first row to be student 11, got %q", lines[4])
	}
}

func TestPaginate_EmptyRoster(t *testing.T) {
	svc, _, out := newTestService(t)

	if err := svc.Paginate(3); err != nil {
		t.Fatalf("Paginate returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output for empty roster, got:\n%s", out.String())
	}
}

func TestPageSizeBounds_FromSettings(t *testing.T) {
	_, db, _ := newTestService(t)

	if err := db.InitializeDefaults(); err != nil {
		t.Fatalf("InitializeDefaults returned error: %v", err)
	}

	svc := New(db, config.NewLoader(db), &bytes.Buffer{})
	min, max := svc.PageSizeBounds()
	if min != 1 || max != 5 {
		t.Fatalf("expected bounds [1,5], got [%d,%d]", min, max)
	}

	if err := db.SetSetting("paginate.max_page_size", "3"); err != nil {
		t.Fatalf("SetSetting returned error: %v", err)
	}
	if err := svc.Paginate(4); !errors.Is(err, ErrPageSizeOutOfRange) {
		t.Fatalf("expected ErrPageSizeOutOfRange with lowered bound, got %v", err)
	}
}
