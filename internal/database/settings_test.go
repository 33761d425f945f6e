package database

import (
	"testing"

	"github.com/campuskit/enrollctl/internal/config"
)

func TestInitializeDefaults_PaginationBounds(t *testing.T) {
	db := newTestDB(t)

	if err := db.InitializeDefaults(); err != nil {
		t.Fatalf("InitializeDefaults returned error: %v", err)
	}

	loader := config.NewLoader(db)
	if got := loader.Int("paginate.min_page_size", 0); got != 1 {
		t.Fatalf("expected min page size 1, got %d", got)
	}
	if got := loader.Int("paginate.max_page_size", 0); got != 5 {
		t.Fatalf("expected max page size 5, got %d", got)
	}
}

func TestSetSetting_Overwrites(t *testing.T) {
	db := newTestDB(t)

	if err := db.SetSetting("paginate.max_page_size", "7"); err != nil {
		t.Fatalf("SetSetting returned error: %v", err)
	}
	if err := db.SetSetting("paginate.max_page_size", "9"); err != nil {
		t.Fatalf("SetSetting returned error: %v", err)
	}

	val, err := db.GetSetting("paginate.max_page_size")
	if err != nil {
		t.Fatalf("GetSetting returned error: %v", err)
	}
	if val != "9" {
		t.Fatalf("expected setting value 9, got %q", val)
	}

	// Defaults must not clobber an existing value
	if err := db.InitializeDefaults(); err != nil {
		t.Fatalf("InitializeDefaults returned error: %v", err)
	}
	val, err = db.GetSetting("paginate.max_page_size")
	if err != nil {
		t.Fatalf("GetSetting returned error: %v", err)
	}
	if val != "9" {
		t.Fatalf("expected setting value to survive defaults, got %q", val)
	}
}
