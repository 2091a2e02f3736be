package repositories

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
)

// The repositories address columns through the models' db tags, so every
// tagged field must exist as a column in the initial schema. A mismatch
// here means runtime 42703 errors that the service-level fakes never see.
func TestModelColumnsExistInSchema(t *testing.T) {
	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	cases := []struct {
		table string
		model any
	}{
		{"users", models.User{}},
		{"mentorships", models.Mentorship{}},
		{"issues", models.Issue{}},
		{"issue_comments", models.Comment{}},
		{"achievements", models.Achievement{}},
		{"academic_records", models.AcademicRecord{}},
	}

	for _, tc := range cases {
		block := tableBlock(t, string(ddl), tc.table)
		typ := reflect.TypeOf(tc.model)
		for i := 0; i < typ.NumField(); i++ {
			column := typ.Field(i).Tag.Get("db")
			if column == "" || column == "-" {
				continue
			}
			columnLine := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(column) + `\s`)
			if !columnLine.MatchString(block) {
				t.Errorf("table %s has no column %q for field %s.%s",
					tc.table, column, typ.Name(), typ.Field(i).Name)
			}
		}
	}
}

// tableBlock extracts the body of one CREATE TABLE statement
func tableBlock(t *testing.T, ddl, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(ddl, marker)
	if start < 0 {
		t.Fatalf("schema does not create table %s", table)
	}
	rest := ddl[start+len(marker):]
	end := strings.Index(rest, ");")
	if end < 0 {
		t.Fatalf("unterminated CREATE TABLE for %s", table)
	}
	return rest[:end]
}
