package repository

import (
	"strings"
	"testing"
)

func TestBuildSearchConditionSQLite(t *testing.T) {
	condition, argCount := buildSearchConditionByDialect("sqlite", []string{"products.name", "products.description"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	want := "products.name LIKE ? OR products.description LIKE ?"
	if condition != want {
		t.Fatalf("condition mismatch, want %s got %s", want, condition)
	}
}

func TestBuildSearchConditionPostgres(t *testing.T) {
	condition, argCount := buildSearchConditionByDialect("postgres", []string{"products.name"})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if !strings.Contains(condition, "ILIKE ?") {
		t.Fatalf("postgres condition should use ILIKE, got %s", condition)
	}
}

func TestBuildSearchConditionSkipsEmptyColumns(t *testing.T) {
	condition, argCount := buildSearchConditionByDialect("sqlite", []string{"", "  ", "name"})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if condition != "name LIKE ?" {
		t.Fatalf("condition mismatch, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
