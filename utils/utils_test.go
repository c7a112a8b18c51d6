package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func paginationFor(t *testing.T, target string) (page, limit int) {
	t.Helper()

	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		page, limit = ParsePagination(c, 50)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	return page, limit
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		target    string
		wantPage  int
		wantLimit int
	}{
		{"/items", 1, 50},
		{"/items?page=3&limit=20", 3, 20},
		{"/items?page=0&limit=0", 1, 50},
		{"/items?page=-1&limit=-5", 1, 50},
		{"/items?page=abc&limit=xyz", 1, 50},
		{"/items?limit=9999", 1, 50},
	}
	for _, tc := range cases {
		page, limit := paginationFor(t, tc.target)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("%s: expected page=%d limit=%d, got page=%d limit=%d",
				tc.target, tc.wantPage, tc.wantLimit, page, limit)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hashed, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hashed, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
