// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/girigiri/cliparse"
	"github.com/danielhkuo/girigiri/db"
	"github.com/danielhkuo/girigiri/models"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every new connection would get its own empty :memory: database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3318,
		DataFile:           "testdata/districts.json",
		DatabaseType:       "sqlite",
		CloseRaceThreshold: 5000,
		LogLevel:           "info",
	}
}

// Candidate builds a candidate with a generated display name
func Candidate(id, party string, votes int) models.Candidate {
	return models.Candidate{ID: id, Name: "候補" + id, Party: party, Votes: votes}
}

// SampleDistricts returns a small dataset covering the interesting cases.
//
//	tokyo-1   margin 2000  runner-up 立民
//	osaka-3   margin 500   runner-up 自民
//	aichi-10  margin 9000  runner-up 自民  (candidates out of vote order)
//	kyoto-2   margin 500   runner-up 自民
//	hokkaido-7 margin 61000 single candidate
//	okinawa-1 margin 0     no candidates
func SampleDistricts() []models.District {
	return []models.District{
		{
			ID: "tokyo-1", Prefecture: "東京都", Name: "東京1区",
			Candidates: []models.Candidate{
				{ID: "t1a", Name: "山田太郎", Party: "自民", Votes: 50000, IsWinner: true},
				{ID: "t1b", Name: "佐藤花子", Party: "立民", Votes: 48000},
				{ID: "t1c", Name: "鈴木一郎", Party: "共産", Votes: 2000},
			},
			Margin: 2000, TotalVotes: 100000,
		},
		{
			ID: "osaka-3", Prefecture: "大阪府", Name: "大阪3区",
			Candidates: []models.Candidate{
				Candidate("o3a", "立民", 30500),
				Candidate("o3b", "自民", 30000),
			},
			Margin: 500, TotalVotes: 60500,
		},
		{
			ID: "aichi-10", Prefecture: "愛知県", Name: "愛知１０区",
			Candidates: []models.Candidate{
				Candidate("a10a", "維新", 1000),
				Candidate("a10b", "立民", 40000),
				Candidate("a10c", "自民", 31000),
			},
			Margin: 9000, TotalVotes: 72000,
		},
		{
			ID: "kyoto-2", Prefecture: "京都府", Name: "京都2区",
			Candidates: []models.Candidate{
				Candidate("k2a", "自民", 20000),
				Candidate("k2b", "立民", 20500),
			},
			Margin: 500, TotalVotes: 40500,
		},
		{
			ID: "hokkaido-7", Prefecture: "北海道", Name: "北海道7区",
			Candidates: []models.Candidate{
				Candidate("h7a", "自民", 61000),
			},
			Margin: 61000, TotalVotes: 61000,
		},
		{
			ID: "okinawa-1", Prefecture: "沖縄県", Name: "沖縄1区",
			Candidates: []models.Candidate{},
		},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
