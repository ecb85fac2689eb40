package arsip_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type identityBody struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

type letterBody struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	LetterNumber string `json:"letter_number"`
	Status       string `json:"status"`
	FilePath     string `json:"file_path"`
}

type userBody struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type statsBody struct {
	Incoming  int64 `json:"incoming"`
	Outgoing  int64 `json:"outgoing"`
	Pending   int64 `json:"pending"`
	Processed int64 `json:"processed"`
}

type numberBody struct {
	Number string `json:"number"`
}

// TestLetterArchiveFlow drives the whole archive journey through the public
// API: login, archive a letter with an attachment, route it, complete it,
// check the dashboard and delete it.
func TestLetterArchiveFlow(t *testing.T) {
	baseURL, cleanup := setupArsipContainer(t)
	defer cleanup()

	admin := loginAs(t, baseURL, adminUsername, adminPassword)

	me := getJSON[identityBody](t, admin, baseURL+"/api/auth/me")
	require.Equal(t, "ADMIN", me.Role)

	suggestion := getJSON[numberBody](t, admin, baseURL+"/api/letters/next-number?type=INCOMING")
	require.True(t, strings.HasPrefix(suggestion.Number, "001/SM/"))

	// Archive a letter with an attachment.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range map[string]string{
		"type":          "INCOMING",
		"letter_number": suggestion.Number,
		"subject":       "Undangan rapat koordinasi",
		"sender":        "Dinas Pendidikan",
		"recipient":     "Kepala Kantor",
		"date":          "2026-03-10",
		"category":      "Undangan",
	} {
		require.NoError(t, mw.WriteField(key, value))
	}
	part, err := mw.CreateFormFile("file", "undangan.pdf")
	require.NoError(t, err)
	_, err = io.WriteString(part, "%PDF-1.4 e2e stub")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := admin.Post(baseURL+"/api/letters", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var letter letterBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&letter))
	resp.Body.Close()
	require.Equal(t, "PENDING", letter.Status)

	// The attachment comes back through the download endpoint.
	resp, err = admin.Get(baseURL + "/api/letters/" + letter.ID + "/file")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "%PDF-1.4 e2e stub", string(body))

	// Route the letter to the seeded staff account.
	users := getJSON[[]userBody](t, admin, baseURL+"/api/users")
	var staffID string
	for _, u := range users {
		if u.Username == "staff" {
			staffID = u.ID
		}
	}
	require.NotEmpty(t, staffID)

	resp = postJSON(t, admin, baseURL+"/api/letters/"+letter.ID+"/dispositions",
		map[string]string{"to_user_id": staffID, "notes": "mohon ditindaklanjuti"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fetched := getJSON[letterBody](t, admin, baseURL+"/api/letters/"+letter.ID)
	require.Equal(t, "PROCESSED", fetched.Status)

	// Complete it; a later attempt to move backwards is refused.
	patch := func(status string) int {
		raw, err := json.Marshal(map[string]string{"status": status})
		require.NoError(t, err)
		req, err := http.NewRequest(http.MethodPatch,
			baseURL+"/api/letters/"+letter.ID+"/status", bytes.NewReader(raw))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := admin.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}
	require.Equal(t, http.StatusOK, patch("COMPLETED"))
	require.Equal(t, http.StatusBadRequest, patch("PENDING"))

	stats := getJSON[statsBody](t, admin, baseURL+"/api/stats")
	require.Equal(t, int64(1), stats.Incoming)
	require.Equal(t, int64(0), stats.Pending)

	req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/letters/"+letter.ID, nil)
	require.NoError(t, err)
	resp, err = admin.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = admin.Get(baseURL + "/api/letters/" + letter.ID)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestAuthBoundaries verifies the session and role checks from outside.
func TestAuthBoundaries(t *testing.T) {
	baseURL, cleanup := setupArsipContainer(t)
	defer cleanup()

	// No session at all.
	resp, err := http.Get(baseURL + "/api/letters")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong password.
	plain := &http.Client{}
	resp = postJSON(t, plain, baseURL+"/api/auth/login",
		map[string]string{"username": adminUsername, "password": "wrong"})
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Staff cannot manage users.
	staff := loginAs(t, baseURL, "staff", "staff123")
	resp = postJSON(t, staff, baseURL+"/api/users", map[string]string{
		"username": "baru", "password": "rahasia", "full_name": "Pegawai Baru", "role": "STAFF",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// TestHealthEndpoints checks the probes on a fresh container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupArsipContainer(t)
	defer cleanup()

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(baseURL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
