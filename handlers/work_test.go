package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karigar-backend/models"
)

func postWork(t *testing.T, r *gin.Engine, token, title string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/postWork", gin.H{
		"title":       title,
		"budget":      "5000",
		"duration":    "2 weeks",
		"description": "build " + title,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, title, decodeBody(t, w)["name"])
}

func listWorks(t *testing.T, r *gin.Engine, path, token string) []models.Work {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var works []models.Work
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &works))
	return works
}

func TestWorkListsPartitionByOwner(t *testing.T) {
	_, r := newTestRouter()
	tokenA := signup(t, r, "A", "a@x.com", "p")
	tokenB := signup(t, r, "B", "b@x.com", "p")

	postWork(t, r, tokenA, "fence")
	postWork(t, r, tokenB, "roof")
	postWork(t, r, tokenA, "shed")

	others := listWorks(t, r, "/allWorks", tokenA)
	mine := listWorks(t, r, "/my-projects", tokenA)

	require.Len(t, others, 1)
	assert.Equal(t, "roof", others[0].Title)
	require.Len(t, mine, 2)

	// Descending by id, and together the two lists cover every work.
	assert.Equal(t, 3, mine[0].ID)
	assert.Equal(t, 1, mine[1].ID)
	assert.Len(t, append(others, mine...), 3)
}

func TestWorkListsRequireAuth(t *testing.T) {
	_, r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/allWorks", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectByIDIsPublic(t *testing.T) {
	_, r := newTestRouter()
	token := signup(t, r, "A", "a@x.com", "p")
	postWork(t, r, token, "fence")

	w := doJSON(t, r, http.MethodGet, "/project/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var work models.Work
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &work))
	assert.Equal(t, "fence", work.Title)
	assert.Empty(t, work.Proposals)

	w = doJSON(t, r, http.MethodGet, "/project/42", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitProposal(t *testing.T) {
	_, r := newTestRouter()
	owner := signup(t, r, "Owner", "owner@x.com", "p")
	bidder := signup(t, r, "Bidder", "bidder@x.com", "p")
	postWork(t, r, owner, "fence")

	w := doJSON(t, r, http.MethodPost, "/proposal", gin.H{
		"projectId":  1,
		"phone":      "12345",
		"message":    "I can do it",
		"experience": "5 years",
		"price":      "4000",
	}, bidder)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var work models.Work
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &work))
	require.Len(t, work.Proposals, 1)

	// Name and email come from the bidder's profile, not the request.
	assert.Equal(t, "Bidder", work.Proposals[0].SenderName)
	assert.Equal(t, "bidder@x.com", work.Proposals[0].SenderEmail)
	assert.Equal(t, "12345", work.Proposals[0].SenderPhone)
	assert.Equal(t, "4000", work.Proposals[0].Price)
}

func TestDuplicateProposalRejected(t *testing.T) {
	_, r := newTestRouter()
	owner := signup(t, r, "Owner", "owner@x.com", "p")
	bidder := signup(t, r, "Bidder", "bidder@x.com", "p")
	postWork(t, r, owner, "fence")

	first := gin.H{"projectId": 1, "phone": "12345", "message": "hi", "experience": "5y", "price": "4000"}
	w := doJSON(t, r, http.MethodPost, "/proposal", first, bidder)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/proposal", first, bidder)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You have already sent a proposal", decodeBody(t, w)["error"])

	// A different account reusing the same phone is also blocked.
	other := signup(t, r, "Other", "other@x.com", "p")
	w = doJSON(t, r, http.MethodPost, "/proposal", first, other)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The failed attempts did not grow the proposal list.
	w = doJSON(t, r, http.MethodGet, "/project/1", nil, "")
	var work models.Work
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &work))
	assert.Len(t, work.Proposals, 1)
}

func TestProposalOnMissingProjectIsNotFound(t *testing.T) {
	_, r := newTestRouter()
	bidder := signup(t, r, "Bidder", "bidder@x.com", "p")

	w := doJSON(t, r, http.MethodPost, "/proposal", gin.H{"projectId": 9, "phone": "12345"}, bidder)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project not found", decodeBody(t, w)["error"])
}

func TestDeleteProject(t *testing.T) {
	_, r := newTestRouter()
	token := signup(t, r, "A", "a@x.com", "p")
	postWork(t, r, token, "fence")

	w := doJSON(t, r, http.MethodDelete, "/delete-project/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, r, http.MethodDelete, "/delete-project/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
