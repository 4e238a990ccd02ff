package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/internal/testutils"
	"github.com/navacharity/charity-go/models"
	"github.com/navacharity/charity-go/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/register", "", gin.H{"username": username, "password": "123456"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/login", "", gin.H{"username": username, "password": "123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func asCharity(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	token := registerAndLogin(t, r, username)
	w := doJSON(r, http.MethodPost, "/charities", token, gin.H{"name": username, "reg_number": "1234567890"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return token
}

func asBenefactor(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	token := registerAndLogin(t, r, username)
	w := doJSON(r, http.MethodPost, "/benefactors", token, gin.H{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return token
}

func createTaskHTTP(t *testing.T, r *gin.Engine, token, title string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/tasks", token, gin.H{"title": title})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task.TID
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

func TestTasks_RequireAuthentication(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	w := doJSON(r, http.MethodGet, "/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTask_CharityOwnerOnly(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	token := asBenefactor(t, r, "ben")
	w := doJSON(r, http.MethodPost, "/tasks", token, gin.H{"title": "Deliver food"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestTask_BenefactorOnly(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	charityToken := asCharity(t, r, "org")
	taskID := createTaskHTTP(t, r, charityToken, "Deliver food")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/tasks/%d/request", taskID), charityToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestTask_MissingTask(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	token := asBenefactor(t, r, "ben")
	w := doJSON(r, http.MethodGet, "/tasks/999/request", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskWorkflowOverHTTP(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	charityToken := asCharity(t, r, "org")
	benToken := asBenefactor(t, r, "ben")
	taskID := createTaskHTTP(t, r, charityToken, "Deliver food")
	requestPath := fmt.Sprintf("/tasks/%d/request", taskID)
	responsePath := fmt.Sprintf("/tasks/%d/response", taskID)
	donePath := fmt.Sprintf("/tasks/%d/done", taskID)

	// benefactor requests the pending task
	w := doJSON(r, http.MethodGet, requestPath, benToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Request sent.", detailOf(t, w))

	// a second request hits the not-pending branch
	w = doJSON(r, http.MethodGet, requestPath, benToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "This task is not pending.", detailOf(t, w))

	// charity rejects, reopening the task
	w = doJSON(r, http.MethodPost, responsePath, charityToken, gin.H{"response": "R"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Response sent.", detailOf(t, w))

	task, err := repositories.GetTaskByID(taskID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatePending, task.State)
	assert.Nil(t, task.AssignedBenefactorID)

	// request again, accept, complete
	w = doJSON(r, http.MethodGet, requestPath, benToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, responsePath, charityToken, gin.H{"response": "A"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, donePath, charityToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Task has been done successfully.", detailOf(t, w))

	task, err = repositories.GetTaskByID(taskID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStateDone, task.State)
	assert.NotNil(t, task.AssignedBenefactorID)

	// done is terminal
	w = doJSON(r, http.MethodGet, requestPath, benToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, http.MethodPost, responsePath, charityToken, gin.H{"response": "A"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "This task is not waiting.", detailOf(t, w))
	w = doJSON(r, http.MethodPost, donePath, charityToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Task is not assigned yet.", detailOf(t, w))
}

func TestRespondToTask_DoneCodeHint(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	charityToken := asCharity(t, r, "org")
	taskID := createTaskHTTP(t, r, charityToken, "Deliver food")

	// 'D' against a non-waiting task answers 400 with the code hint
	w := doJSON(r, http.MethodPost, fmt.Sprintf("/tasks/%d/response", taskID), charityToken, gin.H{"response": "D"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Required field ("A" for accepted / "R" for rejected)`, detailOf(t, w))

	// any other code against a non-waiting task answers the generic 404
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/tasks/%d/response", taskID), charityToken, gin.H{"response": "A"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "This task is not waiting.", detailOf(t, w))
}

func TestRespondToTask_NonOwningCharity(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	ownerToken := asCharity(t, r, "org")
	intruderToken := asCharity(t, r, "other-org")
	benToken := asBenefactor(t, r, "ben")
	taskID := createTaskHTTP(t, r, ownerToken, "Deliver food")

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/tasks/%d/request", taskID), benToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/tasks/%d/response", taskID), intruderToken, gin.H{"response": "A"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	task, err := repositories.GetTaskByID(taskID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStateWaiting, task.State)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/tasks/%d/done", taskID), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetTasks_FilterParams(t *testing.T) {
	testutils.SetupTestDB(t)
	r := testutils.SetupRouter()

	charityToken := asCharity(t, r, "org")
	createTaskHTTP(t, r, charityToken, "Deliver food")
	createTaskHTTP(t, r, charityToken, "Collect books")

	w := doJSON(r, http.MethodGet, "/tasks?title=food", charityToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Deliver food", tasks[0].Title)
}
