package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
)

const testToken = "test-token"

// fakePostAPI is an in-memory stand-in for the Post API, holding posts newest
// first the way the real endpoint returns them.
type fakePostAPI struct {
	mu       sync.Mutex
	posts    []models.Post
	seq      int
	failAll  bool
	requests int
}

func (f *fakePostAPI) addPost(post models.Post) models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	if post.ID == "" {
		post.ID = fmt.Sprintf("post-%d", f.seq)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Second)
	}
	f.posts = append([]models.Post{post}, f.posts...)
	return post
}

func (f *fakePostAPI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakePostAPI) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAll = fail
}

func (f *fakePostAPI) find(id string) (int, bool) {
	for i, post := range f.posts {
		if post.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *fakePostAPI) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization header missing"})
		return false
	}
	return true
}

func (f *fakePostAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	fail := f.failAll
	f.mu.Unlock()

	if r.URL.Path == "/auth/login" && r.Method == http.MethodPost {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "Password123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Wrong credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": testToken, "name": "Amy"})
		return
	}

	if r.URL.Path == "/auth/register" && r.Method == http.MethodPost {
		writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
		return
	}

	if fail {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error retrieving posts"})
		return
	}

	switch {
	case r.URL.Path == "/posts" && r.Method == http.MethodGet:
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.posts)

	case r.URL.Path == "/posts" && r.Method == http.MethodPost:
		if !f.requireAuth(w, r) {
			return
		}
		_ = r.ParseMultipartForm(32 << 20)
		post := models.Post{
			Title:    r.FormValue("title"),
			Author:   r.FormValue("author"),
			Content:  r.FormValue("content"),
			Category: r.FormValue("category"),
		}
		if post.Category == "" {
			post.Category = models.DefaultCategory
		}
		if file, header, err := r.FormFile("image"); err == nil {
			file.Close()
			post.ImageURL = "/uploads/" + header.Filename
		}
		writeJSON(w, http.StatusCreated, f.addPost(post))

	case strings.HasSuffix(r.URL.Path, "/like") && r.Method == http.MethodPost:
		if !f.requireAuth(w, r) {
			return
		}
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/posts/"), "/like")
		f.mu.Lock()
		defer f.mu.Unlock()
		i, ok := f.find(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Post not found"})
			return
		}
		f.posts[i].Likes++
		writeJSON(w, http.StatusOK, f.posts[i])

	case strings.HasPrefix(r.URL.Path, "/posts/") && r.Method == http.MethodPut:
		if !f.requireAuth(w, r) {
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/posts/")
		_ = r.ParseMultipartForm(32 << 20)
		f.mu.Lock()
		defer f.mu.Unlock()
		i, ok := f.find(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Post not found"})
			return
		}
		if v := r.FormValue("title"); v != "" {
			f.posts[i].Title = v
		}
		if v := r.FormValue("author"); v != "" {
			f.posts[i].Author = v
		}
		if v := r.FormValue("content"); v != "" {
			f.posts[i].Content = v
		}
		if v := r.FormValue("category"); v != "" {
			f.posts[i].Category = v
		}
		// The stored image only changes when a new file is sent.
		if file, header, err := r.FormFile("image"); err == nil {
			file.Close()
			f.posts[i].ImageURL = "/uploads/" + header.Filename
		}
		writeJSON(w, http.StatusOK, f.posts[i])

	case strings.HasPrefix(r.URL.Path, "/posts/") && r.Method == http.MethodDelete:
		if !f.requireAuth(w, r) {
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/posts/")
		f.mu.Lock()
		defer f.mu.Unlock()
		i, ok := f.find(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Post not found"})
			return
		}
		f.posts = append(f.posts[:i], f.posts[i+1:]...)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type feedFixture struct {
	api     *fakePostAPI
	server  *httptest.Server
	client  *Client
	ctrl    *Controller
	approve bool
}

func setupFeed(t *testing.T) *feedFixture {
	fx := &feedFixture{api: &fakePostAPI{}, approve: true}
	fx.server = httptest.NewServer(fx.api)
	t.Cleanup(fx.server.Close)

	fx.client = NewClient(fx.server.URL)
	confirm := func(models.Post) bool { return fx.approve }
	fx.ctrl = NewController(fx.client, confirm, quietLogger())

	_, err := fx.client.Login(context.Background(), "amy@example.com", "Password123")
	assert.NoError(t, err)

	return fx
}

func TestRefresh_ReplacesSnapshotNewestFirst(t *testing.T) {
	fx := setupFeed(t)
	fx.api.addPost(models.Post{Title: "Older", Author: "Amy", Content: "first"})
	newest := fx.api.addPost(models.Post{Title: "Newer", Author: "Bob", Content: "second"})

	posts := fx.ctrl.Refresh(context.Background())

	assert.Len(t, posts, 2)
	assert.Equal(t, newest.ID, posts[0].ID)
	assert.Equal(t, "Older", posts[1].Title)
}

func TestRefresh_KeepsStaleSnapshotOnError(t *testing.T) {
	fx := setupFeed(t)
	fx.api.addPost(models.Post{Title: "Hello", Author: "Amy", Content: "World"})
	fx.ctrl.Refresh(context.Background())

	fx.api.setFail(true)
	posts := fx.ctrl.Refresh(context.Background())

	assert.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
}

func TestSubmit_CreateAppearsFirstAndResetsDraft(t *testing.T) {
	fx := setupFeed(t)
	fx.api.addPost(models.Post{Title: "Existing", Author: "Bob", Content: "old news"})

	fx.ctrl.SetDraft(Draft{Title: "Hello", Author: "Amy", Content: "World", Category: "Technology"})
	err := fx.ctrl.Submit(context.Background())

	assert.NoError(t, err)

	posts := fx.ctrl.Posts()
	assert.Len(t, posts, 2)
	assert.Equal(t, "Hello", posts[0].Title)
	assert.Equal(t, 0, posts[0].Likes)
	assert.Empty(t, posts[0].ImageURL)

	draft := fx.ctrl.Draft()
	assert.Empty(t, draft.Title)
	assert.Equal(t, defaultDraftCategory, draft.Category)
	_, editing := fx.ctrl.Editing()
	assert.False(t, editing)
}

func TestSubmit_ValidationBlocksBeforeNetwork(t *testing.T) {
	fx := setupFeed(t)
	before := fx.api.requestCount()

	fx.ctrl.SetDraft(Draft{Category: "Technology"})
	err := fx.ctrl.Submit(context.Background())

	var errs ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "author")
	assert.Contains(t, errs, "content")
	assert.Equal(t, before, fx.api.requestCount())
}

func TestSubmit_FailureKeepsDraftPopulated(t *testing.T) {
	fx := setupFeed(t)
	fx.api.setFail(true)

	draft := Draft{Title: "Hello", Author: "Amy", Content: "World", Category: "Food"}
	fx.ctrl.SetDraft(draft)
	err := fx.ctrl.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, draft, fx.ctrl.Draft())
}

func TestLike_TwiceSequentiallyAddsTwo(t *testing.T) {
	fx := setupFeed(t)
	post := fx.api.addPost(models.Post{Title: "Hello", Author: "Amy", Content: "World"})
	fx.ctrl.Refresh(context.Background())

	assert.NoError(t, fx.ctrl.Like(context.Background(), post.ID))
	assert.NoError(t, fx.ctrl.Like(context.Background(), post.ID))

	posts := fx.ctrl.Posts()
	assert.Equal(t, 2, posts[0].Likes)
}

func TestDelete_ConfirmedRemovesPost(t *testing.T) {
	fx := setupFeed(t)
	post := fx.api.addPost(models.Post{Title: "Hello", Author: "Amy", Content: "World"})
	fx.ctrl.Refresh(context.Background())

	err := fx.ctrl.Delete(context.Background(), post)

	assert.NoError(t, err)
	assert.Empty(t, fx.ctrl.Posts())

	// A like against the deleted id now fails with a not-found signal.
	err = fx.ctrl.Like(context.Background(), post.ID)
	assert.True(t, IsNotFound(err))
}

func TestDelete_DeclinedConfirmationSendsNothing(t *testing.T) {
	fx := setupFeed(t)
	post := fx.api.addPost(models.Post{Title: "Hello", Author: "Amy", Content: "World"})
	fx.ctrl.Refresh(context.Background())

	fx.approve = false
	before := fx.api.requestCount()
	err := fx.ctrl.Delete(context.Background(), post)

	assert.NoError(t, err)
	assert.Equal(t, before, fx.api.requestCount())
	assert.Len(t, fx.ctrl.Posts(), 1)
}

func TestEdit_PrepopulatesAndUpdateKeepsImage(t *testing.T) {
	fx := setupFeed(t)
	post := fx.api.addPost(models.Post{
		Title:    "Hello",
		Author:   "Amy",
		Content:  "World",
		Category: "Travel",
		ImageURL: "/uploads/original.png",
	})
	fx.ctrl.Refresh(context.Background())

	fx.ctrl.Edit(post)

	id, editing := fx.ctrl.Editing()
	assert.True(t, editing)
	assert.Equal(t, post.ID, id)
	draft := fx.ctrl.Draft()
	assert.Equal(t, "Hello", draft.Title)
	assert.Equal(t, "Travel", draft.Category)
	assert.Nil(t, draft.Image)

	draft.Title = "Hello again"
	fx.ctrl.SetDraft(draft)
	err := fx.ctrl.Submit(context.Background())

	assert.NoError(t, err)
	posts := fx.ctrl.Posts()
	assert.Equal(t, "Hello again", posts[0].Title)
	assert.Equal(t, "/uploads/original.png", posts[0].ImageURL)
	_, editing = fx.ctrl.Editing()
	assert.False(t, editing)
}

func TestCancelEdit_ReturnsToCreating(t *testing.T) {
	fx := setupFeed(t)
	post := fx.api.addPost(models.Post{Title: "Hello", Author: "Amy", Content: "World"})

	fx.ctrl.Edit(post)
	fx.ctrl.CancelEdit()

	_, editing := fx.ctrl.Editing()
	assert.False(t, editing)
	assert.Empty(t, fx.ctrl.Draft().Title)
}

func TestFilterAndSearch_RecomputeView(t *testing.T) {
	fx := setupFeed(t)
	fx.api.addPost(models.Post{Title: "Go routines", Author: "Amy", Content: "Concurrency", Category: "Technology"})
	fx.api.addPost(models.Post{Title: "Street food", Author: "Bob", Content: "Bangkok", Category: "Food"})
	fx.ctrl.Refresh(context.Background())

	fx.ctrl.SetFilterCategory("Technology")
	assert.Len(t, fx.ctrl.Posts(), 1)

	fx.ctrl.SetSearchTerm("amy")
	posts := fx.ctrl.Posts()
	assert.Len(t, posts, 1)
	assert.Equal(t, "Amy", posts[0].Author)

	fx.ctrl.SetFilterCategory(CategoryAll)
	fx.ctrl.SetSearchTerm("")
	assert.Len(t, fx.ctrl.Posts(), 2)
}

func TestMutationsRequireSession(t *testing.T) {
	fx := setupFeed(t)
	post := fx.api.addPost(models.Post{Title: "Hello", Author: "Amy", Content: "World"})
	fx.ctrl.Refresh(context.Background())

	fx.client.Logout()
	assert.Nil(t, fx.client.Session())

	err := fx.ctrl.Like(context.Background(), post.ID)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestRegisterAndLogin_InstallSession(t *testing.T) {
	fx := setupFeed(t)
	fx.client.Logout()

	err := fx.client.Register(context.Background(), "Amy", "amy@example.com", "Password123")
	assert.NoError(t, err)

	session, err := fx.client.Login(context.Background(), "amy@example.com", "Password123")
	assert.NoError(t, err)
	assert.Equal(t, testToken, session.Token)
	assert.Equal(t, "Amy", session.Name)

	_, err = fx.client.Login(context.Background(), "amy@example.com", "wrong")
	assert.Error(t, err)
}
