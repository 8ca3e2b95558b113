// Package clienttest provides an in-memory comment service for tests.
package clienttest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hay-kot/threads/internal/core/comment"
)

// Request is a request observed by the server.
type Request struct {
	Method    string
	Path      string
	RequestID string
	Body      string
}

type failure struct {
	status  int
	message string
}

type record struct {
	id        int
	parentID  *int
	text      string
	createdAt time.Time
}

// Server is a gin-backed fake of the comment service. Deleting a comment
// deletes its descendants.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int
	records  map[int]*record
	requests []Request
	failures map[string]failure // "METHOD /route/pattern"
	clock    time.Time
}

// New starts a fake service that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		nextID:   1,
		records:  make(map[int]*record),
		failures: make(map[string]failure),
		clock:    time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC),
	}

	r := gin.New()
	r.Use(s.record, s.inject)
	r.GET("/comments/all", s.handleAll)
	r.POST("/comments", s.handleCreate)
	r.POST("/comments/search", s.handleSearch)
	r.DELETE("/comments/:id", s.handleDelete)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Seed stores a comment directly and returns its id.
func (s *Server) Seed(text string, parentID *int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(text, parentID)
}

// FailWith makes the route answer with status and an {"error": message} body.
// route is the gin pattern, e.g. "DELETE /comments/:id".
func (s *Server) FailWith(route string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, message: message}
}

// Recover clears all injected failures.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests matched method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Len returns the number of stored comments.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Server) insert(text string, parentID *int) int {
	id := s.nextID
	s.nextID++
	s.clock = s.clock.Add(time.Minute)
	s.records[id] = &record{id: id, parentID: parentID, text: text, createdAt: s.clock}
	return id
}

func (s *Server) record(c *gin.Context) {
	var body string
	if c.Request.Body != nil {
		raw, _ := c.GetRawData()
		body = string(raw)
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		RequestID: c.GetHeader("X-Request-Id"),
		Body:      body,
	})
	s.mu.Unlock()

	c.Next()
}

func (s *Server) inject(c *gin.Context) {
	s.mu.Lock()
	f, ok := s.failures[c.Request.Method+" "+c.FullPath()]
	s.mu.Unlock()

	if ok {
		c.AbortWithStatusJSON(f.status, gin.H{"error": f.message})
		return
	}
	c.Next()
}

func (s *Server) handleAll(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.tree(func(r *record) bool { return r.parentID == nil }))
}

func (s *Server) handleCreate(c *gin.Context) {
	var req comment.CreateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ParentID != nil {
		if _, ok := s.records[*req.ParentID]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not create comment in db: invalid parent id"})
			return
		}
	}

	id := s.insert(req.Text, req.ParentID)
	r := s.records[id]
	c.JSON(http.StatusOK, gin.H{"id": r.id, "parent_id": r.parentID, "text": r.text, "created_at": r.createdAt})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req comment.SearchRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	needle := strings.ToLower(req.Text)

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.tree(func(r *record) bool {
		return strings.Contains(strings.ToLower(r.text), needle)
	}))
}

func (s *Server) handleDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id was provided"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not delete comment from db: not found"})
		return
	}
	s.deleteTree(id)
	c.JSON(http.StatusOK, gin.H{"status": "successfully deleted comment"})
}

func (s *Server) deleteTree(id int) {
	for _, r := range s.records {
		if r.parentID != nil && *r.parentID == id {
			s.deleteTree(r.id)
		}
	}
	delete(s.records, id)
}

// tree returns the subtrees rooted at every record matching isRoot.
func (s *Server) tree(isRoot func(*record) bool) []*comment.Comment {
	roots := make([]*comment.Comment, 0)
	for _, r := range s.sorted() {
		if isRoot(r) {
			roots = append(roots, s.build(r))
		}
	}
	return roots
}

func (s *Server) build(r *record) *comment.Comment {
	c := &comment.Comment{
		ID:        r.id,
		ParentID:  r.parentID,
		Text:      r.text,
		CreatedAt: r.createdAt,
		Children:  make([]*comment.Comment, 0),
	}
	for _, child := range s.sorted() {
		if child.parentID != nil && *child.parentID == r.id {
			c.Children = append(c.Children, s.build(child))
		}
	}
	return c
}

func (s *Server) sorted() []*record {
	out := make([]*record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
