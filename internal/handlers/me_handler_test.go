package handlers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/config"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
)

// A valid token whose account row is gone must read as 404, not as a
// server fault.
func TestGetMeDeletedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewMeHandler(emptyDB(t), &config.Config{JWTSecret: "test-secret"}, nil)

	r := gin.New()
	r.GET("/api/me", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(42))
	}, h.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d (body=%s)", w.Code, http.StatusNotFound, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "user_not_found") {
		t.Fatalf("body = %s, want user_not_found", w.Body.String())
	}
}

// emptyDB opens a gorm handle over a stub driver that answers every
// query with zero rows, which gorm surfaces as ErrRecordNotFound.
func emptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sql.OpenDB(emptyConnector{}),
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("open stub db: %v", err)
	}
	return db
}

type emptyConnector struct{}

func (emptyConnector) Connect(context.Context) (driver.Conn, error) { return emptyConn{}, nil }
func (emptyConnector) Driver() driver.Driver                        { return emptyDriver{} }

type emptyDriver struct{}

func (emptyDriver) Open(string) (driver.Conn, error) { return emptyConn{}, nil }

type emptyConn struct{}

func (emptyConn) Prepare(string) (driver.Stmt, error) { return emptyStmt{}, nil }
func (emptyConn) Close() error                        { return nil }
func (emptyConn) Begin() (driver.Tx, error)           { return emptyTx{}, nil }

type emptyTx struct{}

func (emptyTx) Commit() error   { return nil }
func (emptyTx) Rollback() error { return nil }

type emptyStmt struct{}

func (emptyStmt) Close() error  { return nil }
func (emptyStmt) NumInput() int { return -1 }
func (emptyStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.RowsAffected(0), nil
}
func (emptyStmt) Query([]driver.Value) (driver.Rows, error) { return emptyRows{}, nil }

type emptyRows struct{}

func (emptyRows) Columns() []string         { return nil }
func (emptyRows) Close() error              { return nil }
func (emptyRows) Next([]driver.Value) error { return io.EOF }
