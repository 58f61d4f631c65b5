package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestClientIP_ForwardedForTakesFirstEntry(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if ip := clientIP(c); ip != "203.0.113.7" {
		t.Fatalf("expected 203.0.113.7, got %q", ip)
	}
}

func TestClientIP_RealIPFallback(t *testing.T) {
	c := testContext(t)
	c.Request.Header.Set("X-Real-IP", " 198.51.100.4 ")
	if ip := clientIP(c); ip != "198.51.100.4" {
		t.Fatalf("expected 198.51.100.4, got %q", ip)
	}
}

func TestClientIP_RemoteAddrStripsPort(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "192.0.2.9:51234"
	if ip := clientIP(c); ip != "192.0.2.9" {
		t.Fatalf("expected 192.0.2.9, got %q", ip)
	}
}
