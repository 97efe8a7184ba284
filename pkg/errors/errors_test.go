package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected ErrorType
	}{
		{http.StatusNotFound, ErrorTypeNotFound},
		{http.StatusForbidden, ErrorTypeHTTPStatus},
		{http.StatusInternalServerError, ErrorTypeHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.code), func(t *testing.T) {
			err := FromStatus("https://example.test/a.jpg", tt.code)
			assert.Equal(t, tt.expected, err.Type)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, "https://example.test/a.jpg", err.URL)
			assert.Contains(t, err.Error(), fmt.Sprintf("code %d", tt.code))
		})
	}
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("download failed: %w", New(ErrorTypeWrite, "", "disk full"))
	assert.Equal(t, ErrorTypeWrite, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
}

func TestErrorMessage(t *testing.T) {
	err := New(ErrorTypeDecode, "https://example.test/", "page is not valid UTF-8")
	assert.Equal(t, "decode error: page is not valid UTF-8", err.Error())
}

func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, IsSuccessStatus(200))
	assert.True(t, IsSuccessStatus(204))
	assert.False(t, IsSuccessStatus(301))
	assert.False(t, IsSuccessStatus(404))
	assert.False(t, IsSuccessStatus(500))
}
