package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetURLValidator(t *testing.T) {
	v := NewTargetURLValidator([]string{"evil.example.com"})

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"plain https", "https://example.com", nil},
		{"plain http", "http://example.com/path?q=1", nil},
		{"public ip", "https://93.184.216.34", nil},
		{"not a url", "not a url", ErrInvalidURL},
		{"relative", "/relative/path", ErrInvalidURL},
		{"ftp scheme", "ftp://example.com", ErrBadScheme},
		{"javascript scheme", "javascript:alert(1)", ErrInvalidURL},
		{"localhost", "http://localhost:8080", ErrBlockedHost},
		{"loopback literal", "http://127.0.0.1/admin", ErrBlockedHost},
		{"loopback range", "http://127.0.0.53", ErrBlockedHost},
		{"unspecified", "http://0.0.0.0", ErrBlockedHost},
		{"ipv6 loopback", "http://[::1]:9000", ErrBlockedHost},
		{"blocked suffix local", "https://printer.local", ErrBlockedHost},
		{"blocked suffix internal", "https://db.prod.internal", ErrBlockedHost},
		{"blocked suffix test", "https://staging.test", ErrBlockedHost},
		{"rfc1918 ten", "http://10.1.2.3", ErrBlockedHost},
		{"rfc1918 one-seven-two", "http://172.16.0.1", ErrBlockedHost},
		{"rfc1918 one-nine-two", "http://192.168.1.1", ErrBlockedHost},
		{"link local", "http://169.254.169.254/latest/meta-data", ErrBlockedHost},
		{"zero net", "http://0.1.2.3", ErrBlockedHost},
		{"ipv6 unique local", "http://[fd00::1]", ErrBlockedHost},
		{"ipv6 link local", "http://[fe80::1]", ErrBlockedHost},
		{"ipv6 site local", "http://[fec0::1]", ErrBlockedHost},
		{"config blocklist", "https://evil.example.com", ErrBlockedHost},
		{"not in blocklist", "https://good.example.com", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.raw)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	h := HashIP("192.0.2.1")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashIP("192.0.2.1"))
	assert.NotEqual(t, h, HashIP("192.0.2.2"))
}
