package redis

import "testing"

func TestClient_Key(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		parts  []string
		want   string
	}{
		{"with prefix", "inventory", []string{"report", "abc:v1"}, "inventory:report:abc:v1"},
		{"without prefix", "", []string{"ratelimit", "auth:admin"}, "ratelimit:auth:admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{prefix: tt.prefix}
			if got := c.key(tt.parts...); got != tt.want {
				t.Errorf("key() = %q, want %q", got, tt.want)
			}
		})
	}
}
