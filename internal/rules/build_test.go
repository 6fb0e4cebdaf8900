package rules

import (
	"errors"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{
			name:   "neutral address omits from clause",
			fields: Fields{Action: "allow", Direction: "in", Protocol: "tcp", Port: "22", Address: "any"},
			want:   "allow in to any port 22 proto tcp",
		},
		{
			name:   "explicit address includes from clause",
			fields: Fields{Action: "allow", Direction: "in", Protocol: "tcp", Port: "22", Address: "10.0.0.5"},
			want:   "allow in from 10.0.0.5 to any port 22 proto tcp",
		},
		{
			name:   "protocol any omits proto clause",
			fields: Fields{Action: "deny", Direction: "out", Protocol: "any", Port: "53", Address: "any"},
			want:   "deny out to any port 53",
		},
		{
			name:   "limit udp",
			fields: Fields{Action: "limit", Direction: "in", Protocol: "udp", Port: "161", Address: "192.168.0.0/24"},
			want:   "limit in from 192.168.0.0/24 to any port 161 proto udp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.fields)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_Determinism(t *testing.T) {
	f := Fields{Action: "allow", Direction: "in", Protocol: "tcp", Port: "22", Address: "any"}
	first, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Build(f)
		if err != nil || got != first {
			t.Fatalf("Build() not deterministic: %q vs %q (err %v)", got, first, err)
		}
	}
}

func TestBuild_Rejections(t *testing.T) {
	base := Fields{Action: "allow", Direction: "in", Protocol: "tcp", Port: "22", Address: "any"}

	tests := []struct {
		name    string
		mutate  func(f Fields) Fields
		wantErr error
	}{
		{
			name:    "non-numeric port",
			mutate:  func(f Fields) Fields { f.Port = "abc"; return f },
			wantErr: ErrInvalidPort,
		},
		{
			name:    "empty port",
			mutate:  func(f Fields) Fields { f.Port = ""; return f },
			wantErr: ErrInvalidPort,
		},
		{
			name:    "mixed port",
			mutate:  func(f Fields) Fields { f.Port = "2a2"; return f },
			wantErr: ErrInvalidPort,
		},
		{
			name:    "address with whitespace",
			mutate:  func(f Fields) Fields { f.Address = "10.0.0.5 evil"; return f },
			wantErr: ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.mutate(base))
			if err == nil {
				t.Fatalf("Build() = %q, want error", got)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Fatalf("Build() returned partial command %q on error", got)
			}
		})
	}
}

func TestBuild_UnknownEnumValues(t *testing.T) {
	f := Fields{Action: "drop", Direction: "in", Protocol: "tcp", Port: "22", Address: "any"}
	if _, err := Build(f); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}
