package transport

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	openFailed := errors.New("open failed")

	tests := []struct {
		name      string
		requested Kind
		openErr   error
		want      Kind
	}{
		{"serial ok", KindSerial, nil, KindSerial},
		{"serial failed", KindSerial, openFailed, KindConsole},
		{"socket ok", KindSocket, nil, KindSocket},
		{"socket failed", KindSocket, openFailed, KindConsole},
		{"console ok", KindConsole, nil, KindConsole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.requested, tt.openErr)
			if got != tt.want {
				t.Errorf("Resolve(%v, %v) = %v, want %v",
					tt.requested, tt.openErr, got, tt.want)
			}
		})
	}
}

func TestDowngraded(t *testing.T) {
	if !Downgraded(KindSocket, KindConsole) {
		t.Error("socket→console is a downgrade")
	}
	if Downgraded(KindConsole, KindConsole) {
		t.Error("console→console is not a downgrade")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindConsole, "console"},
		{KindSerial, "serial"},
		{KindSocket, "socket"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
