package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestDropFileError_CarriesPath(t *testing.T) {
	err := WrapDropFile("/bbs/node1/door32.sys", "door32", ErrDropFileUnparsable)

	if !strings.Contains(err.Error(), "/bbs/node1/door32.sys") {
		t.Errorf("message %q missing path", err.Error())
	}
	if !errors.Is(err, ErrDropFileUnparsable) {
		t.Error("expected errors.Is match on ErrDropFileUnparsable")
	}

	var dfe *DropFileError
	if !errors.As(err, &dfe) || dfe.Dialect != "door32" {
		t.Errorf("As failed or dialect wrong: %+v", dfe)
	}
}

func TestWrapTransport_ChainsSentinel(t *testing.T) {
	err := WrapTransport("serial", "COM3", fs.ErrNotExist)

	if !errors.Is(err, ErrTransportOpen) {
		t.Error("expected chain to ErrTransportOpen")
	}
	if !strings.Contains(err.Error(), "COM3") {
		t.Errorf("message %q missing target", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing", WrapDropFile("x", "auto", ErrDropFileMissing), true},
		{"unparsable", WrapDropFile("x", "doorsys", ErrDropFileUnparsable), true},
		{"usage", ErrUsage, true},
		{"transport", WrapTransport("socket", "7", errors.New("closed")), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal = %v, want %v", got, tt.want)
			}
		})
	}
}
