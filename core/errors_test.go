package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EMISSING, "glyph %s not found", "0x1f600.png")
	if Code(err) != EMISSING {
		t.Errorf("expected code %d, got %d", EMISSING, Code(err))
	}
	if UserMessage(err) != "glyph 0x1f600.png not found" {
		t.Errorf("unexpected user message %q", UserMessage(err))
	}
}

func TestWrappedErrorKeepsChain(t *testing.T) {
	base := errors.New("permission denied")
	err := WrapError(base, EIO, "cannot read %s", "emoji-data.txt")
	outer := fmt.Errorf("locale run: %w", err)
	if !errors.Is(outer, base) {
		t.Errorf("expected wrapped error to contain the base error")
	}
	if Code(outer) != EIO {
		t.Errorf("expected code %d, got %d", EIO, Code(outer))
	}
	if Code(nil) != NOERROR || UserMessage(nil) != "" {
		t.Errorf("nil error should map to NOERROR with empty message")
	}
	if Code(base) != EINTERNAL {
		t.Errorf("plain error should map to EINTERNAL, got %d", Code(base))
	}
}

func TestErrorWithCode(t *testing.T) {
	base := errors.New("accepts 1 arg(s), received 0")
	err := ErrorWithCode(base, EINVALID)
	if Code(err) != EINVALID || !errors.Is(err, base) {
		t.Errorf("expected EINVALID wrapping the base error, got %v", err)
	}
	if UserMessage(err) != base.Error() {
		t.Errorf("expected base error text as user message, got %q", UserMessage(err))
	}
	if UserMessage(ErrorWithCode(nil, EIO)) != "i/o error" {
		t.Errorf("nil error should carry the code's default text")
	}
}

func TestUserError(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stderr := os.Stderr
	os.Stderr = w
	UserError(Error(EMISSING, "folder not found: glyphs/apple"))
	UserError(errors.New("boom"))
	os.Stderr = stderr
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	expected := "[122] folder not found: glyphs/apple\nError: boom\n"
	if string(out) != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}
}
