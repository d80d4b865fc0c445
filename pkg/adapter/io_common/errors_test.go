// 指示: miu200521358
package io_common

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestIoErrorIsMatchesKind(t *testing.T) {
	err := NewIoExtInvalid("scene.txt", nil)
	if !errors.Is(err, ErrExtInvalid) {
		t.Fatalf("kind mismatch: %v", err)
	}
	if errors.Is(err, ErrParseFailed) {
		t.Fatalf("should not match other kinds: %v", err)
	}
}

func TestIoErrorUnwrapKeepsCause(t *testing.T) {
	cause := os.ErrNotExist
	err := NewIoFileNotFound("scene.json", cause)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("kind mismatch: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cause should be reachable: %v", err)
	}
}

func TestIoErrorMessageIncludesPathAndMessage(t *testing.T) {
	err := NewIoParseFailed("シーンJSONの解析に失敗しました", errors.New("unexpected end"))
	text := err.Error()
	if !strings.Contains(text, "シーンJSONの解析に失敗しました") {
		t.Fatalf("message missing: %s", text)
	}
	if !strings.Contains(text, "unexpected end") {
		t.Fatalf("cause missing: %s", text)
	}

	pathErr := NewIoExtInvalid("scene.txt", nil)
	if !strings.Contains(pathErr.Error(), "scene.txt") {
		t.Fatalf("path missing: %s", pathErr.Error())
	}
}
