package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestArtifactMissing(t *testing.T) {
	err := ArtifactMissing("conversion_funnel.png")
	if !IsMissing(err) {
		t.Error("expected IsMissing to be true")
	}
	if IsMalformed(err) {
		t.Error("expected IsMalformed to be false")
	}
	if !strings.Contains(err.Error(), "conversion_funnel.png") {
		t.Errorf("error should name the filename, got %q", err.Error())
	}
}

func TestArtifactMalformed(t *testing.T) {
	cause := stderrors.New("png: invalid format")
	err := ArtifactMalformed("bad.png", cause)
	if !IsMalformed(err) {
		t.Error("expected IsMalformed to be true")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected the cause to be wrapped")
	}
}

func TestWrapPreservesCode(t *testing.T) {
	err := Wrap(ArtifactMissing("x.png"), "loading section")
	if GetCode(err) != CodeArtifactMissing {
		t.Errorf("expected code preserved through Wrap, got %s", GetCode(err))
	}
	if !IsMissing(err) {
		t.Error("expected IsMissing through the wrap chain")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf of nil should return nil")
	}
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeNotFound, stderrors.New("plain"))
	if GetCode(err) != CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", GetCode(err))
	}
}

func TestGetCode_Unknown(t *testing.T) {
	if GetCode(stderrors.New("plain")) != "UNKNOWN" {
		t.Error("plain errors have no code")
	}
}
