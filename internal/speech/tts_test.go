package speech

import "testing"

func TestNormalizeVoiceTag(t *testing.T) {
	got, err := normalizeVoiceTag("cy-GB")
	if err != nil {
		t.Fatalf("normalizeVoiceTag(cy-GB): %v", err)
	}
	if got != "cy-GB" {
		t.Errorf("canonical form = %q; want cy-GB", got)
	}

	// Case-normalized input should canonicalize, not fail.
	got, err = normalizeVoiceTag("CY-gb")
	if err != nil {
		t.Fatalf("normalizeVoiceTag(CY-gb): %v", err)
	}
	if got != "cy-GB" {
		t.Errorf("canonical form = %q; want cy-GB", got)
	}
}

func TestNormalizeVoiceTag_Invalid(t *testing.T) {
	if _, err := normalizeVoiceTag("!!"); err == nil {
		t.Fatal("expected error for malformed tag")
	}
}
