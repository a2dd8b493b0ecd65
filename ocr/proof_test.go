package ocr

import (
	"errors"
	"reflect"
	"testing"
)

type fakeRecognizer struct {
	text string
	err  error
}

func (f fakeRecognizer) RecognizeImage([]byte) (string, error) {
	return f.text, f.err
}

func TestMissing(t *testing.T) {
	text := "TAGO\nLEAP\nTrade ideas,  not tokens\n\nHyperstack Hackathon 2025"

	tests := []struct {
		name    string
		phrases []string
		want    []string
	}{
		{"all found", []string{"TAGO", "Trade ideas, not tokens", "hackathon 2025"}, nil},
		{"case and spacing", []string{"trade   IDEAS"}, nil},
		{"missing", []string{"LEAP", "Thank you!"}, []string{"Thank you!"}},
		{"partial word", []string{"Hack"}, []string{"Hack"}},
		{"empty phrase", []string{"", "→"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Missing(text, tt.phrases); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	proof, err := Check(fakeRecognizer{text: "Demo Flow\nONBOARD"}, 8, nil, []string{"Demo Flow", "AUTOMATE"})
	if err != nil {
		t.Fatal(err)
	}
	if proof.OK() {
		t.Error("expected a missing phrase")
	}
	if proof.Slide != 8 || !reflect.DeepEqual(proof.Missing, []string{"AUTOMATE"}) {
		t.Errorf("proof = %+v", proof)
	}
	if got, want := proof.String(), `slide 8: missing ["AUTOMATE"]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCheck_Error(t *testing.T) {
	boom := errors.New("boom")
	if _, err := Check(fakeRecognizer{err: boom}, 2, nil, nil); !errors.Is(err, boom) {
		t.Errorf("Check() error = %v", err)
	}
}

func TestProof_OK(t *testing.T) {
	if got := (Proof{Slide: 3}).String(); got != "slide 3: ok" {
		t.Errorf("String() = %q", got)
	}
}
