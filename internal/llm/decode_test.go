package llm

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeJSONHandlesQuirks(t *testing.T) {
	type payload struct {
		FindModel string   `json:"find_model"`
		Notes     []string `json:"additional_info"`
	}
	want := payload{FindModel: "drama", Notes: []string{"HBO"}}

	cases := map[string]string{
		"plain":      `{"find_model":"drama","additional_info":["HBO"]}`,
		"fenced":     "```json\n{\"find_model\":\"drama\",\"additional_info\":[\"HBO\"]}\n```",
		"bare fence": "```\n{\"find_model\":\"drama\",\"additional_info\":[\"HBO\"]}\n```",
		"prose":      "Sure! Here it is: {\"find_model\":\"drama\",\"additional_info\":[\"HBO\"]} Enjoy.",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			var got payload
			if err := DecodeJSON(content, &got); err != nil {
				t.Fatalf("DecodeJSON: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	var v map[string]any
	if err := DecodeJSON("   ", &v); err == nil {
		t.Fatal("expected error for empty payload")
	}
	err := DecodeJSON("not json at all", &v)
	if err == nil || !strings.Contains(err.Error(), "payload snippet") {
		t.Fatalf("expected snippet in error, got %v", err)
	}
}

func TestSummarizePayloadSnippetTruncates(t *testing.T) {
	long := strings.Repeat("a ", 200)
	got := summarizePayloadSnippet(long)
	if !strings.HasSuffix(got, "...") || len([]rune(got)) != 163 {
		t.Fatalf("unexpected snippet %q", got)
	}
	if summarizePayloadSnippet(" ") != "<empty>" {
		t.Fatal("expected <empty> for blank content")
	}
}
