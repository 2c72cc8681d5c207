package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func ask(t *testing.T, input string, req Request) (string, string) {
	t.Helper()
	var out bytes.Buffer
	terminal := &Terminal{In: strings.NewReader(input), Out: &out}

	answer, err := terminal.Ask(req)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	return answer, out.String()
}

func TestAskReturnsAnswer(t *testing.T) {
	answer, _ := ask(t, "bob\n", Request{Message: "Username"})
	if answer != "bob" {
		t.Errorf("Expected bob, got %q", answer)
	}
}

func TestAskAppliesDefault(t *testing.T) {
	answer, output := ask(t, "\n", Request{Message: "Server URL", Default: "https://x.example"})
	if answer != "https://x.example" {
		t.Errorf("Expected default, got %q", answer)
	}
	if !strings.Contains(output, "[https://x.example]") {
		t.Errorf("Expected default shown in prompt, got %q", output)
	}
}

func TestAskDismissedReturnsEmpty(t *testing.T) {
	answer, _ := ask(t, "", Request{Message: "Username"})
	if answer != "" {
		t.Errorf("Expected empty answer on EOF, got %q", answer)
	}
}

func TestAskReAsksOnValidationFailure(t *testing.T) {
	validate := func(value string) error {
		if !strings.HasPrefix(value, "https://") {
			return fmt.Errorf("must be https")
		}
		return nil
	}

	answer, output := ask(t, "nope\nhttps://x.example\n", Request{Message: "Server URL", Validate: validate})
	if answer != "https://x.example" {
		t.Errorf("Expected validated answer, got %q", answer)
	}
	if !strings.Contains(output, "Invalid value") {
		t.Errorf("Expected validation feedback, got %q", output)
	}
}

func TestAskSecretNotEchoedToDefaultLine(t *testing.T) {
	_, output := ask(t, "hunter2\n", Request{Message: "Password", Default: "old-secret", Secret: true})
	if strings.Contains(output, "old-secret") {
		t.Errorf("Secret default leaked into prompt output: %q", output)
	}
}
