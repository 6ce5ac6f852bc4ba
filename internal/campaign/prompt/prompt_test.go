package prompt

import (
	"strings"
	"testing"

	catalogdomain "github.com/raqamly/console/internal/catalog/domain"
	"github.com/raqamly/console/internal/config"
)

func TestBuildFullPrompt(t *testing.T) {
	product := &catalogdomain.Product{
		Name:        "Ceramic Mug",
		Description: "Hand thrown stoneware mug",
		Category:    "kitchen",
		Price:       18.5,
	}

	got := Build(config.DefaultPromptConfig(), product, "Instagram", "english")

	want := "You are now a Marketing Manager with over 10 years experience in Marketing B2C products. " +
		"Write me a social media caption for my product that is perfect for Instagram. " +
		"My product is Ceramic Mug, Hand thrown stoneware mug, in the kitchen category, price $18.50. " +
		"Write it in english."
	if got != want {
		t.Fatalf("unexpected prompt:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildSkipsEmptyDescription(t *testing.T) {
	product := &catalogdomain.Product{Name: "Vase", Price: 25}

	got := Build(config.DefaultPromptConfig(), product, "Facebook", "spanish")

	if strings.Contains(got, "Vase, ,") {
		t.Fatalf("expected empty description to be omitted, got %q", got)
	}
	if !strings.Contains(got, "My product is Vase, price $25.00.") {
		t.Fatalf("expected product facts, got %q", got)
	}
	if !strings.HasSuffix(got, "Write it in spanish.") {
		t.Fatalf("expected language directive at end, got %q", got)
	}
}
