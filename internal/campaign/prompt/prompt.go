package prompt

import (
	"fmt"
	"strings"

	catalogdomain "github.com/raqamly/console/internal/catalog/domain"
	"github.com/raqamly/console/internal/config"
)

// Build assembles the generation prompt from the configured template, the
// product facts and the requested output language.
func Build(cfg config.PromptConfig, product *catalogdomain.Product, platform, language string) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(cfg.Persona))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf(cfg.Directive, platform))
	b.WriteString(fmt.Sprintf(" My product is %s", product.Name))
	if desc := strings.TrimSpace(product.Description); desc != "" {
		b.WriteString(fmt.Sprintf(", %s", desc))
	}
	if category := strings.TrimSpace(product.Category); category != "" {
		b.WriteString(fmt.Sprintf(", in the %s category", category))
	}
	b.WriteString(fmt.Sprintf(", price $%.2f.", product.Price))

	b.WriteString(fmt.Sprintf(" Write it in %s.", language))

	return b.String()
}
