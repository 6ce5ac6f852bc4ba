package domain

import "context"

type Service interface {
	// Generate produces campaign copy for a local catalog product. It does
	// not persist anything; call Save to keep the result. A second Generate
	// for the same session key cancels the one still in flight.
	Generate(ctx context.Context, req GenerateRequest) (*Campaign, error)

	Save(ctx context.Context, campaign *Campaign) (*Campaign, error)
	Get(ctx context.Context, id string) (*Campaign, error)
	ListByProduct(ctx context.Context, productID uint) ([]Campaign, error)

	// Export writes the campaign content to a text file and returns its
	// path. The file holds the exact content bytes.
	Export(ctx context.Context, id string) (string, error)
}

type GenerateRequest struct {
	SessionKey string
	ProductID  uint
	Platform   string
	Language   string
}
