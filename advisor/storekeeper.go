package advisor

import (
	"context"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"google.golang.org/genai"
)

const instruction = `
You are the storekeeper of a small retail shop. You know how to use the Tools
to read the shop inventory: the full report, the products at or below their
minimum stock, and a search by code or name.

The operator asks you what to restock, in which quantities, and which products
do not sell. Always check the inventory with the Tools before answering, never
guess quantities. Answer in short markdown, with a table when you list products.
`

// NewStorekeeper creates the expert that answers questions about the
// inventory in r. Money values are expressed in currency.
func NewStorekeeper(model string, r *inventory.Registry, currency string) *Expert {
	lib := Tools(r, currency)
	return &Expert{
		Name: "Storekeeper",
		Description: `The storekeeper reads the shop inventory and advises on
		restocking.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
		Library: NewLibrary(lib),
	}
}

// Tools are the functions the storekeeper can call on r.
func Tools(r *inventory.Registry, currency string) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Report",
				Description: "Report returns the inventory report: totals, low stock products, top sellers and least sellers.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown report.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				report := inventory.NewReport(r.Products(), renderer.Now(), currency)
				return renderer.RenderReportMarkdown(renderer.NewReport(report)), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "LowStock",
				Description: "LowStock lists the products whose quantity is at or below their minimum stock.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "One line per product with its code, name, price and quantity.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.RenderProducts(r.LowStock()), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Search",
				Description: "Search finds products by exact code or by part of their name, ignoring case.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"term": {
							Type:        genai.TypeString,
							Description: "The code or part of the name to look for.",
						},
					},
					Required: []string{"term"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "One line per product with its code, name, price and quantity.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				term, ok := args["term"].(string)
				if !ok {
					return "", fmt.Errorf("argument 'term' is not a string as expected but %T", args["term"])
				}
				return renderer.RenderProducts(r.Search(term)), nil
			},
		},
	}
}
