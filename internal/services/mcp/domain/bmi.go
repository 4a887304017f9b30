package domain

import (
	"context"
	"fmt"

	"github.com/gileadraab/bmi-calculator/internal/bmi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ComputeInput represents the MCP tool input for computing a BMI.
type ComputeInput struct {
	Weight string `json:"weight" jsonschema:"body weight in kilograms, as entered"`
	Height string `json:"height" jsonschema:"body height, as entered"`
	Unit   string `json:"unit,omitempty" jsonschema:"height unit: cm or m (defaults to cm)"`
}

// ComputeResult represents the MCP tool output for computing a BMI.
type ComputeResult struct {
	BMI         float64 `json:"bmi" jsonschema:"body mass index rounded to one decimal place"`
	Category    string  `json:"category" jsonschema:"weight status band (UNDERWEIGHT, NORMAL, OVERWEIGHT, OBESITY_I, OBESITY_II, OBESITY_III)"`
	Description string  `json:"description" jsonschema:"display text for the category"`
}

// ComputeTool defines the MCP tool schema for computing a BMI.
func ComputeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "bmi_compute",
		Description: "Validates raw weight and height text, computes the body mass index, and classifies it into a weight status band.",
	}
}

// ComputeHandler executes a BMI computation.
func ComputeHandler() mcp.ToolHandlerFor[ComputeInput, ComputeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ComputeInput) (*mcp.CallToolResult, ComputeResult, error) {
		unit := bmi.UnitCentimeter
		if input.Unit != "" {
			parsed, err := bmi.ParseUnit(input.Unit)
			if err != nil {
				return nil, ComputeResult{}, err
			}
			unit = parsed
		}

		measurement, err := bmi.Validate(input.Weight, input.Height, unit)
		if err != nil {
			return nil, ComputeResult{}, err
		}

		result, err := bmi.Compute(measurement)
		if err != nil {
			return nil, ComputeResult{}, fmt.Errorf("compute bmi: %w", err)
		}

		return nil, ComputeResult{
			BMI:         result.Value,
			Category:    categoryToString(result.Category),
			Description: result.Description,
		}, nil
	}
}

// CategorizeInput represents the MCP tool input for classifying a BMI value.
type CategorizeInput struct {
	BMI float64 `json:"bmi" jsonschema:"body mass index value to classify"`
}

// CategorizeResult represents the MCP tool output for classifying a BMI value.
type CategorizeResult struct {
	Category    string `json:"category" jsonschema:"weight status band"`
	Description string `json:"description" jsonschema:"display text for the category"`
}

// CategorizeTool defines the MCP tool schema for classifying a BMI value.
func CategorizeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "bmi_categorize",
		Description: "Classifies a numeric body mass index into a weight status band. Boundary values belong to the higher band.",
	}
}

// CategorizeHandler executes a BMI classification.
func CategorizeHandler() mcp.ToolHandlerFor[CategorizeInput, CategorizeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CategorizeInput) (*mcp.CallToolResult, CategorizeResult, error) {
		if input.BMI <= 0 {
			return nil, CategorizeResult{}, fmt.Errorf("bmi must be greater than zero, got %v", input.BMI)
		}

		category := bmi.Categorize(input.BMI)
		return nil, CategorizeResult{
			Category:    categoryToString(category),
			Description: category.Description(),
		}, nil
	}
}

// categoryToString maps an engine category to its wire representation.
func categoryToString(c bmi.Category) string {
	switch c {
	case bmi.CategoryUnderweight:
		return "UNDERWEIGHT"
	case bmi.CategoryNormal:
		return "NORMAL"
	case bmi.CategoryOverweight:
		return "OVERWEIGHT"
	case bmi.CategoryObesityI:
		return "OBESITY_I"
	case bmi.CategoryObesityII:
		return "OBESITY_II"
	case bmi.CategoryObesityIII:
		return "OBESITY_III"
	default:
		return "UNSPECIFIED"
	}
}
