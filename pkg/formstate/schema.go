package formstate

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema component names used in OpenAPIDocument.
const (
	ContactSchemaName   = "ContactForm"
	TrademarkSchemaName = "TrademarkInquiry"
)

// OpenAPIDocument describes both records as OpenAPI 3 component schemas so a
// backend that eventually receives submitted drafts can share the shape.
// additionalProperties is false on both objects, matching the container's
// reject-unknown-keys policy.
func OpenAPIDocument(title, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				ContactSchemaName:   openapi3.NewSchemaRef("", ContactSchema()),
				TrademarkSchemaName: openapi3.NewSchemaRef("", TrademarkSchema()),
			},
		},
	}
}

// ValidateDocument runs the kin-openapi validator over doc.
func ValidateDocument(ctx context.Context, doc *openapi3.T) error {
	if doc == nil {
		return fmt.Errorf("formstate: openapi document is nil")
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("formstate: validate openapi document: %w", err)
	}
	return nil
}

// ContactSchema returns the object schema for ContactForm.
func ContactSchema() *openapi3.Schema {
	schema := closedObject("Visitor contact submission draft.")
	for _, name := range ContactFields() {
		schema.WithProperty(name, openapi3.NewStringSchema().WithDefault(""))
	}
	schema.Required = ContactFields()
	return schema
}

// TrademarkSchema returns the object schema for TrademarkInquiry.
func TrademarkSchema() *openapi3.Schema {
	schema := closedObject("Trademark registration inquiry draft.")
	for _, name := range TrademarkFields() {
		switch name {
		case FieldHasLogo, FieldHasSlogan:
			schema.WithProperty(name, openapi3.NewBoolSchema().WithDefault(false))
		default:
			schema.WithProperty(name, openapi3.NewStringSchema().WithDefault(""))
		}
	}
	schema.Required = TrademarkFields()
	return schema
}

func closedObject(description string) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Description = description
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	return schema
}
