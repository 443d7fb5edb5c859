// Package graphql exposes the company and interaction operations over a
// GraphQL endpoint. Resolvers call the same services as the REST handlers, so
// ownership checks and error reporting are shared.
package graphql

import (
	"context"
	"math"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

// Resolver holds the services the schema delegates to
type Resolver struct {
	companies    service.CompanyServiceInterface
	interactions service.InteractionServiceInterface
}

// NewResolver creates a resolver over the company and interaction services
func NewResolver(companies service.CompanyServiceInterface, interactions service.InteractionServiceInterface) *Resolver {
	return &Resolver{companies: companies, interactions: interactions}
}

var companyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Company",
	Fields: graphql.Fields{
		"id":                  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":                &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status":              &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"website":             &graphql.Field{Type: graphql.String},
		"phone":               &graphql.Field{Type: graphql.String},
		"primaryContactName":  &graphql.Field{Type: graphql.String},
		"primaryContactEmail": &graphql.Field{Type: graphql.String},
		"potentialValue":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"leadSource":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"updatedAt":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var interactionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Interaction",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"companyId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"content":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

// companyInputFields is shared by the create and update inputs; only name is
// required on create.
func companyInputFields(nameType graphql.Input) graphql.InputObjectConfigFieldMap {
	return graphql.InputObjectConfigFieldMap{
		"name":                &graphql.InputObjectFieldConfig{Type: nameType},
		"status":              &graphql.InputObjectFieldConfig{Type: graphql.String},
		"website":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":               &graphql.InputObjectFieldConfig{Type: graphql.String},
		"primaryContactName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"primaryContactEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"potentialValue":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"leadSource":          &graphql.InputObjectFieldConfig{Type: graphql.String},
	}
}

var createCompanyInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "CreateCompanyInput",
	Fields: companyInputFields(graphql.NewNonNull(graphql.String)),
})

var updateCompanyInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "UpdateCompanyInput",
	Fields: companyInputFields(graphql.String),
})

// NewSchema builds the query and mutation types around r
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"companies": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(companyType))),
				Resolve: r.listCompanies,
			},
			"company": &graphql.Field{
				Type: companyType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.company,
			},
			"interactions": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(interactionType))),
				Args: graphql.FieldConfigArgument{
					"companyId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.listInteractions,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCompany": &graphql.Field{
				Type: companyType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCompanyInput)},
				},
				Resolve: r.createCompany,
			},
			"updateCompany": &graphql.Field{
				Type: companyType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCompanyInput)},
				},
				Resolve: r.updateCompany,
			},
			"deleteCompany": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteCompany,
			},
			"createInteraction": &graphql.Field{
				Type: interactionType,
				Args: graphql.FieldConfigArgument{
					"companyId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"content":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.createInteraction,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func (r *Resolver) listCompanies(p graphql.ResolveParams) (interface{}, error) {
	identity, err := identityFrom(p.Context)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	companies, err := r.companies.List(p.Context, identity)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	out := make([]map[string]interface{}, 0, len(companies))
	for i := range companies {
		out = append(out, companyFields(&companies[i]))
	}
	return out, nil
}

func (r *Resolver) company(p graphql.ResolveParams) (interface{}, error) {
	identity, err := identityFrom(p.Context)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	id, err := companyID(p.Args["id"])
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	company, err := r.companies.Get(p.Context, identity, id)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	return companyFields(company), nil
}

func (r *Resolver) listInteractions(p graphql.ResolveParams) (interface{}, error) {
	identity, err := identityFrom(p.Context)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	id, err := companyID(p.Args["companyId"])
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	items, err := r.interactions.List(p.Context, identity, id)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	out := make([]map[string]interface{}, 0, len(items))
	for i := range items {
		out = append(out, interactionFields(&items[i]))
	}
	return out, nil
}

func (r *Resolver) createCompany(p graphql.ResolveParams) (interface{}, error) {
	identity, err := identityFrom(p.Context)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	input, _ := p.Args["input"].(map[string]interface{})
	req := &service.CreateCompanyRequest{
		Website:             optionalString(input, "website"),
		Phone:               optionalString(input, "phone"),
		PrimaryContactName:  optionalString(input, "primaryContactName"),
		PrimaryContactEmail: optionalString(input, "primaryContactEmail"),
	}
	if name := optionalString(input, "name"); name != nil {
		req.Name = *name
	}
	if status := optionalString(input, "status"); status != nil {
		req.Status = models.CompanyStatus(*status)
	}
	if source := optionalString(input, "leadSource"); source != nil {
		req.LeadSource = models.LeadSource(*source)
	}
	value, err := optionalMinorUnits(input, "potentialValue")
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	if value != nil {
		req.PotentialValue = *value
	}

	company, err := r.companies.Create(p.Context, identity, req)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	return companyFields(company), nil
}

func (r *Resolver) updateCompany(p graphql.ResolveParams) (interface{}, error) {
	identity, err := identityFrom(p.Context)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	id, err := companyID(p.Args["id"])
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	input, _ := p.Args["input"].(map[string]interface{})
	req := &service.UpdateCompanyRequest{
		Name:                optionalString(input, "name"),
		Website:             optionalString(input, "website"),
		Phone:               optionalString(input, "phone"),
		PrimaryContactName:  optionalString(input, "primaryContactName"),
		PrimaryContactEmail: optionalString(input, "primaryContactEmail"),
	}
	if status := optionalString(input, "status"); status != nil {
		s := models.CompanyStatus(*status)
		req.Status = &s
	}
	if source := optionalString(input, "leadSource"); source != nil {
		ls := models.LeadSource(*source)
		req.LeadSource = &ls
	}
	if req.PotentialValue, err = optionalMinorUnits(input, "potentialValue"); err != nil {
		return nil, publicError(p.Context, err)
	}

	company, err := r.companies.UpdateDetails(p.Context, identity, id, req)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	return companyFields(company), nil
}

func (r *Resolver) deleteCompany(p graphql.ResolveParams) (interface{}, error) {
	identity, err := identityFrom(p.Context)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	id, err := companyID(p.Args["id"])
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	if err := r.companies.Delete(p.Context, identity, id); err != nil {
		return nil, publicError(p.Context, err)
	}
	return true, nil
}

func (r *Resolver) createInteraction(p graphql.ResolveParams) (interface{}, error) {
	identity, err := identityFrom(p.Context)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	id, err := companyID(p.Args["companyId"])
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	content, _ := p.Args["content"].(string)
	interaction, err := r.interactions.Create(p.Context, identity, id, content)
	if err != nil {
		return nil, publicError(p.Context, err)
	}
	return interactionFields(interaction), nil
}

func identityFrom(ctx context.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		return auth.Identity{}, apperrors.ErrUnauthorized
	}
	return identity, nil
}

// companyID parses an id argument. A malformed id cannot name an owned company.
func companyID(arg interface{}) (uuid.UUID, error) {
	raw, _ := arg.(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.ErrCompanyNotFoundOrForbidden
	}
	return id, nil
}

func optionalString(input map[string]interface{}, key string) *string {
	v, ok := input[key].(string)
	if !ok {
		return nil
	}
	return &v
}

// optionalMinorUnits reads a whole number of minor currency units
func optionalMinorUnits(input map[string]interface{}, key string) (*int64, error) {
	v, ok := input[key].(float64)
	if !ok {
		return nil, nil
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt64 {
		return nil, apperrors.NewValidationError(key, "must be a whole number")
	}
	n := int64(v)
	return &n, nil
}

func companyFields(c *service.CompanyResponse) map[string]interface{} {
	return map[string]interface{}{
		"id":                  c.ID.String(),
		"name":                c.Name,
		"status":              string(c.Status),
		"website":             deref(c.Website),
		"phone":               deref(c.Phone),
		"primaryContactName":  deref(c.PrimaryContactName),
		"primaryContactEmail": deref(c.PrimaryContactEmail),
		"potentialValue":      float64(c.PotentialValue),
		"leadSource":          string(c.LeadSource),
		"createdAt":           c.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt":           c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func interactionFields(i *service.InteractionResponse) map[string]interface{} {
	return map[string]interface{}{
		"id":        i.ID.String(),
		"companyId": i.CompanyID.String(),
		"content":   i.Content,
		"createdAt": i.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// resolverError is what clients see for a failed field. graphql-go copies
// Extensions into the response error.
type resolverError struct {
	kind    apperrors.Kind
	message string
	fields  map[string]string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"kind": string(e.kind)}
	if len(e.fields) > 0 {
		ext["fields"] = e.fields
	}
	return ext
}

// publicError hides unexpected causes behind the generic message and logs them
func publicError(ctx context.Context, err error) error {
	kind, message, fields := apperrors.Describe(err)
	if kind == apperrors.KindUnexpected {
		logger.WithContext(ctx).WithError(err).Error("graphql resolver failed")
	}
	return &resolverError{kind: kind, message: message, fields: fields}
}
