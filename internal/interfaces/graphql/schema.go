package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"noticeboard/internal/shared/utils"
)

// Object fields resolve through the default resolver, which matches the
// json tags of the application DTOs.
var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var announcementType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Announcement",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"contentHtml": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "content rendered from markdown to sanitized HTML",
		},
		"publishedAt": &graphql.Field{Type: graphql.DateTime},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"categories": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryType))),
		},
	},
})

var idList = graphql.NewList(graphql.NewNonNull(graphql.Int))

var createAnnouncementInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateAnnouncementInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"content":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"publishedAt": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"categoryIds": &graphql.InputObjectFieldConfig{
			Type:        idList,
			Description: "at least one category id is required",
		},
	},
})

var updateAnnouncementInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateAnnouncementInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"publishedAt": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"categoryIds": &graphql.InputObjectFieldConfig{
			Type:        idList,
			Description: "replaces every category when non-empty",
		},
	},
})

var createCategoryInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateCategoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var updateCategoryInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateCategoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"name": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func idArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
}

func inputArgs(t graphql.Input) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)},
	}
}

// NewSchema builds the noticeboard schema around r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"announcement": &graphql.Field{
				Type:    graphql.NewNonNull(announcementType),
				Args:    idArgs(),
				Resolve: r.wrap(r.announcement),
			},
			"announcements": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(announcementType))),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: utils.DefaultLimitOr(r.pagination)},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: r.wrap(r.announcementList),
			},
			"categories": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryType))),
				Resolve: r.wrap(r.categoryList),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createAnnouncement": &graphql.Field{
				Type:    graphql.NewNonNull(announcementType),
				Args:    inputArgs(createAnnouncementInput),
				Resolve: r.wrap(r.createAnnouncement),
			},
			"updateAnnouncement": &graphql.Field{
				Type:    graphql.NewNonNull(announcementType),
				Args:    inputArgs(updateAnnouncementInput),
				Resolve: r.wrap(r.updateAnnouncement),
			},
			"deleteAnnouncement": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArgs(),
				Resolve: r.wrap(r.deleteAnnouncement),
			},
			"createCategory": &graphql.Field{
				Type:    graphql.NewNonNull(categoryType),
				Args:    inputArgs(createCategoryInput),
				Resolve: r.wrap(r.createCategory),
			},
			"updateCategory": &graphql.Field{
				Type:    graphql.NewNonNull(categoryType),
				Args:    inputArgs(updateCategoryInput),
				Resolve: r.wrap(r.updateCategory),
			},
			"deleteCategory": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArgs(),
				Resolve: r.wrap(r.deleteCategory),
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	return schema, nil
}
