package graph

import (
	"context"

	"github.com/graphql-go/graphql"
)

type rawVarsKey struct{}

// Execute runs one request against the schema. The raw variable values ride
// along on the context: the executor's input coercion drops explicit nulls
// from the args map, and update mutations need to tell a nulled field apart
// from an absent one.
func Execute(ctx context.Context, schema graphql.Schema, query, operationName string, variables map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		OperationName:  operationName,
		VariableValues: variables,
		Context:        context.WithValue(ctx, rawVarsKey{}, variables),
	})
}

func rawVariables(ctx context.Context) map[string]interface{} {
	vars, _ := ctx.Value(rawVarsKey{}).(map[string]interface{})
	return vars
}
