package logging

import "context"

type contextKey string

const commandKey contextKey = "command"

// WithCommand records the running CLI command in the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetCommand returns the command stored by WithCommand, or "".
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
