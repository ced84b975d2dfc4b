package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextFields lists the context values copied onto every log event, in
// the order they appear in the output.
var contextFields = []struct {
	key string
	get func(context.Context) string
}{
	{key: string(requestIDKey), get: GetRequestID},
	{key: string(emailKey), get: GetEmail},
}

// ContextHook copies the login attempt's request_id and email from the
// event's context onto the event.
type ContextHook struct{}

// Run implements zerolog.Hook.
func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	for _, f := range contextFields {
		if v := f.get(ctx); v != "" {
			e.Str(f.key, v)
		}
	}
}
