package render

import (
	"context"

	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

// Renderer converts an assembled replicating form into a byte
// representation (an HTML page, a fragment, an interactive session
// transcript). Implementations must not mutate the form's tree beyond the
// replication operations the form itself exposes.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form *replicate.Form, options RenderOptions) ([]byte, error)
}
