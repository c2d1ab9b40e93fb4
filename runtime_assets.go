package formrepeat

import (
	"io/fs"

	"github.com/goliatone/go-formrepeat/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the embedded browser assets (the add-affordance
// runtime script and the default stylesheet) so applications can serve them
// without an asset build step.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(formrepeat.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
