// Package repeatform exposes replicating form surfaces over HTTP: a session
// endpoint materializes a surface from markup or a blueprint, and companion
// endpoints drive the add affordance, revoke its binding, and fetch the live
// markup. The component is extraction-friendly: stdlib mux, no framework
// dependencies.
package repeatform
