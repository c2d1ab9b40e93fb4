// Package replicate implements form-region replication: a block of form
// fields is captured once as a template, then stamped out any number of
// times with per-instance identifier prefixes so every copy submits as an
// independent record ("add another address").
//
// The pieces compose bottom-up. Clone deep-copies a node list while
// rewriting ids, names, and label targets with a caller prefix. Template
// owns the captured subtree plus the iteration counter that keeps prefixes
// distinct. Surface owns the live container and the controls region holding
// the add affordance. Bind ties an affordance to a template through a
// revocable Binding capability, and Form assembles the whole arrangement
// behind one constructor.
//
// Everything here is single-threaded by contract: activations run
// synchronously to completion, so the package takes no locks. Callers that
// share a Form across goroutines serialize access themselves, as the
// repeatform HTTP component does.
package replicate
