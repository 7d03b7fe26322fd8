// Package gate decides once per page whether the visiting browser may use the API
// explorer and applies that decision.
//
// Decide is a pure function: it parses the user agent with package useragent and
// checks the identity against an admission.Policy, returning a Decision that is
// either Admitted or Rejected. An unrecognized user agent is a rejection, never an
// error surfaced to the user.
//
// Bootstrapper.Run drives a small state machine from Pending to one of the two
// terminal states and performs the side effects through an injected Renderer:
//
//	Pending ──admitted──▶ Admitted   (Attach each follow-on module, in order)
//	   │
//	   └──────otherwise──▶ Rejected  (ShowFallback with FallbackNotice, once)
//
// Terminal states have no outgoing transitions, so a decision cannot be revisited.
//
// # Usage
//
//	boot := gate.NewBootstrapper(gate.New(), gate.WithLogger(log))
//	decision, err := boot.Run(ctx, r.UserAgent(), page)
//	if err != nil {
//	    // the renderer failed; decision is still valid
//	}
package gate
