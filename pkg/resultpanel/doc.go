// Package resultpanel implements the API explorer's results panel: given a URL it
// shows a loading indicator, fetches the URL once and renders the response body as
// indented JSON, or a fixed error message when anything goes wrong.
//
// The panel writes to a Target, the results region of whatever surface hosts it:
// a Datastar SSE stream in the web module, a terminal in the CLI, a recorder in
// tests. Submit writes LoadingText synchronously and returns a *Submission
// immediately; the GET runs in its own goroutine.
//
//	panel := resultpanel.New(resultpanel.WithLogger(log))
//	sub := panel.Submit(ctx, "https://gutendex.com/books/?ids=84", target)
//	text, err := sub.Wait()
//
// The user only ever sees LoadingText, the JSON or ErrorText. The underlying
// error (ErrInvalidURL, ErrHostNotAllowed, ErrFetch, ErrInvalidJSON) is logged
// and returned by Fetch.
//
// Only hosts on the allowlist are fetched, gutendex.com unless configured. With
// AnyHost the dialer still refuses loopback, private and link-local addresses.
// Relative input is resolved against WithBaseURL when one is set.
//
// There are no retries, no client timeout and no cancellation between
// submissions. Two submissions racing on the same target both complete; the one
// that finishes last determines the final text.
package resultpanel
