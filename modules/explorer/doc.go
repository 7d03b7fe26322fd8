// Package explorer serves the API explorer page and its results endpoint.
//
// GET / renders the page. The browser gate decides on the request's User-Agent:
// rejected browsers get the fallback notice inside #api-explorer, admitted ones
// get the results region and the URL form, with the Datastar client attached.
//
// GET /explorer/results is called by Datastar with the "url" signal and streams
// two patches of #ax-results: the loading text, then the formatted JSON or the
// fixed error message.
//
//	r := chi.NewRouter()
//	r.Mount("/", explorer.Router(explorer.RouterOptions{
//		Config: cfg.Explorer,
//		Panel:  resultpanel.NewFromConfig(cfg.Results, resultpanel.WithLogger(log)),
//		Logger: log,
//	}))
package explorer
