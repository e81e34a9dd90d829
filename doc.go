// Package dispatch is the request-dispatch core of an HTTP service.
//
// A handler is a function whose arguments are produced by extractors and
// whose result converts into a response. Extractors run in declaration
// order and the first rejection becomes the response. Handlers are
// wrapped by layers (middleware) and attached to paths through method
// routers that fall through to the previously registered route, and
// finally to an empty router that answers 404.
//
//	users := dispatch.Get(handler.Func1(showUser, extract.Path("id"))).
//		Delete(handler.Func1(deleteUser, extract.Path("id"))).
//		OrMethodNotAllowed()
//
// The sub-packages hold the pieces: extract, response, handler, routing,
// service, middleware, and server for a ready-to-run HTTP server.
package dispatch
