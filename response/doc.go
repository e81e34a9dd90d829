// Package response defines the in-memory response value handlers produce and
// the IntoResponse conversion every handler result, extractor rejection and
// middleware error goes through before reaching the transport.
//
// Any type with an IntoResponse method can be returned from a handler:
//
//	func hello(r *http.Request) response.String {
//		return "hello"
//	}
//
//	func created(r *http.Request, u User) response.IntoResponse {
//		return response.WithStatus(http.StatusCreated, response.JSON(u))
//	}
//
// Errors become responses through FromError: errors that implement
// IntoResponse render themselves, *errors.HTTPError renders its status with a
// JSON body, and anything else becomes a 500.
package response
