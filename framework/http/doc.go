// Package http provides JSON response helpers and the container
// introspection endpoints.
//
// # Response
//
// Response wraps http.ResponseWriter and always answers with JSON.
//
//	res := gohttp.NewResponse(w)
//
//	res.Success(v)                         // 200 {"data": v}
//	res.Error(http.StatusBadRequest, msg)  // {"message": msg}
//	res.NotFound()                         // 404 {"message": "Not found."}
//	res.ServerError()                      // 500 {"message": "Server Error."}
//
// # Dependencies
//
// DependenciesHandler exposes what a Container has registered without
// resolving anything:
//
//	gohttp.NewDependenciesHandler(c).Routes(router, "/dependencies")
//
//	GET /dependencies          {"data": [{"name": "config", "strategy": "singleton", "resolved": true}, ...]}
//	GET /dependencies/{name}   {"data": {...}}, or 404 {"message": "dependency \"x\" not registered"}
//
// Names promised by a deferred provider that has not loaded yet carry
// "deferred": true; their strategy is that of the placeholder.
package http
