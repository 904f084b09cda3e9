// Package environment propagates the application environment (development,
// staging, production) through context.Context and HTTP requests.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsDevelopment(r.Context()) {
//		// expose error details
//	}
package environment
