// Package envfile builds a snapshot of requested environment variables
// and serializes it to a JSON file consumed by the web bundle at runtime.
//
// Serialization policy: every requested name appears as a key. A variable
// that is unset at invocation time serializes as JSON null — an explicit
// null distinguishes "requested but unset" from "never requested" for the
// consuming application. Optionally, a dotenv file (github.com/joho/godotenv)
// can fill in values for names the process environment does not define;
// the real environment always wins.
package envfile
