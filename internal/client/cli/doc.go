// Package cli provides the interactive account command-line client.
//
// It wires configuration, the gRPC API client, and an interactive REPL.
// Typical flow: sign up, verify the emailed code, sign in, and inspect
// accounts with whoami/lookup.
//
// Key features:
//   - Signup / Verify / Resend (email-verified registration)
//   - Signin (alias or email plus password)
//   - Whoami / Lookup
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
